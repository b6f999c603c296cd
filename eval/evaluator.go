/*
File : go-bruno/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator for the Bruno
// language. Evaluation is a single-threaded, synchronous, recursive walk
// over the AST: each node variant maps to one evaluation case, runtime
// errors are ordinary values that short-circuit outward, and return
// statements travel as ReturnValue wrappers that unwind through blocks
// until a function boundary (or the program top level) unwraps them.
package eval

import (
	"github.com/akashmaji946/go-bruno/objects"
	"github.com/akashmaji946/go-bruno/parser"
	"github.com/akashmaji946/go-bruno/scope"
)

// Evaluator holds the state for evaluating Bruno AST nodes: the current
// scope for variable bindings and the table of builtin functions.
//
// The scope field always points at the innermost scope of the evaluation in
// progress. Function application swaps in a fresh scope extending the
// callee's captured scope and restores the caller's scope afterwards, which
// is what gives closures their lexical environment.
type Evaluator struct {
	Scp      *scope.Scope                // Current scope for variable bindings
	Builtins map[string]*objects.Builtin // Table of builtin functions, consulted after the scope chain
}

// NewEvaluator creates and initializes a new Evaluator with a fresh global
// scope and the builtin function table registered.
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:      scope.NewScope(nil),
		Builtins: make(map[string]*objects.Builtin),
	}
	for _, builtin := range objects.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// Eval evaluates a single AST node and returns the resulting value.
// It dispatches on the node's concrete type. Nodes missing from the switch
// (and nil sub-nodes left behind by recovered parse errors) evaluate to
// nil, which callers treat as "no value".
func (e *Evaluator) Eval(n parser.Node) objects.BrunoObject {
	switch n := n.(type) {

	// Program and statements
	case *parser.RootNode:
		return e.evalRootNode(n)
	case *parser.BlockStatementNode:
		return e.evalBlockStatement(n)
	case *parser.ExpressionStatementNode:
		return e.Eval(n.Expression)
	case *parser.LetStatementNode:
		return e.evalLetStatement(n)
	case *parser.ReturnStatementNode:
		return e.evalReturnStatement(n)

	// Literals
	case *parser.IntegerLiteralExpressionNode:
		return &objects.Integer{Value: n.Value}
	case *parser.BooleanLiteralExpressionNode:
		return objects.FromNativeBool(n.Value)
	case *parser.StringLiteralExpressionNode:
		return &objects.String{Value: n.Value}
	case *parser.ArrayLiteralExpressionNode:
		return e.evalArrayLiteral(n)
	case *parser.HashLiteralExpressionNode:
		return e.evalHashLiteral(n)
	case *parser.FunctionLiteralExpressionNode:
		return e.evalFunctionLiteral(n)

	// Expressions
	case *parser.IdentifierExpressionNode:
		return e.evalIdentifierExpression(n)
	case *parser.UnaryExpressionNode:
		return e.evalUnaryExpression(n)
	case *parser.BinaryExpressionNode:
		return e.evalBinaryExpression(n)
	case *parser.IfExpressionNode:
		return e.evalIfExpression(n)
	case *parser.CallExpressionNode:
		return e.evalCallExpression(n)
	case *parser.IndexExpressionNode:
		return e.evalIndexExpression(n)

	default:
		return nil
	}
}

// evalRootNode evaluates the program's statements in order. The last
// statement's value is the program's value, with two exceptions: a
// ReturnValue is unwrapped here (the program top level is the outermost
// unwrap boundary), and an Error aborts the remaining statements.
func (e *Evaluator) evalRootNode(n *parser.RootNode) objects.BrunoObject {
	var result objects.BrunoObject
	for _, statement := range n.Statements {
		result = e.Eval(statement)
		switch result := result.(type) {
		case *objects.ReturnValue:
			return result.Value
		case *objects.Error:
			return result
		}
	}
	return result
}

// evalBlockStatement evaluates a block's statements in order. Unlike the
// program top level, a ReturnValue is NOT unwrapped here: it propagates
// upward unchanged so that a return inside nested blocks still unwinds the
// enclosing function. Errors propagate the same way.
func (e *Evaluator) evalBlockStatement(n *parser.BlockStatementNode) objects.BrunoObject {
	var result objects.BrunoObject
	for _, statement := range n.Statements {
		result = e.Eval(statement)
		if result != nil {
			resultType := result.GetType()
			if resultType == objects.ReturnValueType || resultType == objects.ErrorType {
				return result
			}
		}
	}
	return result
}

// evalLetStatement evaluates the bound expression and binds it to the name
// in the current scope. The binding's value is also the statement's value.
func (e *Evaluator) evalLetStatement(n *parser.LetStatementNode) objects.BrunoObject {
	value := e.Eval(n.Value)
	if IsError(value) {
		return value
	}
	if value == nil {
		return nil
	}
	e.Scp.Bind(n.Name.Name, value)
	return value
}

// evalReturnStatement evaluates the returned expression and wraps it so the
// enclosing blocks pass it upward untouched.
func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatementNode) objects.BrunoObject {
	value := e.Eval(n.ReturnValue)
	if IsError(value) {
		return value
	}
	if value == nil {
		value = objects.NULL
	}
	return &objects.ReturnValue{Value: value}
}
