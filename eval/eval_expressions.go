/*
File : go-bruno/eval/eval_expressions.go
*/
package eval

import (
	"github.com/akashmaji946/go-bruno/function"
	"github.com/akashmaji946/go-bruno/objects"
	"github.com/akashmaji946/go-bruno/parser"
	"github.com/akashmaji946/go-bruno/scope"
)

// evalIdentifierExpression resolves a name. The scope chain is consulted
// first so user bindings shadow builtins; the builtin table is the
// fallback. An unresolved name is a runtime error, not a parse error.
func (e *Evaluator) evalIdentifierExpression(n *parser.IdentifierExpressionNode) objects.BrunoObject {
	if obj, ok := e.Scp.LookUp(n.Name); ok {
		return obj
	}
	if builtin, ok := e.Builtins[n.Name]; ok {
		return builtin
	}
	return e.CreateError("identifier not found: %s", n.Name)
}

// evalUnaryExpression evaluates a prefix operation. The operand is
// evaluated first; an Error operand propagates unchanged.
func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpressionNode) objects.BrunoObject {
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}
	if right == nil {
		return nil
	}

	switch n.Operator {
	case "!":
		return e.evalBangOperator(right)
	case "-":
		return e.evalMinusOperator(right)
	default:
		return e.CreateError("unknown operator: %s%s", n.Operator, right.GetType())
	}
}

// evalBangOperator negates the operand's truthiness: truthy values yield
// FALSE and the two falsy values (false, null) yield TRUE.
func (e *Evaluator) evalBangOperator(right objects.BrunoObject) objects.BrunoObject {
	switch right {
	case objects.FALSE, objects.NULL:
		return objects.TRUE
	default:
		return objects.FALSE
	}
}

// evalMinusOperator negates an integer operand. Every other operand type is
// an unknown-operator error.
func (e *Evaluator) evalMinusOperator(right objects.BrunoObject) objects.BrunoObject {
	if integer, ok := right.(*objects.Integer); ok {
		return &objects.Integer{Value: -integer.Value}
	}
	return e.CreateError("unknown operator: -%s", right.GetType())
}

// evalBinaryExpression evaluates an infix operation. Operands evaluate left
// to right and an Error in either position propagates before the operator
// is applied.
func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpressionNode) objects.BrunoObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if IsError(right) {
		return right
	}
	if left == nil || right == nil {
		return nil
	}
	return e.evalBinaryOp(n.Operator, left, right)
}

// evalBinaryOp applies an infix operator to evaluated operands. The cases
// are tried in a fixed order:
//  1. integer-integer operations
//  2. equality on anything (mixed types simply compare unequal)
//  3. operands of different types: a type-mismatch error
//  4. string concatenation
//  5. everything else: an unknown-operator error
//
// The ordering matters: it is what makes "5 + true" a type mismatch but
// "true + true" an unknown operator.
func (e *Evaluator) evalBinaryOp(operator string, left, right objects.BrunoObject) objects.BrunoObject {
	leftInt, leftIsInt := left.(*objects.Integer)
	rightInt, rightIsInt := right.(*objects.Integer)
	if leftIsInt && rightIsInt {
		return e.evalIntegerBinaryOp(operator, leftInt, rightInt)
	}

	switch operator {
	case "==":
		return objects.FromNativeBool(objects.Equals(left, right))
	case "!=":
		return objects.FromNativeBool(!objects.Equals(left, right))
	}

	if left.GetType() != right.GetType() {
		return e.CreateError("type mismatch: %s %s %s", left.GetType(), operator, right.GetType())
	}

	leftStr, leftIsStr := left.(*objects.String)
	rightStr, rightIsStr := right.(*objects.String)
	if leftIsStr && rightIsStr && operator == "+" {
		return &objects.String{Value: leftStr.Value + rightStr.Value}
	}

	return e.CreateError("unknown operator: %s %s %s", left.GetType(), operator, right.GetType())
}

// evalIntegerBinaryOp applies an infix operator to two integers.
// Division truncates toward zero (Go's native integer division).
func (e *Evaluator) evalIntegerBinaryOp(operator string, left, right *objects.Integer) objects.BrunoObject {
	switch operator {
	case "+":
		return &objects.Integer{Value: left.Value + right.Value}
	case "-":
		return &objects.Integer{Value: left.Value - right.Value}
	case "*":
		return &objects.Integer{Value: left.Value * right.Value}
	case "/":
		return &objects.Integer{Value: left.Value / right.Value}
	case "<":
		return objects.FromNativeBool(left.Value < right.Value)
	case ">":
		return objects.FromNativeBool(left.Value > right.Value)
	case "==":
		return objects.FromNativeBool(left.Value == right.Value)
	case "!=":
		return objects.FromNativeBool(left.Value != right.Value)
	default:
		return e.CreateError("unknown operator: %s %s %s", left.GetType(), operator, right.GetType())
	}
}

// evalIfExpression evaluates the condition and picks a branch. A falsy
// condition with no alternative yields null.
func (e *Evaluator) evalIfExpression(n *parser.IfExpressionNode) objects.BrunoObject {
	condition := e.Eval(n.Condition)
	if IsError(condition) {
		return condition
	}
	if isTruthy(condition) {
		return e.Eval(n.Consequence)
	}
	if n.Alternative != nil {
		return e.Eval(n.Alternative)
	}
	return objects.NULL
}

// evalFunctionLiteral builds a function value that captures the scope
// current at its creation site. Nothing is copied: the closure shares the
// live scope, so later bindings in that scope are visible through it.
func (e *Evaluator) evalFunctionLiteral(n *parser.FunctionLiteralExpressionNode) objects.BrunoObject {
	return &function.Function{
		Params: n.Parameters,
		Body:   n.Body,
		Scp:    e.Scp,
	}
}

// evalCallExpression evaluates the callee and then the arguments, left to
// right, stopping at the first Error, and applies the result.
func (e *Evaluator) evalCallExpression(n *parser.CallExpressionNode) objects.BrunoObject {
	callee := e.Eval(n.Function)
	if IsError(callee) {
		return callee
	}
	if callee == nil {
		return nil
	}

	args := e.evalExpressions(n.Arguments)
	if len(args) == 1 && IsError(args[0]) {
		return args[0]
	}

	return e.applyFunction(callee, args)
}

// evalExpressions evaluates an expression list left to right. If any
// expression yields an Error, evaluation stops and the result is a
// single-element list holding just that Error.
func (e *Evaluator) evalExpressions(expressions []parser.ExpressionNode) []objects.BrunoObject {
	results := make([]objects.BrunoObject, 0, len(expressions))
	for _, expression := range expressions {
		evaluated := e.Eval(expression)
		if IsError(evaluated) {
			return []objects.BrunoObject{evaluated}
		}
		results = append(results, evaluated)
	}
	return results
}

// applyFunction invokes a callable value with already-evaluated arguments.
//
// For a user function, a fresh scope extending the function's captured
// scope receives the parameter bindings; the evaluator switches to it for
// the body and restores the caller's scope afterwards. A ReturnValue
// produced by the body is unwrapped exactly once, here, so it never leaks
// out of the call.
//
// For a builtin, the callback runs directly; a nil result becomes null.
func (e *Evaluator) applyFunction(callee objects.BrunoObject, args []objects.BrunoObject) objects.BrunoObject {
	switch callee := callee.(type) {
	case *function.Function:
		callScope := scope.NewScope(callee.Scp)
		for i, param := range callee.Params {
			if i < len(args) {
				callScope.Bind(param.Name, args[i])
			}
		}
		savedScope := e.Scp
		e.Scp = callScope
		result := e.Eval(callee.Body)
		e.Scp = savedScope
		return UnwrapReturnValue(result)
	case *objects.Builtin:
		result := callee.Callback(args...)
		if result == nil {
			return objects.NULL
		}
		return result
	default:
		return e.CreateError("not a function: %s", callee.GetType())
	}
}

// evalArrayLiteral evaluates the element expressions in order; an Error in
// any element becomes the literal's value.
func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteralExpressionNode) objects.BrunoObject {
	elements := e.evalExpressions(n.Elements)
	if len(elements) == 1 && IsError(elements[0]) {
		return elements[0]
	}
	return &objects.Array{Elements: elements}
}

// evalHashLiteral evaluates each key/value pair in insertion order. Keys
// must be hashable (Integer, Boolean, or String); the key is checked before
// its value is evaluated, and any Error propagates immediately.
func (e *Evaluator) evalHashLiteral(n *parser.HashLiteralExpressionNode) objects.BrunoObject {
	pairs := make(map[objects.HashKey]objects.HashPair)

	for _, pair := range n.Pairs {
		key := e.Eval(pair.Key)
		if IsError(key) {
			return key
		}
		if key == nil {
			return nil
		}

		hashable, ok := key.(objects.Hashable)
		if !ok {
			return e.CreateError("unusable as hash key: %s", key.GetType())
		}

		value := e.Eval(pair.Value)
		if IsError(value) {
			return value
		}

		pairs[hashable.HashKey()] = objects.HashPair{Key: key, Value: value}
	}

	return &objects.Hash{Pairs: pairs}
}

// evalIndexExpression evaluates a subscript. Arrays take integer indices
// (out-of-range and negative indices yield null, without wrapping); hashes
// take hashable keys (a missing key yields null). Any other indexed type is
// an error.
func (e *Evaluator) evalIndexExpression(n *parser.IndexExpressionNode) objects.BrunoObject {
	left := e.Eval(n.Left)
	if IsError(left) {
		return left
	}
	index := e.Eval(n.Index)
	if IsError(index) {
		return index
	}
	if left == nil || index == nil {
		return nil
	}

	array, leftIsArray := left.(*objects.Array)
	integer, indexIsInt := index.(*objects.Integer)
	switch {
	case leftIsArray && indexIsInt:
		return e.evalArrayIndex(array, integer.Value)
	case left.GetType() == objects.HashType:
		return e.evalHashIndex(left.(*objects.Hash), index)
	default:
		return e.CreateError("index operator not supported: %s", left.GetType())
	}
}

// evalArrayIndex retrieves one array element, or null when the index is out
// of range on either side.
func (e *Evaluator) evalArrayIndex(array *objects.Array, index int64) objects.BrunoObject {
	if index < 0 || index > int64(len(array.Elements)-1) {
		return objects.NULL
	}
	return array.Elements[index]
}

// evalHashIndex retrieves the value stored under a hashable key, or null
// when the key is absent.
func (e *Evaluator) evalHashIndex(hash *objects.Hash, index objects.BrunoObject) objects.BrunoObject {
	hashable, ok := index.(objects.Hashable)
	if !ok {
		return e.CreateError("unusable as a hash key: %s", index.GetType())
	}
	pair, ok := hash.Pairs[hashable.HashKey()]
	if !ok {
		return objects.NULL
	}
	return pair.Value
}
