/*
File : go-bruno/parser/node.go
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-bruno/lexer"
)

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like printing or transformation without adding
// behavior to the nodes themselves. Evaluation does not use the visitor; it
// dispatches with a type switch so each case can thread scopes and
// short-circuit on errors.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Literal value visitors
	VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) // Integer literals: 42, 0
	VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) // Boolean literals: true, false
	VisitStringLiteralExpressionNode(node StringLiteralExpressionNode)   // String literals: "hello"
	VisitArrayLiteralExpressionNode(node ArrayLiteralExpressionNode)     // Array literals: [1, 2, 3]
	VisitHashLiteralExpressionNode(node HashLiteralExpressionNode)       // Hash literals: {"a": 1}

	// Expression visitors
	VisitIdentifierExpressionNode(node IdentifierExpressionNode)         // Identifiers: x, myVar
	VisitUnaryExpressionNode(node UnaryExpressionNode)                   // Prefix operations: -x, !ok
	VisitBinaryExpressionNode(node BinaryExpressionNode)                 // Infix operations: a + b, a == b
	VisitIfExpressionNode(node IfExpressionNode)                         // Conditionals: if (c) { ... } else { ... }
	VisitFunctionLiteralExpressionNode(node FunctionLiteralExpressionNode) // Function literals: fn(x) { ... }
	VisitCallExpressionNode(node CallExpressionNode)                     // Function calls: add(1, 2)
	VisitIndexExpressionNode(node IndexExpressionNode)                   // Subscripts: arr[0], hash["key"]

	// Statement visitors
	VisitLetStatementNode(node LetStatementNode)               // Bindings: let x = 10
	VisitReturnStatementNode(node ReturnStatementNode)         // Returns: return expr
	VisitExpressionStatementNode(node ExpressionStatementNode) // Bare expressions used as statements
	VisitBlockStatementNode(node BlockStatementNode)           // Code blocks: { stmt1; stmt2; }
}

// Node: base interface for all nodes of the AST
// TokenLiteral(): returns the literal text of the node's originating token
// Literal(): returns the parenthesized string representation of the node
// Accept(): accepts a visitor
type Node interface {
	TokenLiteral() string
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: ordered list of top-level statements in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.TokenLiteral(): the first statement's token literal, or "" for an
// empty program
func (root *RootNode) TokenLiteral() string {
	if len(root.Statements) == 0 {
		return ""
	}
	return root.Statements[0].TokenLiteral()
}

// RootNode.Literal(): the concatenated string form of every statement
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range root.Statements {
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}

// RootNode.Accept(): accepts a visitor (e.g. PrintingVisitor)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// IdentifierExpressionNode: represents a reference to a bound name
// Example: x, counter, __tmp
type IdentifierExpressionNode struct {
	Token lexer.Token // The IDENT token
	Name  string      // The identifier text
}

func (node *IdentifierExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *IdentifierExpressionNode) Literal() string {
	return node.Name
}

func (node *IdentifierExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIdentifierExpressionNode(*node)
}

func (node *IdentifierExpressionNode) Expression() {}

// IntegerLiteralExpressionNode: represents an integer number literal
// Example: 42, 0
type IntegerLiteralExpressionNode struct {
	Token lexer.Token // The INT token with its literal text
	Value int64       // The parsed integer value
}

func (node *IntegerLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *IntegerLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *IntegerLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIntegerLiteralExpressionNode(*node)
}

func (node *IntegerLiteralExpressionNode) Expression() {}

// BooleanLiteralExpressionNode: represents the literals true and false
type BooleanLiteralExpressionNode struct {
	Token lexer.Token // The TRUE or FALSE token
	Value bool        // The boolean value
}

func (node *BooleanLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *BooleanLiteralExpressionNode) Literal() string {
	return node.Token.Literal
}

func (node *BooleanLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBooleanLiteralExpressionNode(*node)
}

func (node *BooleanLiteralExpressionNode) Expression() {}

// StringLiteralExpressionNode: represents a string literal
// Example: "hello world"
type StringLiteralExpressionNode struct {
	Token lexer.Token // The STRING token
	Value string      // The enclosed text, without quotes
}

func (node *StringLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *StringLiteralExpressionNode) Literal() string {
	return node.Value
}

func (node *StringLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitStringLiteralExpressionNode(*node)
}

func (node *StringLiteralExpressionNode) Expression() {}

// ArrayLiteralExpressionNode: represents an array literal
// Example: [1, 2 * 2, "three"]
type ArrayLiteralExpressionNode struct {
	Token    lexer.Token      // The '[' token
	Elements []ExpressionNode // The element expressions, in order
}

func (node *ArrayLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *ArrayLiteralExpressionNode) Literal() string {
	elements := make([]string, 0, len(node.Elements))
	for _, element := range node.Elements {
		elements = append(elements, element.Literal())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

func (node *ArrayLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitArrayLiteralExpressionNode(*node)
}

func (node *ArrayLiteralExpressionNode) Expression() {}

// HashPairNode holds one key/value entry of a hash literal. Pairs keep
// their source order so evaluation and printing are deterministic.
type HashPairNode struct {
	Key   ExpressionNode // The key expression
	Value ExpressionNode // The value expression
}

// HashLiteralExpressionNode: represents a hash literal
// Example: {"one": 1, "two": 2}
type HashLiteralExpressionNode struct {
	Token lexer.Token    // The '{' token
	Pairs []HashPairNode // The entries, in insertion order
}

func (node *HashLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *HashLiteralExpressionNode) Literal() string {
	pairs := make([]string, 0, len(node.Pairs))
	for _, pair := range node.Pairs {
		pairs = append(pairs, fmt.Sprintf("%s:%s", pair.Key.Literal(), pair.Value.Literal()))
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func (node *HashLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitHashLiteralExpressionNode(*node)
}

func (node *HashLiteralExpressionNode) Expression() {}

// UnaryExpressionNode: represents a prefix operation
// Example: -15, !ok
type UnaryExpressionNode struct {
	Token    lexer.Token    // The prefix operator token
	Operator string         // The operator text ("-" or "!")
	Right    ExpressionNode // The operand
}

func (node *UnaryExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operator + node.Right.Literal() + ")"
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: represents an infix operation
// Example: a + b, x == y
type BinaryExpressionNode struct {
	Token    lexer.Token    // The infix operator token
	Left     ExpressionNode // The left operand
	Operator string         // The operator text
	Right    ExpressionNode // The right operand
}

func (node *BinaryExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *BinaryExpressionNode) Literal() string {
	return fmt.Sprintf("(%s %s %s)", node.Left.Literal(), node.Operator, node.Right.Literal())
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

func (node *BinaryExpressionNode) Expression() {}

// IfExpressionNode: represents a conditional expression
// Example: if (x < y) { x } else { y }
// The alternative block is optional; a false condition with no alternative
// evaluates to null.
type IfExpressionNode struct {
	Token       lexer.Token         // The 'if' token
	Condition   ExpressionNode      // The condition expression
	Consequence *BlockStatementNode // Evaluated when the condition is truthy
	Alternative *BlockStatementNode // Evaluated otherwise; may be nil
}

func (node *IfExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *IfExpressionNode) Literal() string {
	alternative := ""
	if node.Alternative != nil {
		alternative = "else " + node.Alternative.Literal()
	}
	return fmt.Sprintf("%s %s %s", node.Condition.Literal(), node.Consequence.Literal(), alternative)
}

func (node *IfExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfExpressionNode(*node)
}

func (node *IfExpressionNode) Expression() {}

// FunctionLiteralExpressionNode: represents a function literal
// Example: fn(a, b) { a + b; }
type FunctionLiteralExpressionNode struct {
	Token      lexer.Token                 // The 'fn' token
	Parameters []*IdentifierExpressionNode // The parameter names, in order
	Body       *BlockStatementNode         // The function body
}

func (node *FunctionLiteralExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *FunctionLiteralExpressionNode) Literal() string {
	parameters := make([]string, 0, len(node.Parameters))
	for _, parameter := range node.Parameters {
		parameters = append(parameters, parameter.Literal())
	}
	return fmt.Sprintf("%s(%s) %s", node.TokenLiteral(), strings.Join(parameters, ", "), node.Body.Literal())
}

func (node *FunctionLiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionLiteralExpressionNode(*node)
}

func (node *FunctionLiteralExpressionNode) Expression() {}

// CallExpressionNode: represents a function application
// Example: add(1, 2 * 3), fn(x) { x }(5)
// The callee is an arbitrary expression so literals and returned functions
// can be applied directly.
type CallExpressionNode struct {
	Token     lexer.Token      // The '(' token of the call
	Function  ExpressionNode   // The callee expression
	Arguments []ExpressionNode // The argument expressions, in order
}

func (node *CallExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *CallExpressionNode) Literal() string {
	arguments := make([]string, 0, len(node.Arguments))
	for _, argument := range node.Arguments {
		arguments = append(arguments, argument.Literal())
	}
	return fmt.Sprintf("%s(%s)", node.Function.Literal(), strings.Join(arguments, ", "))
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

func (node *CallExpressionNode) Expression() {}

// IndexExpressionNode: represents a subscript operation
// Example: arr[0], pairs["key"]
type IndexExpressionNode struct {
	Token lexer.Token    // The '[' token
	Left  ExpressionNode // The indexed expression
	Index ExpressionNode // The index expression
}

func (node *IndexExpressionNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *IndexExpressionNode) Literal() string {
	return fmt.Sprintf("(%s[%s])", node.Left.Literal(), node.Index.Literal())
}

func (node *IndexExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitIndexExpressionNode(*node)
}

func (node *IndexExpressionNode) Expression() {}

// LetStatementNode: represents a name binding
// Example: let x = 5
type LetStatementNode struct {
	Token lexer.Token               // The 'let' token
	Name  *IdentifierExpressionNode // The bound name
	Value ExpressionNode            // The bound expression; nil on parse failure
}

func (node *LetStatementNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *LetStatementNode) Literal() string {
	value := ""
	if node.Value != nil {
		value = node.Value.Literal()
	}
	return fmt.Sprintf("%s %s = %s", node.TokenLiteral(), node.Name.Literal(), value)
}

func (node *LetStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitLetStatementNode(*node)
}

func (node *LetStatementNode) Statement() {}

// ReturnStatementNode: represents a return statement
// Example: return x + y;
type ReturnStatementNode struct {
	Token       lexer.Token    // The 'return' token
	ReturnValue ExpressionNode // The returned expression; nil on parse failure
}

func (node *ReturnStatementNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *ReturnStatementNode) Literal() string {
	value := ""
	if node.ReturnValue != nil {
		value = node.ReturnValue.Literal()
	}
	return fmt.Sprintf("%s %s", node.TokenLiteral(), value)
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

func (node *ReturnStatementNode) Statement() {}

// ExpressionStatementNode: wraps an expression used in statement position,
// which is how a program of bare expressions evaluates to a value.
type ExpressionStatementNode struct {
	Token      lexer.Token    // The first token of the expression
	Expression ExpressionNode // The wrapped expression; nil on parse failure
}

func (node *ExpressionStatementNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *ExpressionStatementNode) Literal() string {
	if node.Expression == nil {
		return ""
	}
	return node.Expression.Literal()
}

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

func (node *ExpressionStatementNode) Statement() {}

// BlockStatementNode: represents a braced sequence of statements, used as
// if-consequences, if-alternatives, and function bodies.
type BlockStatementNode struct {
	Token      lexer.Token     // The '{' token
	Statements []StatementNode // The enclosed statements, in order
}

func (node *BlockStatementNode) TokenLiteral() string {
	return node.Token.Literal
}

func (node *BlockStatementNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

func (node *BlockStatementNode) Statement() {}
