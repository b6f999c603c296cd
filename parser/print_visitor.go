/*
File : go-bruno/parser/print_visitor.go
*/
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4 // Number of spaces per indentation level

// PrintingVisitor is a NodeVisitor that renders AST nodes as a formatted
// tree, one node per line, children indented under their parents. It backs
// the CLI's AST dump mode and the parser tests.
type PrintingVisitor struct {
	Indent int          // Current indentation level for formatting
	Buf    bytes.Buffer // Buffer to accumulate the formatted output
}

// indent writes the current indentation level to the buffer
func (p *PrintingVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one formatted tree line for a node
func (p *PrintingVisitor) line(kind string, detail string) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf("Visiting %10s Node [%s]\n", kind, detail))
}

// String returns the accumulated tree rendering
func (p *PrintingVisitor) String() string {
	return p.Buf.String()
}

// VisitRootNode visits the root node and prints all statements with
// indentation
func (p *PrintingVisitor) VisitRootNode(node RootNode) {
	p.line("Root", node.Literal())
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIntegerLiteralExpressionNode prints an integer literal leaf
func (p *PrintingVisitor) VisitIntegerLiteralExpressionNode(node IntegerLiteralExpressionNode) {
	p.line("Integer", node.Literal())
}

// VisitBooleanLiteralExpressionNode prints a boolean literal leaf
func (p *PrintingVisitor) VisitBooleanLiteralExpressionNode(node BooleanLiteralExpressionNode) {
	p.line("Boolean", node.Literal())
}

// VisitStringLiteralExpressionNode prints a string literal leaf
func (p *PrintingVisitor) VisitStringLiteralExpressionNode(node StringLiteralExpressionNode) {
	p.line("String", node.Literal())
}

// VisitArrayLiteralExpressionNode prints an array literal with its elements
// indented below
func (p *PrintingVisitor) VisitArrayLiteralExpressionNode(node ArrayLiteralExpressionNode) {
	p.line("Array", node.Literal())
	p.Indent += INDENT_SIZE
	for _, element := range node.Elements {
		element.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitHashLiteralExpressionNode prints a hash literal with each key and
// value indented below, in insertion order
func (p *PrintingVisitor) VisitHashLiteralExpressionNode(node HashLiteralExpressionNode) {
	p.line("Hash", node.Literal())
	p.Indent += INDENT_SIZE
	for _, pair := range node.Pairs {
		pair.Key.Accept(p)
		pair.Value.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIdentifierExpressionNode prints an identifier leaf
func (p *PrintingVisitor) VisitIdentifierExpressionNode(node IdentifierExpressionNode) {
	p.line("Identifier", node.Literal())
}

// VisitUnaryExpressionNode prints the operator with its operand indented
// below
func (p *PrintingVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	p.line("Unary", node.Operator)
	p.Indent += INDENT_SIZE
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitBinaryExpressionNode prints the operator with both operands indented
// below
func (p *PrintingVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	p.line("Binary", node.Operator)
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Right.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitIfExpressionNode prints the conditional with condition, consequence,
// and alternative indented below
func (p *PrintingVisitor) VisitIfExpressionNode(node IfExpressionNode) {
	p.line("If", node.TokenLiteral())
	p.Indent += INDENT_SIZE
	node.Condition.Accept(p)
	node.Consequence.Accept(p)
	if node.Alternative != nil {
		node.Alternative.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitFunctionLiteralExpressionNode prints the function with parameters
// and body indented below
func (p *PrintingVisitor) VisitFunctionLiteralExpressionNode(node FunctionLiteralExpressionNode) {
	p.line("Function", node.Literal())
	p.Indent += INDENT_SIZE
	for _, parameter := range node.Parameters {
		parameter.Accept(p)
	}
	node.Body.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitCallExpressionNode prints the call with callee and arguments
// indented below
func (p *PrintingVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	p.line("Call", node.Literal())
	p.Indent += INDENT_SIZE
	node.Function.Accept(p)
	for _, argument := range node.Arguments {
		argument.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitIndexExpressionNode prints the subscript with the indexed value and
// the index indented below
func (p *PrintingVisitor) VisitIndexExpressionNode(node IndexExpressionNode) {
	p.line("Index", node.Literal())
	p.Indent += INDENT_SIZE
	node.Left.Accept(p)
	node.Index.Accept(p)
	p.Indent -= INDENT_SIZE
}

// VisitLetStatementNode prints the binding with its value indented below
func (p *PrintingVisitor) VisitLetStatementNode(node LetStatementNode) {
	p.line("Let", node.Name.Literal())
	p.Indent += INDENT_SIZE
	if node.Value != nil {
		node.Value.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitReturnStatementNode prints the return with its value indented below
func (p *PrintingVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	p.line("Return", node.TokenLiteral())
	p.Indent += INDENT_SIZE
	if node.ReturnValue != nil {
		node.ReturnValue.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}

// VisitExpressionStatementNode prints through to the wrapped expression
func (p *PrintingVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	if node.Expression != nil {
		node.Expression.Accept(p)
	}
}

// VisitBlockStatementNode prints the block with its statements indented
// below
func (p *PrintingVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	p.line("Block", node.Literal())
	p.Indent += INDENT_SIZE
	for _, stmt := range node.Statements {
		stmt.Accept(p)
	}
	p.Indent -= INDENT_SIZE
}
