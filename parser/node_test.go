/*
File : go-bruno/parser/node_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/go-bruno/lexer"
)

// TestNode_Literal builds a program by hand and checks its string form,
// independently of the parser
func TestNode_Literal(t *testing.T) {
	root := &RootNode{
		Statements: []StatementNode{
			&LetStatementNode{
				Token: lexer.NewToken(lexer.LET_KEY, "let"),
				Name: &IdentifierExpressionNode{
					Token: lexer.NewToken(lexer.IDENTIFIER_ID, "myVar"),
					Name:  "myVar",
				},
				Value: &IdentifierExpressionNode{
					Token: lexer.NewToken(lexer.IDENTIFIER_ID, "anotherVar"),
					Name:  "anotherVar",
				},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar", root.Literal())
	assert.Equal(t, "let", root.TokenLiteral())
}

// TestNode_EmptyProgram checks the degenerate root node
func TestNode_EmptyProgram(t *testing.T) {
	root := &RootNode{Statements: []StatementNode{}}
	assert.Equal(t, "", root.TokenLiteral())
	assert.Equal(t, "", root.Literal())
}

// TestNode_PrintingVisitor checks the AST dump produced by the visitor
func TestNode_PrintingVisitor(t *testing.T) {
	par := NewParser(`1 + 2 * 3`)
	root := par.Parse()
	assert.Empty(t, par.Errors)

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	output := visitor.String()

	assert.Contains(t, output, "Root Node")
	assert.Contains(t, output, "Binary Node [+]")
	assert.Contains(t, output, "Binary Node [*]")
	assert.Contains(t, output, "Integer Node [3]")

	// children are indented under their parents
	assert.Contains(t, output, "\n    Visiting")
	assert.Contains(t, output, "\n        Visiting")
}

// TestNode_PrintingVisitor_Statements checks visitor coverage of statement
// and literal node kinds
func TestNode_PrintingVisitor_Statements(t *testing.T) {
	src := `
	let table = {"one": 1};
	let items = [1, "two", true];
	let pick = fn(x) { if (x) { return items[0]; } else { table["one"] } };
	pick(!false);
	`
	par := NewParser(src)
	root := par.Parse()
	assert.Empty(t, par.Errors)

	visitor := &PrintingVisitor{}
	root.Accept(visitor)
	output := visitor.String()

	for _, kind := range []string{"Let", "Hash", "Array", "Function", "Block", "If", "Return", "Index", "Call", "Unary", "String", "Boolean", "Identifier"} {
		assert.Contains(t, output, kind+" Node", "kind: %s", kind)
	}
}
