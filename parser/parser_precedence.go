/*
File : go-bruno/parser/parser_precedence.go
*/
package parser

import "github.com/akashmaji946/go-bruno/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
// 1. Equality operators
// 2. Relational operators
// 3. Additive operators
// 4. Multiplicative operators
// 5. Unary/Prefix operators
// 6. Function application
// 7. Index/subscript (postfix)
//
// Example: In "a + b * c", multiplication has higher precedence than
// addition, so it's parsed as "(a + (b * c))" rather than "((a + b) * c)".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	EQUALITY_PRIORITY = 10

	// Relational operators: < >
	RELATIONAL_PRIORITY = 20

	// Additive operators: + -
	PLUS_PRIORITY = 30

	// Multiplicative operators: * /
	MUL_PRIORITY = 40

	// Unary/Prefix operators: ! -
	PREFIX_PRIORITY = 50

	// Function application: callee(...)
	CALL_PRIORITY = 60

	// Index/subscript operator (highest, postfix): value[...]
	INDEX_PRIORITY = 70
)

// getPrecedence returns the precedence level for a given token type.
// This function is central to the Pratt parsing algorithm, determining how
// tightly infix operators bind to their operands. Tokens that are not
// infix operators sit at MINIMUM_PRIORITY, which stops the folding loop.
func getPrecedence(tokenType lexer.TokenType) int {
	switch tokenType {
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY
	case lexer.LT_OP, lexer.GT_OP:
		return RELATIONAL_PRIORITY
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return PLUS_PRIORITY
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY
	case lexer.LEFT_BRACKET:
		return INDEX_PRIORITY
	default:
		return MINIMUM_PRIORITY
	}
}

// currPrecedence returns the precedence of the current token.
func (par *Parser) currPrecedence() int {
	return getPrecedence(par.CurrToken.Type)
}

// nextPrecedence returns the precedence of the lookahead token.
func (par *Parser) nextPrecedence() int {
	return getPrecedence(par.NextToken.Type)
}
