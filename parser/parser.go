/*
File : go-bruno/parser/parser.go
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Bruno programming language.

The parser converts a stream of tokens from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, unary, literals, identifiers)
- Statements (let bindings, returns, expression statements, blocks)
- Function literals and calls
- Array and hash literals, index expressions
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Error collection (doesn't stop on the first error: a failed statement is
  logged and skipped so every remaining top-level statement still parses)
- Parenthesized string forms on every node for round-trip testing
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-bruno/lexer"
)

// unaryParseFunction parses a construct that begins an expression: a
// literal, an identifier, a prefix operator, or an opening delimiter.
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses a construct that continues an expression with
// the given left operand: an infix operator, a call, or a subscript.
type binaryParseFunction func(left ExpressionNode) ExpressionNode

// Parser represents the parser state. It maintains all the information
// needed to parse Bruno source code into an AST.
type Parser struct {
	Lex       lexer.Lexer // Lexer instance providing the token stream
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix parsers
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix parsers

	// Collect parsing errors instead of stopping at the first one.
	// This allows reporting multiple errors in a single parse.
	Errors []string
}

// NewParser creates and initializes a new Parser instance for the given
// source code. The parser is ready to use immediately after creation; call
// Parse() to build the AST.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex: lexer.NewLexer(src),
	}
	par.init()
	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error list, and the two-token lookahead window.
func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression
	par.UnaryFuncs[lexer.INT_LIT] = par.parseIntegerLiteral
	par.UnaryFuncs[lexer.TRUE_KEY] = par.parseBooleanLiteral
	par.UnaryFuncs[lexer.FALSE_KEY] = par.parseBooleanLiteral
	par.UnaryFuncs[lexer.IDENTIFIER_ID] = par.parseIdentifier
	par.UnaryFuncs[lexer.STRING_LIT] = par.parseStringLiteral
	par.UnaryFuncs[lexer.NOT_OP] = par.parseUnaryExpression
	par.UnaryFuncs[lexer.MINUS_OP] = par.parseUnaryExpression
	par.UnaryFuncs[lexer.LEFT_PAREN] = par.parseGroupedExpression
	par.UnaryFuncs[lexer.LEFT_BRACKET] = par.parseArrayLiteral
	par.UnaryFuncs[lexer.LEFT_BRACE] = par.parseHashLiteral
	par.UnaryFuncs[lexer.IF_KEY] = par.parseIfExpression
	par.UnaryFuncs[lexer.FUNC_KEY] = par.parseFunctionLiteral

	// Register binary/infix parsing functions
	// These handle tokens that continue an expression
	par.BinaryFuncs[lexer.PLUS_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.MINUS_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.MUL_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.DIV_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.EQ_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.NE_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.LT_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.GT_OP] = par.parseBinaryExpression
	par.BinaryFuncs[lexer.LEFT_PAREN] = par.parseCallExpression
	par.BinaryFuncs[lexer.LEFT_BRACKET] = par.parseIndexExpression

	// Prime the two-token lookahead window
	par.advance()
	par.advance()
}

// Parse is the main entry point. It parses the whole token stream into a
// RootNode, collecting any errors on par.Errors along the way. A let
// statement missing its name or '=' is logged and omitted; a statement whose
// expression fails to parse is logged and kept with a nil expression slot.
// Parsing resumes at the next top-level statement so a single pass reports
// every problem.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{
		Statements: make([]StatementNode, 0),
	}
	for par.CurrToken.Type != lexer.EOF_TYPE {
		statement := par.parseStatement()
		if statement != nil {
			root.Statements = append(root.Statements, statement)
		}
		par.advance()
	}
	return root
}

// parseExpression implements the core Pratt parsing loop.
//
// It first applies the unary (prefix) parser registered for the current
// token; if none exists, the expression is malformed and an error is
// recorded. It then keeps folding infix operators into the left operand
// while the next token binds tighter than the given precedence. A semicolon
// always terminates the loop.
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unary, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.noUnaryFunctionError(par.CurrToken.Type)
		return nil
	}

	left := unary()

	for !par.nextTokenIs(lexer.SEMICOLON_DELIM) && precedence < par.nextPrecedence() {
		binary, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return left
		}
		par.advance()
		left = binary(left)
	}

	return left
}

// parseIntegerLiteral converts the current INT token into a 64-bit integer
// literal node. Overflow is a parse error, not a lexing error.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	token := par.CurrToken
	value, err := strconv.ParseInt(token.Literal, 10, 64)
	if err != nil {
		par.Errors = append(par.Errors, fmt.Sprintf("could not parse %s as integer", token.Literal))
		return nil
	}
	return &IntegerLiteralExpressionNode{Token: token, Value: value}
}

// parseBooleanLiteral builds a boolean literal node from the current TRUE
// or FALSE token.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteralExpressionNode{
		Token: par.CurrToken,
		Value: par.currTokenIs(lexer.TRUE_KEY),
	}
}

// parseIdentifier builds an identifier node from the current IDENT token.
func (par *Parser) parseIdentifier() ExpressionNode {
	return &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}
}

// parseStringLiteral builds a string literal node from the current STRING
// token.
func (par *Parser) parseStringLiteral() ExpressionNode {
	return &StringLiteralExpressionNode{Token: par.CurrToken, Value: par.CurrToken.Literal}
}
