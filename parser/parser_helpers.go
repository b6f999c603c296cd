/*
File : go-bruno/parser/parser_helpers.go
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-bruno/lexer"
)

// advance shifts the two-token lookahead window forward by one position:
// CurrToken becomes the previous NextToken, and NextToken is pulled from
// the lexer.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currTokenIs reports whether the current token has the given type.
func (par *Parser) currTokenIs(tokenType lexer.TokenType) bool {
	return par.CurrToken.Type == tokenType
}

// nextTokenIs reports whether the lookahead token has the given type.
func (par *Parser) nextTokenIs(tokenType lexer.TokenType) bool {
	return par.NextToken.Type == tokenType
}

// expectNext advances when the lookahead token has the given type.
// Otherwise it records an expectation error and leaves the window in
// place; the caller aborts the construct it was parsing.
func (par *Parser) expectNext(tokenType lexer.TokenType) bool {
	if par.nextTokenIs(tokenType) {
		par.advance()
		return true
	}
	par.expectationError(tokenType)
	return false
}

// expectationError records a mismatch between the expected and the actual
// lookahead token.
func (par *Parser) expectationError(tokenType lexer.TokenType) {
	par.Errors = append(par.Errors,
		fmt.Sprintf("Expected next token to be %s, got %s instead", tokenType, par.NextToken.Type))
}

// noUnaryFunctionError records that no prefix parser is registered for the
// current token kind, meaning the token cannot begin an expression.
func (par *Parser) noUnaryFunctionError(tokenType lexer.TokenType) {
	par.Errors = append(par.Errors,
		fmt.Sprintf("no prefix parser for %s function", tokenType))
}
