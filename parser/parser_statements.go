/*
File : go-bruno/parser/parser_statements.go
*/
package parser

import (
	"github.com/akashmaji946/go-bruno/lexer"
)

// parseStatement dispatches on the current token kind: 'let' and 'return'
// introduce their statement forms; anything else is an expression
// statement.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.LET_KEY:
		return par.parseLetStatement()
	case lexer.RETURN_KEY:
		return par.parseReturnStatement()
	default:
		return par.parseExpressionStatement()
	}
}

// parseLetStatement parses a binding:
//
//	let <identifier> = <expression> [;]
//
// A missing identifier or '=' records an error and aborts the statement.
// At most one trailing semicolon is consumed.
func (par *Parser) parseLetStatement() StatementNode {
	token := par.CurrToken

	if !par.expectNext(lexer.IDENTIFIER_ID) {
		return nil
	}

	name := &IdentifierExpressionNode{Token: par.CurrToken, Name: par.CurrToken.Literal}

	if !par.expectNext(lexer.ASSIGN_OP) {
		return nil
	}

	par.advance()
	value := par.parseExpression(MINIMUM_PRIORITY)

	if par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
	}

	return &LetStatementNode{Token: token, Name: name, Value: value}
}

// parseReturnStatement parses a return:
//
//	return <expression> [;;...]
//
// Any number of trailing semicolons is consumed.
func (par *Parser) parseReturnStatement() StatementNode {
	token := par.CurrToken
	par.advance()

	returnValue := par.parseExpression(MINIMUM_PRIORITY)

	for par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
	}

	return &ReturnStatementNode{Token: token, ReturnValue: returnValue}
}

// parseExpressionStatement parses one expression at the lowest precedence
// and wraps it in statement position. An optional trailing semicolon is
// consumed.
func (par *Parser) parseExpressionStatement() StatementNode {
	token := par.CurrToken
	expression := par.parseExpression(MINIMUM_PRIORITY)

	if par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
	}

	return &ExpressionStatementNode{Token: token, Expression: expression}
}

// parseBlockStatement parses statements until the closing brace (or end of
// input, for an unterminated block). On return the current token is the
// closing brace itself; the caller's loop steps past it.
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	token := par.CurrToken
	statements := make([]StatementNode, 0)
	par.advance()

	for !par.currTokenIs(lexer.RIGHT_BRACE) && !par.currTokenIs(lexer.EOF_TYPE) {
		statement := par.parseStatement()
		if statement != nil {
			statements = append(statements, statement)
		}
		par.advance()
	}

	return &BlockStatementNode{Token: token, Statements: statements}
}
