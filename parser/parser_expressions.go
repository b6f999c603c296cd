/*
File : go-bruno/parser/parser_expressions.go
*/
package parser

import (
	"github.com/akashmaji946/go-bruno/lexer"
)

// parseUnaryExpression parses a prefix operation ('-' or '!'). The operand
// is parsed at PREFIX_PRIORITY so that prefix operators bind tighter than
// any binary operator: "-a * b" parses as "((-a) * b)".
func (par *Parser) parseUnaryExpression() ExpressionNode {
	token := par.CurrToken
	operator := token.Literal
	par.advance()
	right := par.parseExpression(PREFIX_PRIORITY)
	return &UnaryExpressionNode{Token: token, Operator: operator, Right: right}
}

// parseBinaryExpression parses an infix operation with the given left
// operand. The right operand is parsed at the operator's own precedence,
// which makes every binary operator left-associative:
// "a + b + c" parses as "((a + b) + c)".
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	token := par.CurrToken
	operator := token.Literal
	precedence := par.currPrecedence()
	par.advance()
	right := par.parseExpression(precedence)
	return &BinaryExpressionNode{Token: token, Left: left, Operator: operator, Right: right}
}

// parseGroupedExpression parses a parenthesized expression. The parentheses
// leave no node behind; they only reset the precedence context.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	par.advance()
	expression := par.parseExpression(MINIMUM_PRIORITY)
	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	return expression
}

// parseArrayLiteral parses an array literal: a '['-delimited expression
// list.
func (par *Parser) parseArrayLiteral() ExpressionNode {
	token := par.CurrToken
	elements := par.parseExpressionList(lexer.RIGHT_BRACKET)
	return &ArrayLiteralExpressionNode{Token: token, Elements: elements}
}

// parseHashLiteral parses a hash literal: comma-separated "key : value"
// entries between braces. Pairs keep their source order.
func (par *Parser) parseHashLiteral() ExpressionNode {
	token := par.CurrToken
	pairs := make([]HashPairNode, 0)

	for !par.nextTokenIs(lexer.RIGHT_BRACE) {
		par.advance()
		key := par.parseExpression(MINIMUM_PRIORITY)

		if !par.expectNext(lexer.COLON_DELIM) {
			return nil
		}

		par.advance()
		value := par.parseExpression(MINIMUM_PRIORITY)
		pairs = append(pairs, HashPairNode{Key: key, Value: value})

		if !par.nextTokenIs(lexer.RIGHT_BRACE) && !par.expectNext(lexer.COMMA_DELIM) {
			return nil
		}
	}

	if !par.expectNext(lexer.RIGHT_BRACE) {
		return nil
	}

	return &HashLiteralExpressionNode{Token: token, Pairs: pairs}
}

// parseIfExpression parses a conditional:
//
//	if (<condition>) { <consequence> } [else { <alternative> }]
//
// The parentheses around the condition and the braces around both blocks
// are mandatory.
func (par *Parser) parseIfExpression() ExpressionNode {
	token := par.CurrToken

	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}

	par.advance()
	condition := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}
	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}

	consequence := par.parseBlockStatement()

	var alternative *BlockStatementNode
	if par.nextTokenIs(lexer.ELSE_KEY) {
		par.advance()
		if !par.expectNext(lexer.LEFT_BRACE) {
			return nil
		}
		alternative = par.parseBlockStatement()
	}

	return &IfExpressionNode{
		Token:       token,
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}
}

// parseFunctionLiteral parses a function literal:
//
//	fn(<parameters>) { <body> }
//
// The parameter list may be empty.
func (par *Parser) parseFunctionLiteral() ExpressionNode {
	token := par.CurrToken

	if !par.expectNext(lexer.LEFT_PAREN) {
		return nil
	}

	parameters := par.parseFunctionParameters()

	if !par.expectNext(lexer.LEFT_BRACE) {
		return nil
	}

	body := par.parseBlockStatement()

	return &FunctionLiteralExpressionNode{Token: token, Parameters: parameters, Body: body}
}

// parseFunctionParameters parses the comma-separated identifier list of a
// function literal, leaving the current token on the closing parenthesis.
func (par *Parser) parseFunctionParameters() []*IdentifierExpressionNode {
	parameters := make([]*IdentifierExpressionNode, 0)

	if par.nextTokenIs(lexer.RIGHT_PAREN) {
		par.advance()
		return parameters
	}

	par.advance()
	parameters = append(parameters, &IdentifierExpressionNode{
		Token: par.CurrToken,
		Name:  par.CurrToken.Literal,
	})

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		par.advance()
		parameters = append(parameters, &IdentifierExpressionNode{
			Token: par.CurrToken,
			Name:  par.CurrToken.Literal,
		})
	}

	if !par.expectNext(lexer.RIGHT_PAREN) {
		return nil
	}

	return parameters
}

// parseCallExpression parses a function application with the given callee.
// '(' binds at CALL_PRIORITY, so any expression that evaluates to a
// function can be applied directly.
func (par *Parser) parseCallExpression(function ExpressionNode) ExpressionNode {
	token := par.CurrToken
	arguments := par.parseExpressionList(lexer.RIGHT_PAREN)
	return &CallExpressionNode{Token: token, Function: function, Arguments: arguments}
}

// parseIndexExpression parses a subscript with the given left operand.
// '[' binds at INDEX_PRIORITY, the highest level, so "a[0][1]" nests as
// "((a[0])[1])".
func (par *Parser) parseIndexExpression(left ExpressionNode) ExpressionNode {
	token := par.CurrToken
	par.advance()

	index := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectNext(lexer.RIGHT_BRACKET) {
		return nil
	}

	return &IndexExpressionNode{Token: token, Left: left, Index: index}
}

// parseExpressionList parses a comma-separated expression sequence
// terminated by the given closing token ('RPAREN' for argument lists,
// 'RBRACKET' for array literals). An immediately closing token yields an
// empty list.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ExpressionNode {
	list := make([]ExpressionNode, 0)

	if par.nextTokenIs(end) {
		par.advance()
		return list
	}

	par.advance()
	list = append(list, par.parseExpression(MINIMUM_PRIORITY))

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		par.advance()
		list = append(list, par.parseExpression(MINIMUM_PRIORITY))
	}

	if !par.expectNext(end) {
		return nil
	}

	return list
}
