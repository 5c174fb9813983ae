package parser

import (
	"jsparse/internal/ast"
	"jsparse/internal/token"
)

// parseFuncRest parses the `(params) { body }` part shared by function
// declarations and function expressions.
func (p *Parser) parseFuncRest() ([]*ast.Ident, *ast.BlockStmt, bool) {
	if !p.expect(token.LParen) {
		return nil, nil, false
	}
	var params []*ast.Ident
	for !p.at(token.RParen) {
		param, ok := p.expectIdent()
		if !ok {
			return nil, nil, false
		}
		params = append(params, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.expect(token.RParen) {
		return nil, nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, nil, false
	}
	return params, body, true
}

// parseFuncExpr parses a function expression, optionally named.
func (p *Parser) parseFuncExpr() (ast.Expr, bool) {
	start := p.tok.Span.Start
	p.advance() // 'function'

	var name *ast.Ident
	if p.at(token.Ident) {
		name = &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance()
	}
	params, body, ok := p.parseFuncRest()
	if !ok {
		return nil, false
	}
	return &ast.FuncLit{Loc: p.spanFrom(start), Name: name, Params: params, Body: body}, true
}

// parseArrowBody consumes the `=>` and the expression or block body. The
// parameter list has already been read by the caller.
func (p *Parser) parseArrowBody(start uint32, params []*ast.Ident) (ast.Expr, bool) {
	if !p.expect(token.FatArrow) {
		return nil, false
	}

	if p.at(token.LBrace) {
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ArrowFunc{Loc: p.spanFrom(start), Params: params, BodyBlock: body}, true
	}

	body, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	return &ast.ArrowFunc{Loc: p.spanFrom(start), Params: params, BodyExpr: body}, true
}
