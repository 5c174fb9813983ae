package parser

import (
	"jsparse/internal/ast"
	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// parseStatement dispatches on the leading token. Anything that is not a
// recognized statement keyword parses as an expression statement.
func (p *Parser) parseStatement() (ast.Stmt, bool) {
	switch p.tok.Kind {
	case token.Semicolon:
		sp := p.tok.Span
		p.advance()
		return &ast.EmptyStmt{Loc: sp}, true
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarDecl(true)
	case token.KwFunction:
		return p.parseFuncDecl()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.KwBreak:
		return p.parseBreakContinue(true)
	case token.KwContinue:
		return p.parseBreakContinue(false)
	case token.KwThrow:
		return p.parseThrow()
	case token.KwTry:
		return p.parseTry()
	case token.Ident:
		return p.parseLabeledOrExpr()
	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt wraps a (possibly comma-joined) expression. The statement
// span equals the expression's span; the terminator is not included.
func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	x, ok := p.parseSequenceExpr()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	return &ast.ExprStmt{Loc: x.Span(), X: x}, true
}

// parseLabeledOrExpr resolves `ident:` into a labeled statement, anything
// else into an expression statement starting with that identifier.
func (p *Parser) parseLabeledOrExpr() (ast.Stmt, bool) {
	if next := p.lx.Peek(); next.Kind == token.Colon {
		label := &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance() // label
		p.advance() // ':'
		body, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		sp := label.Loc.Cover(body.Span())
		return &ast.LabeledStmt{Loc: sp, Label: label, Body: body}, true
	}
	return p.parseExprStmt()
}

func (p *Parser) parseBlock() (*ast.BlockStmt, bool) {
	start := p.tok.Span.Start
	if !p.expect(token.LBrace) {
		return nil, false
	}
	var body []ast.Stmt
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.failUnexpected(p.tok)
			return nil, false
		}
		stmt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		body = append(body, stmt)
	}
	p.advance() // '}'
	return &ast.BlockStmt{Loc: p.spanFrom(start), Body: body}, true
}

// parseVarDecl parses `var|let|const` declarators. When terminated is false
// the declaration belongs to a for-head and the caller owns the terminator.
func (p *Parser) parseVarDecl(terminated bool) (*ast.VarDecl, bool) {
	start := p.tok.Span.Start
	kind := p.tok.Kind
	p.advance()

	var decls []*ast.Declarator
	for {
		d, ok := p.parseDeclarator()
		if !ok {
			return nil, false
		}
		decls = append(decls, d)
		if !p.eat(token.Comma) {
			break
		}
	}

	if terminated && !p.expectSemicolon() {
		return nil, false
	}
	return &ast.VarDecl{Loc: p.spanFrom(start), Kind: kind, Decls: decls}, true
}

func (p *Parser) parseDeclarator() (*ast.Declarator, bool) {
	name, ok := p.expectIdent()
	if !ok {
		return nil, false
	}
	d := &ast.Declarator{Loc: name.Loc, Name: name}
	if p.eat(token.Assign) {
		init, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		d.Init = init
		d.Loc = d.Loc.Cover(init.Span())
	}
	return d, true
}

func (p *Parser) parseFuncDecl() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance() // 'function'
	name, ok := p.expectIdent()
	if !ok {
		return nil, false
	}
	params, body, ok := p.parseFuncRest()
	if !ok {
		return nil, false
	}
	return &ast.FuncDecl{Loc: p.spanFrom(start), Name: name, Params: params, Body: body}, true
}

func (p *Parser) parseReturn() (ast.Stmt, bool) {
	sp := p.tok.Span
	p.advance()

	// a line break after `return` inserts the semicolon
	if p.at(token.Semicolon) {
		p.advance()
		return &ast.ReturnStmt{Loc: sp}, true
	}
	if p.at(token.RBrace) || p.at(token.EOF) || p.tok.NewlineBefore() {
		return &ast.ReturnStmt{Loc: sp}, true
	}

	value, ok := p.parseSequenceExpr()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	sp = sp.Cover(value.Span())
	return &ast.ReturnStmt{Loc: sp, Value: value}, true
}

func (p *Parser) parseIf() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance()
	if !p.expect(token.LParen) {
		return nil, false
	}
	test, ok := p.parseSequenceExpr()
	if !ok || !p.expect(token.RParen) {
		return nil, false
	}
	cons, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	var alt ast.Stmt
	if p.eat(token.KwElse) {
		if alt, ok = p.parseStatement(); !ok {
			return nil, false
		}
	}
	return &ast.IfStmt{Loc: p.spanFrom(start), Test: test, Cons: cons, Alt: alt}, true
}

func (p *Parser) parseWhile() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance()
	if !p.expect(token.LParen) {
		return nil, false
	}
	test, ok := p.parseSequenceExpr()
	if !ok || !p.expect(token.RParen) {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.WhileStmt{Loc: p.spanFrom(start), Test: test, Body: body}, true
}

func (p *Parser) parseDoWhile() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance()
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	if !p.expect(token.KwWhile) || !p.expect(token.LParen) {
		return nil, false
	}
	test, ok := p.parseSequenceExpr()
	if !ok || !p.expect(token.RParen) {
		return nil, false
	}
	p.eat(token.Semicolon)
	return &ast.DoWhileStmt{Loc: p.spanFrom(start), Body: body, Test: test}, true
}

// parseFor covers the classic three-clause form plus `in` and `of` heads.
// The head kind is only known after the first clause is parsed.
func (p *Parser) parseFor() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance()
	if !p.expect(token.LParen) {
		return nil, false
	}

	var init ast.Stmt
	switch {
	case p.at(token.Semicolon):
		p.advance()
	case p.at(token.KwVar) || p.at(token.KwLet) || p.at(token.KwConst):
		decl, ok := p.parseVarDecl(false)
		if !ok {
			return nil, false
		}
		if p.at(token.KwIn) || p.isOf() {
			if len(decl.Decls) != 1 || decl.Decls[0].Init != nil {
				p.err = diag.NewError(diag.SynForBadHeader, p.tok.Span,
					"Unexpected token: for-in/of head must declare a single name")
				return nil, false
			}
			return p.parseForInOf(start, decl)
		}
		if !p.expect(token.Semicolon) {
			return nil, false
		}
		init = decl
	default:
		x, ok := p.parseSequenceExpr()
		if !ok {
			return nil, false
		}
		// `in` binds as a relational operator inside the head expression,
		// so a for-in head comes back as a top-level `in` node; split it
		// apart again.
		if bin, isIn := x.(*ast.BinaryExpr); isIn && bin.Op == token.KwIn {
			left := &ast.ExprStmt{Loc: bin.Left.Span(), X: bin.Left}
			return p.finishForInOf(start, left, bin.Right, true)
		}
		left := &ast.ExprStmt{Loc: x.Span(), X: x}
		if p.isOf() {
			return p.parseForInOf(start, left)
		}
		if !p.expect(token.Semicolon) {
			return nil, false
		}
		init = left
	}

	var test, update ast.Expr
	var ok bool
	if !p.at(token.Semicolon) {
		if test, ok = p.parseSequenceExpr(); !ok {
			return nil, false
		}
	}
	if !p.expect(token.Semicolon) {
		return nil, false
	}
	if !p.at(token.RParen) {
		if update, ok = p.parseSequenceExpr(); !ok {
			return nil, false
		}
	}
	if !p.expect(token.RParen) {
		return nil, false
	}

	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	return &ast.ForStmt{Loc: p.spanFrom(start), Init: init, Test: test, Update: update, Body: body}, true
}

// isOf recognizes the contextual `of`, which lexes as a plain identifier.
func (p *Parser) isOf() bool {
	return p.tok.IsIdent() && p.tok.Text == "of"
}

func (p *Parser) parseForInOf(start uint32, left ast.Stmt) (ast.Stmt, bool) {
	isIn := p.at(token.KwIn)
	p.advance() // 'in' or 'of'

	right, ok := p.parseSequenceExpr()
	if !ok {
		return nil, false
	}
	return p.finishForInOf(start, left, right, isIn)
}

func (p *Parser) finishForInOf(start uint32, left ast.Stmt, right ast.Expr, isIn bool) (ast.Stmt, bool) {
	if !p.expect(token.RParen) {
		return nil, false
	}
	body, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	if isIn {
		return &ast.ForInStmt{Loc: p.spanFrom(start), Left: left, Right: right, Body: body}, true
	}
	return &ast.ForOfStmt{Loc: p.spanFrom(start), Left: left, Right: right, Body: body}, true
}

func (p *Parser) parseBreakContinue(isBreak bool) (ast.Stmt, bool) {
	sp := p.tok.Span
	p.advance()

	var label *ast.Ident
	// a label must sit on the same line as the keyword
	if p.tok.IsIdent() && !p.tok.NewlineBefore() {
		label = &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance()
		sp = sp.Cover(label.Loc)
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	if isBreak {
		return &ast.BreakStmt{Loc: sp, Label: label}, true
	}
	return &ast.ContinueStmt{Loc: sp, Label: label}, true
}

func (p *Parser) parseThrow() (ast.Stmt, bool) {
	sp := p.tok.Span
	p.advance()
	value, ok := p.parseSequenceExpr()
	if !ok {
		return nil, false
	}
	if !p.expectSemicolon() {
		return nil, false
	}
	sp = sp.Cover(value.Span())
	return &ast.ThrowStmt{Loc: sp, Value: value}, true
}

func (p *Parser) parseTry() (ast.Stmt, bool) {
	start := p.tok.Span.Start
	p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	var handler *ast.CatchClause
	if p.at(token.KwCatch) {
		cstart := p.tok.Span.Start
		p.advance()
		if !p.expect(token.LParen) {
			return nil, false
		}
		param, ok := p.expectIdent()
		if !ok || !p.expect(token.RParen) {
			return nil, false
		}
		cbody, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		handler = &ast.CatchClause{Loc: p.spanFrom(cstart), Param: param, Body: cbody}
	}

	var finally *ast.BlockStmt
	if p.eat(token.KwFinally) {
		if finally, ok = p.parseBlock(); !ok {
			return nil, false
		}
	}

	if handler == nil && finally == nil {
		p.failUnexpected(p.tok)
		return nil, false
	}
	return &ast.TryStmt{Loc: p.spanFrom(start), Block: block, Handler: handler, Finally: finally}, true
}
