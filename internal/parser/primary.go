package parser

import (
	"jsparse/internal/ast"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// parsePrimaryExpr parses the atoms: identifiers, this, literals, regex and
// template literals, array/object literals, function expressions, `new`, and
// parenthesized expressions or arrow parameter lists.
func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	switch p.tok.Kind {
	case token.Ident:
		id := &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance()
		// `x => body`
		if p.at(token.FatArrow) && !p.tok.NewlineBefore() {
			return p.parseArrowBody(id.Loc.Start, []*ast.Ident{id})
		}
		return id, true

	case token.KwThis:
		x := &ast.ThisExpr{Loc: p.tok.Span}
		p.advance()
		return x, true

	case token.NumberLit:
		return p.literal(ast.LitNumber), true
	case token.StringLit:
		return p.literal(ast.LitString), true
	case token.KwTrue:
		return p.literal(ast.LitTrue), true
	case token.KwFalse:
		return p.literal(ast.LitFalse), true
	case token.KwNull:
		return p.literal(ast.LitNull), true

	case token.Slash, token.SlashAssign:
		// expression position: `/` restarts as a regex literal
		p.tok = p.lx.RescanRegex(p.tok)
		if p.tok.Kind != token.RegexLit {
			p.failUnexpected(p.tok)
			return nil, false
		}
		return p.literal(ast.LitRegex), true

	case token.TemplateComplete, token.TemplateHead:
		return p.parseTemplate()

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseObjectLit()

	case token.KwFunction:
		return p.parseFuncExpr()

	case token.KwNew:
		return p.parseNewExpr()

	case token.LParen:
		return p.parseParenOrArrow()
	}

	p.failUnexpected(p.tok)
	return nil, false
}

func (p *Parser) literal(kind ast.LitKind) *ast.Literal {
	lit := &ast.Literal{Loc: p.tok.Span, Kind: kind, Raw: p.tok.Text}
	p.advance()
	return lit
}

// parseTemplate consumes a template literal. The head token ends with "${";
// each substitution ends at a "}" that is rescanned into the next segment.
func (p *Parser) parseTemplate() (ast.Expr, bool) {
	start := p.tok.Span.Start

	if p.tok.Kind == token.TemplateComplete {
		quasi := templateElement(p.tok, 1, 1)
		sp := p.tok.Span
		p.advance()
		return &ast.TemplateLit{Loc: sp, Quasis: []*ast.TemplateElement{quasi}}, true
	}

	quasis := []*ast.TemplateElement{templateElement(p.tok, 1, 2)}
	var exprs []ast.Expr
	p.advance()

	for {
		x, ok := p.parseSequenceExpr()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, x)

		if !p.at(token.RBrace) {
			p.failUnexpected(p.tok)
			return nil, false
		}
		seg := p.lx.RescanTemplateContinue(p.tok)
		switch seg.Kind {
		case token.TemplateMiddle:
			quasis = append(quasis, templateElement(seg, 1, 2))
			p.tok = seg
			p.advance()
		case token.TemplateTail:
			quasis = append(quasis, templateElement(seg, 1, 1))
			sp := source.Span{Start: start, End: seg.Span.End}
			p.tok = seg
			p.advance()
			return &ast.TemplateLit{Loc: sp, Quasis: quasis, Exprs: exprs}, true
		default:
			p.failUnexpected(seg)
			return nil, false
		}
	}
}

// templateElement strips the segment delimiters: trimL bytes at the front
// (backtick or closing brace) and trimR at the back (backtick or "${").
func templateElement(tok token.Token, trimL, trimR uint32) *ast.TemplateElement {
	sp := source.Span{Start: tok.Span.Start + trimL, End: tok.Span.End - trimR}
	return &ast.TemplateElement{Loc: sp, Raw: tok.Text[trimL : uint32(len(tok.Text))-trimR]}
}

func (p *Parser) parseArrayLit() (ast.Expr, bool) {
	start := p.tok.Span.Start
	p.advance() // '['
	var elems []ast.Expr
	for !p.at(token.RBracket) {
		el, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		elems = append(elems, el)
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.expect(token.RBracket) {
		return nil, false
	}
	return &ast.ArrayLit{Loc: p.spanFrom(start), Elems: elems}, true
}

func (p *Parser) parseObjectLit() (ast.Expr, bool) {
	start := p.tok.Span.Start
	p.advance() // '{'
	var props []*ast.Property
	for !p.at(token.RBrace) {
		prop, ok := p.parseProperty()
		if !ok {
			return nil, false
		}
		props = append(props, prop)
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.expect(token.RBrace) {
		return nil, false
	}
	return &ast.ObjectLit{Loc: p.spanFrom(start), Props: props}, true
}

// parseProperty reads one `key: value` or shorthand member. Keys may be
// identifiers, keywords (treated as names), or string/number literals.
func (p *Parser) parseProperty() (*ast.Property, bool) {
	var key ast.Expr
	switch {
	case p.tok.Kind == token.Ident || p.tok.IsKeyword():
		key = &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance()
	case p.tok.Kind == token.StringLit:
		key = p.literal(ast.LitString)
	case p.tok.Kind == token.NumberLit:
		key = p.literal(ast.LitNumber)
	default:
		p.failUnexpected(p.tok)
		return nil, false
	}

	if p.eat(token.Colon) {
		value, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		sp := source.Span{Start: key.Span().Start, End: value.Span().End}
		return &ast.Property{Loc: sp, Key: key, Value: value}, true
	}

	// shorthand: the key must be a plain identifier
	id, isIdent := key.(*ast.Ident)
	if !isIdent {
		p.failUnexpected(p.tok)
		return nil, false
	}
	return &ast.Property{Loc: id.Loc, Key: id, Value: id, Shorthand: true}, true
}

func (p *Parser) parseNewExpr() (ast.Expr, bool) {
	start := p.tok.Span.Start
	p.advance() // 'new'

	callee, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}
	// member accesses bind to the callee, the first call ends it
	if callee, ok = p.parseCallsAndMembers(callee, false); !ok {
		return nil, false
	}

	var args []ast.Expr
	if p.at(token.LParen) {
		if args, ok = p.parseArguments(); !ok {
			return nil, false
		}
	}
	return &ast.NewExpr{Loc: p.spanFrom(start), Callee: callee, Args: args}, true
}

// parseParenOrArrow resolves `(` into either a parenthesized expression or
// an arrow function parameter list, decided by the token after the closing
// parenthesis.
func (p *Parser) parseParenOrArrow() (ast.Expr, bool) {
	start := p.tok.Span.Start
	p.advance() // '('

	// `() => body` is the only valid empty parenthesis form
	if p.eat(token.RParen) {
		if !p.at(token.FatArrow) {
			p.failUnexpected(p.tok)
			return nil, false
		}
		return p.parseArrowBody(start, nil)
	}

	x, ok := p.parseSequenceExpr()
	if !ok {
		return nil, false
	}
	if !p.expect(token.RParen) {
		return nil, false
	}

	if p.at(token.FatArrow) && !p.tok.NewlineBefore() {
		params, ok := exprToParams(x)
		if !ok {
			p.failUnexpected(p.tok)
			return nil, false
		}
		return p.parseArrowBody(start, params)
	}
	return x, true
}

// exprToParams reinterprets a parenthesized expression as an arrow parameter
// list: a single identifier or a comma sequence of identifiers.
func exprToParams(x ast.Expr) ([]*ast.Ident, bool) {
	switch v := x.(type) {
	case *ast.Ident:
		return []*ast.Ident{v}, true
	case *ast.SeqExpr:
		params := make([]*ast.Ident, 0, len(v.Exprs))
		for _, e := range v.Exprs {
			id, isIdent := e.(*ast.Ident)
			if !isIdent {
				return nil, false
			}
			params = append(params, id)
		}
		return params, true
	}
	return nil, false
}
