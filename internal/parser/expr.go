package parser

import (
	"jsparse/internal/ast"
	"jsparse/internal/diag"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// parseSequenceExpr parses one assignment expression, folding a following
// comma chain into a SeqExpr.
func (p *Parser) parseSequenceExpr() (ast.Expr, bool) {
	first, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}

	exprs := []ast.Expr{first}
	for p.eat(token.Comma) {
		next, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, next)
	}
	sp := source.Span{Start: first.Span().Start, End: exprs[len(exprs)-1].Span().End}
	return &ast.SeqExpr{Loc: sp, Exprs: exprs}, true
}

// parseAssignExpr handles assignment (right-associative) on top of the
// conditional level.
func (p *Parser) parseAssignExpr() (ast.Expr, bool) {
	left, ok := p.parseCondExpr()
	if !ok {
		return nil, false
	}
	if !p.tok.IsAssignOp() {
		return left, true
	}
	if !isAssignTarget(left) {
		p.err = diag.NewError(diag.SynBadAssignTarget, p.tok.Span,
			"Unexpected token: invalid assignment target")
		return nil, false
	}

	op := p.tok.Kind
	p.advance()
	value, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	sp := source.Span{Start: left.Span().Start, End: value.Span().End}
	return &ast.AssignExpr{Loc: sp, Op: op, Target: left, Value: value}, true
}

// Only identifiers and member accesses are assignable in this subset.
func isAssignTarget(x ast.Expr) bool {
	switch x.(type) {
	case *ast.Ident, *ast.MemberExpr:
		return true
	}
	return false
}

// parseCondExpr handles the ternary, with right-nesting branches.
func (p *Parser) parseCondExpr() (ast.Expr, bool) {
	test, ok := p.parseBinaryExpr(bpLowest)
	if !ok {
		return nil, false
	}
	if !p.eat(token.Question) {
		return test, true
	}

	cons, ok := p.parseAssignExpr()
	if !ok || !p.expect(token.Colon) {
		return nil, false
	}
	alt, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	sp := source.Span{Start: test.Span().Start, End: alt.Span().End}
	return &ast.CondExpr{Loc: sp, Test: test, Cons: cons, Alt: alt}, true
}

// Binding powers, highest binds tightest. Exponentiation and assignment are
// the only right-associative binary levels; assignment and the conditional
// live outside this table.
const (
	bpLowest   = 4 // || starts here
	bpOrOr     = 4
	bpAndAnd   = 5
	bpBitOr    = 6
	bpBitXor   = 7
	bpBitAnd   = 8
	bpEquality = 9
	bpRelation = 10
	bpShift    = 11
	bpAdditive = 12
	bpMultipl  = 13
	bpExponent = 14
)

type binOp struct {
	bp         uint8
	rightAssoc bool
	logical    bool
}

var binOps = map[token.Kind]binOp{
	token.OrOr:         {bp: bpOrOr, logical: true},
	token.AndAnd:       {bp: bpAndAnd, logical: true},
	token.Pipe:         {bp: bpBitOr},
	token.Caret:        {bp: bpBitXor},
	token.Amp:          {bp: bpBitAnd},
	token.EqEq:         {bp: bpEquality},
	token.BangEq:       {bp: bpEquality},
	token.EqEqEq:       {bp: bpEquality},
	token.BangEqEq:     {bp: bpEquality},
	token.Lt:           {bp: bpRelation},
	token.Gt:           {bp: bpRelation},
	token.LtEq:         {bp: bpRelation},
	token.GtEq:         {bp: bpRelation},
	token.KwIn:         {bp: bpRelation},
	token.KwInstanceof: {bp: bpRelation},
	token.Shl:          {bp: bpShift},
	token.Shr:          {bp: bpShift},
	token.UShr:         {bp: bpShift},
	token.Plus:         {bp: bpAdditive},
	token.Minus:        {bp: bpAdditive},
	token.Star:         {bp: bpMultipl},
	token.Slash:        {bp: bpMultipl},
	token.Percent:      {bp: bpMultipl},
	token.StarStar:     {bp: bpExponent, rightAssoc: true},
}

// parseBinaryExpr is the precedence-climbing loop over the table above.
// An unparenthesized unary expression may not be the left operand of `**`.
func (p *Parser) parseBinaryExpr(minBP uint8) (ast.Expr, bool) {
	left, leftIsUnary, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	for {
		op, isBin := binOps[p.tok.Kind]
		if !isBin || op.bp < minBP {
			return left, true
		}

		if p.tok.Kind == token.StarStar && leftIsUnary {
			p.err = diag.NewError(diag.SynBadExponentBase, p.tok.Span,
				"Unexpected token \"**\": unary operand must be parenthesized")
			return nil, false
		}

		kind := p.tok.Kind
		p.advance()

		nextMin := op.bp + 1
		if op.rightAssoc {
			nextMin = op.bp
		}
		right, ok := p.parseBinaryExpr(nextMin)
		if !ok {
			return nil, false
		}

		sp := source.Span{Start: left.Span().Start, End: right.Span().End}
		if op.logical {
			left = &ast.LogicalExpr{Loc: sp, Op: kind, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpr{Loc: sp, Op: kind, Left: left, Right: right}
		}
		leftIsUnary = false
	}
}

// parseUnaryExpr parses prefix operators and updates; isUnary reports
// whether the result is a bare (unparenthesized) unary production, which the
// exponentiation rule needs.
func (p *Parser) parseUnaryExpr() (x ast.Expr, isUnary bool, ok bool) {
	switch p.tok.Kind {
	case token.Plus, token.Minus, token.Bang, token.Tilde,
		token.KwTypeof, token.KwVoid, token.KwDelete:
		op := p.tok.Kind
		start := p.tok.Span.Start
		p.advance()
		operand, _, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false, false
		}
		sp := source.Span{Start: start, End: operand.Span().End}
		return &ast.UnaryExpr{Loc: sp, Op: op, Operand: operand}, true, true

	case token.PlusPlus, token.MinusMinus:
		op := p.tok.Kind
		start := p.tok.Span.Start
		p.advance()
		operand, _, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false, false
		}
		sp := source.Span{Start: start, End: operand.Span().End}
		return &ast.UpdateExpr{Loc: sp, Op: op, Operand: operand, Prefix: true}, true, true
	}

	x, ok = p.parsePostfixExpr()
	return x, false, ok
}

// parsePostfixExpr parses a primary expression followed by member access,
// calls and postfix updates. A postfix ++/-- must not be preceded by a line
// break.
func (p *Parser) parsePostfixExpr() (ast.Expr, bool) {
	x, ok := p.parsePrimaryExpr()
	if !ok {
		return nil, false
	}
	x, ok = p.parseCallsAndMembers(x, true)
	if !ok {
		return nil, false
	}

	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.tok.NewlineBefore() {
		op := p.tok.Kind
		sp := source.Span{Start: x.Span().Start, End: p.tok.Span.End}
		p.advance()
		return &ast.UpdateExpr{Loc: sp, Op: op, Operand: x, Prefix: false}, true
	}
	return x, true
}

// parseCallsAndMembers left-folds `.name`, `[expr]`, call arguments and
// template continuations onto x. allowCall is off inside a `new` callee.
func (p *Parser) parseCallsAndMembers(x ast.Expr, allowCall bool) (ast.Expr, bool) {
	for {
		switch p.tok.Kind {
		case token.Dot:
			p.advance()
			name, ok := p.memberName()
			if !ok {
				return nil, false
			}
			sp := source.Span{Start: x.Span().Start, End: name.Loc.End}
			x = &ast.MemberExpr{Loc: sp, Object: x, Property: name}

		case token.LBracket:
			p.advance()
			idx, ok := p.parseSequenceExpr()
			if !ok {
				return nil, false
			}
			if !p.expect(token.RBracket) {
				return nil, false
			}
			x = &ast.MemberExpr{Loc: p.spanFrom(x.Span().Start), Object: x, Property: idx, Computed: true}

		case token.LParen:
			if !allowCall {
				return x, true
			}
			args, ok := p.parseArguments()
			if !ok {
				return nil, false
			}
			x = &ast.CallExpr{Loc: p.spanFrom(x.Span().Start), Callee: x, Args: args}

		default:
			return x, true
		}
	}
}

// memberName reads the identifier after a dot. Keywords are accepted as
// property names (`a.new`, `a.typeof`); they are identifiers in that
// position.
func (p *Parser) memberName() (*ast.Ident, bool) {
	if p.tok.Kind == token.Ident || p.tok.IsKeyword() {
		id := &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
		p.advance()
		return id, true
	}
	p.failUnexpected(p.tok)
	return nil, false
}

func (p *Parser) parseArguments() ([]ast.Expr, bool) {
	if !p.expect(token.LParen) {
		return nil, false
	}
	var args []ast.Expr
	for !p.at(token.RParen) {
		arg, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.expect(token.RParen) {
		return nil, false
	}
	return args, true
}
