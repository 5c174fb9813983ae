package printer

import (
	"jsparse/internal/ast"
	"jsparse/internal/token"
)

// Precedence levels used to decide where parentheses must be restored.
// They follow the parser's binding powers, extended upward for the postfix,
// call and member tiers and downward for sequences.
const (
	precSeq      = 1
	precAssign   = 2
	precCond     = 3
	precUnary    = 15
	precPostfix  = 16
	precCall     = 17
	precMember   = 18
	precPrimary  = 19
	precBareNew  = 16 // `new X` without arguments binds looser than member access
	precArgsNew  = 18
	precExponent = 14
)

var binPrec = map[token.Kind]int{
	token.OrOr:         4,
	token.AndAnd:       5,
	token.Pipe:         6,
	token.Caret:        7,
	token.Amp:          8,
	token.EqEq:         9,
	token.BangEq:       9,
	token.EqEqEq:       9,
	token.BangEqEq:     9,
	token.Lt:           10,
	token.Gt:           10,
	token.LtEq:         10,
	token.GtEq:         10,
	token.KwIn:         10,
	token.KwInstanceof: 10,
	token.Shl:          11,
	token.Shr:          11,
	token.UShr:         11,
	token.Plus:         12,
	token.Minus:        12,
	token.Star:         13,
	token.Slash:        13,
	token.Percent:      13,
	token.StarStar:     precExponent,
}

func exprPrec(x ast.Expr) int {
	switch v := x.(type) {
	case *ast.SeqExpr:
		return precSeq
	case *ast.AssignExpr, *ast.ArrowFunc:
		return precAssign
	case *ast.CondExpr:
		return precCond
	case *ast.LogicalExpr:
		return binPrec[v.Op]
	case *ast.BinaryExpr:
		return binPrec[v.Op]
	case *ast.UnaryExpr:
		return precUnary
	case *ast.UpdateExpr:
		if v.Prefix {
			return precUnary
		}
		return precPostfix
	case *ast.CallExpr:
		return precCall
	case *ast.NewExpr:
		if v.Args == nil {
			return precBareNew
		}
		return precArgsNew
	case *ast.MemberExpr:
		return precMember
	}
	return precPrimary
}

// expr prints x, parenthesizing when its precedence is below what the
// context requires.
func (p *printer) expr(x ast.Expr, min int) {
	if exprPrec(x) < min {
		p.raw("(")
		p.exprInner(x)
		p.raw(")")
		return
	}
	p.exprInner(x)
}

func (p *printer) exprInner(x ast.Expr) {
	switch v := x.(type) {
	case *ast.Ident:
		p.raw(v.Name)

	case *ast.ThisExpr:
		p.raw("this")

	case *ast.Literal:
		p.literal(v)

	case *ast.TemplateLit:
		p.raw("`")
		for i, q := range v.Quasis {
			if i > 0 {
				p.raw("}")
			}
			p.raw(q.Raw)
			if i < len(v.Exprs) {
				p.raw("${")
				p.expr(v.Exprs[i], precSeq)
			}
		}
		p.raw("`")

	case *ast.ArrayLit:
		p.raw("[")
		p.exprList(v.Elems)
		p.raw("]")

	case *ast.ObjectLit:
		p.raw("{")
		for i, prop := range v.Props {
			if i > 0 {
				p.raw(",")
				p.space()
			}
			p.property(prop)
		}
		p.raw("}")

	case *ast.MemberExpr:
		p.expr(v.Object, precCall)
		if v.Computed {
			p.raw("[")
			p.expr(v.Property, precSeq)
			p.raw("]")
		} else {
			p.raw(".")
			p.exprInner(v.Property)
		}

	case *ast.CallExpr:
		p.expr(v.Callee, precCall)
		p.raw("(")
		p.exprList(v.Args)
		p.raw(")")

	case *ast.NewExpr:
		p.raw("new ")
		p.expr(v.Callee, precMember)
		if v.Args != nil {
			p.raw("(")
			p.exprList(v.Args)
			p.raw(")")
		}

	case *ast.UnaryExpr:
		op := v.Op.String()
		p.raw(op)
		// word operators and sign stacking need the separator
		if isWordOp(v.Op) || needsGap(v.Op, v.Operand) {
			p.raw(" ")
		}
		p.expr(v.Operand, precUnary)

	case *ast.UpdateExpr:
		if v.Prefix {
			p.raw(v.Op.String())
			p.expr(v.Operand, precUnary)
		} else {
			p.expr(v.Operand, precPostfix)
			p.raw(v.Op.String())
		}

	case *ast.BinaryExpr:
		p.binary(v.Op, v.Left, v.Right)

	case *ast.LogicalExpr:
		p.binary(v.Op, v.Left, v.Right)

	case *ast.CondExpr:
		p.expr(v.Test, precCond+1)
		p.space()
		p.raw("?")
		p.space()
		p.expr(v.Cons, precAssign)
		p.space()
		p.raw(":")
		p.space()
		p.expr(v.Alt, precAssign)

	case *ast.AssignExpr:
		p.expr(v.Target, precPostfix)
		p.space()
		p.raw(v.Op.String())
		p.space()
		p.expr(v.Value, precAssign)

	case *ast.SeqExpr:
		for i, e := range v.Exprs {
			if i > 0 {
				p.raw(",")
				p.space()
			}
			p.expr(e, precAssign)
		}

	case *ast.FuncLit:
		p.raw("function")
		if v.Name != nil {
			p.raw(" ")
			p.raw(v.Name.Name)
		}
		p.params(v.Params)
		p.space()
		p.block(v.Body)

	case *ast.ArrowFunc:
		if len(v.Params) == 1 {
			p.raw(v.Params[0].Name)
		} else {
			p.params(v.Params)
		}
		p.space()
		p.raw("=>")
		p.space()
		if v.BodyBlock != nil {
			p.block(v.BodyBlock)
		} else if _, isObj := v.BodyExpr.(*ast.ObjectLit); isObj {
			p.raw("(")
			p.exprInner(v.BodyExpr)
			p.raw(")")
		} else {
			p.expr(v.BodyExpr, precAssign)
		}
	}
}

func (p *printer) binary(op token.Kind, left, right ast.Expr) {
	bp := binPrec[op]
	leftMin, rightMin := bp, bp+1
	if op == token.StarStar {
		// right-associative, and a bare unary may not be the base
		leftMin, rightMin = bp+1, bp
	}
	if op == token.StarStar && isBareUnary(left) {
		p.raw("(")
		p.exprInner(left)
		p.raw(")")
	} else {
		p.expr(left, leftMin)
	}

	text := op.String()
	if isWordOp(op) {
		p.raw(" " + text + " ")
	} else {
		p.space()
		p.raw(text)
		p.space()
	}
	p.expr(right, rightMin)
}

func isBareUnary(x ast.Expr) bool {
	switch v := x.(type) {
	case *ast.UnaryExpr:
		return true
	case *ast.UpdateExpr:
		return v.Prefix
	}
	return false
}

func isWordOp(op token.Kind) bool {
	switch op {
	case token.KwTypeof, token.KwVoid, token.KwDelete, token.KwIn, token.KwInstanceof:
		return true
	}
	return false
}

// needsGap keeps `- -x` and `+ +x` from fusing into `--x` / `++x`.
func needsGap(op token.Kind, operand ast.Expr) bool {
	var inner token.Kind
	switch v := operand.(type) {
	case *ast.UnaryExpr:
		inner = v.Op
	case *ast.UpdateExpr:
		if !v.Prefix {
			return false
		}
		inner = v.Op
	default:
		return false
	}
	switch {
	case op == token.Minus && (inner == token.Minus || inner == token.MinusMinus):
		return true
	case op == token.Plus && (inner == token.Plus || inner == token.PlusPlus):
		return true
	}
	return false
}

func (p *printer) literal(v *ast.Literal) {
	switch v.Kind {
	case ast.LitTrue:
		p.raw("true")
	case ast.LitFalse:
		p.raw("false")
	case ast.LitNull:
		p.raw("null")
	default:
		p.raw(v.Raw)
	}
}

func (p *printer) property(prop *ast.Property) {
	if prop.Shorthand {
		p.raw(prop.Key.(*ast.Ident).Name)
		return
	}
	switch k := prop.Key.(type) {
	case *ast.Ident:
		p.raw(k.Name)
	case *ast.Literal:
		p.raw(k.Raw)
	}
	p.raw(":")
	p.space()
	p.expr(prop.Value, precAssign)
}

func (p *printer) params(params []*ast.Ident) {
	p.raw("(")
	for i, param := range params {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.raw(param.Name)
	}
	p.raw(")")
}

func (p *printer) exprList(xs []ast.Expr) {
	for i, x := range xs {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.expr(x, precAssign)
	}
}
