// Package printer serializes an AST back into syntactically valid,
// semantically equivalent source text. Compact mode emits the canonical
// minified form (no unnecessary whitespace, `;` terminators, no trailing
// newline); the spaced mode differs only in whitespace.
package printer

import (
	"strings"

	"jsparse/internal/ast"
)

// Print renders the whole program. It is a pure function of the tree and
// performs no validation.
func Print(prog *ast.Program, compact bool) string {
	p := &printer{compact: compact}
	for i, s := range prog.Body {
		if i > 0 && !compact {
			p.b.WriteByte('\n')
		}
		p.stmt(s)
	}
	return p.b.String()
}

type printer struct {
	b       strings.Builder
	compact bool
}

func (p *printer) raw(s string) { p.b.WriteString(s) }

// space writes a space in spaced mode only.
func (p *printer) space() {
	if !p.compact {
		p.b.WriteByte(' ')
	}
}

// ===== statements =====

func (p *printer) stmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.EmptyStmt:
		p.raw(";")
	case *ast.ExprStmt:
		if startsWithBraceOrFunction(v.X) {
			p.raw("(")
			p.expr(v.X, precSeq)
			p.raw(")")
		} else {
			p.expr(v.X, precSeq)
		}
		p.raw(";")
	case *ast.BlockStmt:
		p.block(v)
	case *ast.VarDecl:
		p.varDecl(v)
		p.raw(";")
	case *ast.FuncDecl:
		p.raw("function ")
		p.raw(v.Name.Name)
		p.params(v.Params)
		p.space()
		p.block(v.Body)
	case *ast.ReturnStmt:
		if v.Value == nil {
			p.raw("return;")
		} else {
			p.raw("return ")
			p.expr(v.Value, precSeq)
			p.raw(";")
		}
	case *ast.IfStmt:
		p.raw("if")
		p.space()
		p.raw("(")
		p.expr(v.Test, precSeq)
		p.raw(")")
		p.space()
		p.stmt(v.Cons)
		if v.Alt != nil {
			if p.compact {
				p.raw("else")
				if !startsWithBrace(v.Alt) {
					p.raw(" ")
				}
			} else {
				p.raw(" else ")
			}
			p.stmt(v.Alt)
		}
	case *ast.WhileStmt:
		p.raw("while")
		p.space()
		p.raw("(")
		p.expr(v.Test, precSeq)
		p.raw(")")
		p.space()
		p.stmt(v.Body)
	case *ast.DoWhileStmt:
		p.raw("do ")
		p.stmt(v.Body)
		p.space()
		p.raw("while")
		p.space()
		p.raw("(")
		p.expr(v.Test, precSeq)
		p.raw(");")
	case *ast.ForStmt:
		p.raw("for")
		p.space()
		p.raw("(")
		if v.Init != nil {
			p.forHeadLeft(v.Init)
		}
		p.raw(";")
		if v.Test != nil {
			p.space()
			p.expr(v.Test, precSeq)
		}
		p.raw(";")
		if v.Update != nil {
			p.space()
			p.expr(v.Update, precSeq)
		}
		p.raw(")")
		p.space()
		p.stmt(v.Body)
	case *ast.ForInStmt:
		p.forInOf(v.Left, "in", v.Right, v.Body)
	case *ast.ForOfStmt:
		p.forInOf(v.Left, "of", v.Right, v.Body)
	case *ast.BreakStmt:
		p.jump("break", v.Label)
	case *ast.ContinueStmt:
		p.jump("continue", v.Label)
	case *ast.ThrowStmt:
		p.raw("throw ")
		p.expr(v.Value, precSeq)
		p.raw(";")
	case *ast.TryStmt:
		p.raw("try")
		p.space()
		p.block(v.Block)
		if v.Handler != nil {
			p.space()
			p.raw("catch")
			p.space()
			p.raw("(")
			p.raw(v.Handler.Param.Name)
			p.raw(")")
			p.space()
			p.block(v.Handler.Body)
		}
		if v.Finally != nil {
			p.space()
			p.raw("finally")
			p.space()
			p.block(v.Finally)
		}
	case *ast.LabeledStmt:
		p.raw(v.Label.Name)
		p.raw(":")
		p.space()
		p.stmt(v.Body)
	}
}

func (p *printer) block(b *ast.BlockStmt) {
	p.raw("{")
	for i, s := range b.Body {
		if i > 0 && !p.compact {
			p.b.WriteByte(' ')
		}
		p.stmt(s)
	}
	p.raw("}")
}

func (p *printer) varDecl(v *ast.VarDecl) {
	p.raw(v.Kind.String())
	p.raw(" ")
	for i, d := range v.Decls {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.raw(d.Name.Name)
		if d.Init != nil {
			p.space()
			p.raw("=")
			p.space()
			p.expr(d.Init, precAssign)
		}
	}
}

// forHeadLeft prints a for-head clause without its own terminator.
func (p *printer) forHeadLeft(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.VarDecl:
		p.varDecl(v)
	case *ast.ExprStmt:
		p.expr(v.X, precSeq)
	}
}

func (p *printer) forInOf(left ast.Stmt, op string, right ast.Expr, body ast.Stmt) {
	p.raw("for")
	p.space()
	p.raw("(")
	p.forHeadLeft(left)
	p.raw(" " + op + " ")
	p.expr(right, precSeq)
	p.raw(")")
	p.space()
	p.stmt(body)
}

func (p *printer) jump(kw string, label *ast.Ident) {
	p.raw(kw)
	if label != nil {
		p.raw(" ")
		p.raw(label.Name)
	}
	p.raw(";")
}

func startsWithBrace(s ast.Stmt) bool {
	_, ok := s.(*ast.BlockStmt)
	return ok
}

// A statement-leading `function` or `{` would re-parse as a declaration or a
// block, so the expression gets wrapped in parentheses.
func startsWithBraceOrFunction(x ast.Expr) bool {
	for {
		switch v := x.(type) {
		case *ast.FuncLit, *ast.ObjectLit:
			return true
		case *ast.MemberExpr:
			x = v.Object
		case *ast.CallExpr:
			x = v.Callee
		case *ast.BinaryExpr:
			x = v.Left
		case *ast.LogicalExpr:
			x = v.Left
		case *ast.CondExpr:
			x = v.Test
		case *ast.AssignExpr:
			x = v.Target
		case *ast.UpdateExpr:
			if v.Prefix {
				return false
			}
			x = v.Operand
		case *ast.SeqExpr:
			x = v.Exprs[0]
		default:
			return false
		}
	}
}
