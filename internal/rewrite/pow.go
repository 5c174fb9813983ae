// Package rewrite holds semantics-preserving AST transforms. Transforms
// reconstruct: a changed node is a fresh allocation, an untouched subtree
// keeps its identity and is shared with the input tree, and the input tree
// itself is never mutated.
package rewrite

import (
	"jsparse/internal/ast"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// Pow replaces every `left ** right` with `Math.pow(left, right)`, bottom-up
// so nested exponentiations compose. Synthesized nodes cover the span of the
// expression they replace.
func Pow(prog *ast.Program) *ast.Program {
	body := powStmts(prog.Body)
	if sameStmts(body, prog.Body) {
		return prog
	}
	return &ast.Program{Loc: prog.Loc, Body: body}
}

func sameStmts(a, b []ast.Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func powStmts(body []ast.Stmt) []ast.Stmt {
	var out []ast.Stmt
	for i, s := range body {
		rs := powStmt(s)
		if out == nil && rs != s {
			out = make([]ast.Stmt, i, len(body))
			copy(out, body[:i])
		}
		if out != nil {
			out = append(out, rs)
		}
	}
	if out == nil {
		return body
	}
	return out
}

func powStmt(s ast.Stmt) ast.Stmt {
	switch v := s.(type) {
	case *ast.ExprStmt:
		if x := powExpr(v.X); x != v.X {
			return &ast.ExprStmt{Loc: v.Loc, X: x}
		}
	case *ast.BlockStmt:
		return powBlock(v)
	case *ast.VarDecl:
		var decls []*ast.Declarator
		for i, d := range v.Decls {
			rd := d
			if d.Init != nil {
				if init := powExpr(d.Init); init != d.Init {
					rd = &ast.Declarator{Loc: d.Loc, Name: d.Name, Init: init}
				}
			}
			if decls == nil && rd != d {
				decls = make([]*ast.Declarator, i, len(v.Decls))
				copy(decls, v.Decls[:i])
			}
			if decls != nil {
				decls = append(decls, rd)
			}
		}
		if decls != nil {
			return &ast.VarDecl{Loc: v.Loc, Kind: v.Kind, Decls: decls}
		}
	case *ast.FuncDecl:
		if body := powBlock(v.Body); body != v.Body {
			return &ast.FuncDecl{Loc: v.Loc, Name: v.Name, Params: v.Params, Body: body}
		}
	case *ast.ReturnStmt:
		if v.Value != nil {
			if value := powExpr(v.Value); value != v.Value {
				return &ast.ReturnStmt{Loc: v.Loc, Value: value}
			}
		}
	case *ast.IfStmt:
		test := powExpr(v.Test)
		cons := powStmt(v.Cons)
		alt := powOptStmt(v.Alt)
		if test != v.Test || cons != v.Cons || alt != v.Alt {
			return &ast.IfStmt{Loc: v.Loc, Test: test, Cons: cons, Alt: alt}
		}
	case *ast.WhileStmt:
		test := powExpr(v.Test)
		body := powStmt(v.Body)
		if test != v.Test || body != v.Body {
			return &ast.WhileStmt{Loc: v.Loc, Test: test, Body: body}
		}
	case *ast.DoWhileStmt:
		body := powStmt(v.Body)
		test := powExpr(v.Test)
		if body != v.Body || test != v.Test {
			return &ast.DoWhileStmt{Loc: v.Loc, Body: body, Test: test}
		}
	case *ast.ForStmt:
		init := powOptStmt(v.Init)
		test := powOptExpr(v.Test)
		update := powOptExpr(v.Update)
		body := powStmt(v.Body)
		if init != v.Init || test != v.Test || update != v.Update || body != v.Body {
			return &ast.ForStmt{Loc: v.Loc, Init: init, Test: test, Update: update, Body: body}
		}
	case *ast.ForInStmt:
		left := powStmt(v.Left)
		right := powExpr(v.Right)
		body := powStmt(v.Body)
		if left != v.Left || right != v.Right || body != v.Body {
			return &ast.ForInStmt{Loc: v.Loc, Left: left, Right: right, Body: body}
		}
	case *ast.ForOfStmt:
		left := powStmt(v.Left)
		right := powExpr(v.Right)
		body := powStmt(v.Body)
		if left != v.Left || right != v.Right || body != v.Body {
			return &ast.ForOfStmt{Loc: v.Loc, Left: left, Right: right, Body: body}
		}
	case *ast.ThrowStmt:
		if value := powExpr(v.Value); value != v.Value {
			return &ast.ThrowStmt{Loc: v.Loc, Value: value}
		}
	case *ast.TryStmt:
		block := powBlock(v.Block)
		handler := v.Handler
		if handler != nil {
			if hbody := powBlock(handler.Body); hbody != handler.Body {
				handler = &ast.CatchClause{Loc: handler.Loc, Param: handler.Param, Body: hbody}
			}
		}
		finally := v.Finally
		if finally != nil {
			finally = powBlock(finally)
		}
		if block != v.Block || handler != v.Handler || finally != v.Finally {
			return &ast.TryStmt{Loc: v.Loc, Block: block, Handler: handler, Finally: finally}
		}
	case *ast.LabeledStmt:
		if body := powStmt(v.Body); body != v.Body {
			return &ast.LabeledStmt{Loc: v.Loc, Label: v.Label, Body: body}
		}
	}
	return s
}

func powBlock(b *ast.BlockStmt) *ast.BlockStmt {
	body := powStmts(b.Body)
	if sameStmts(body, b.Body) {
		return b
	}
	return &ast.BlockStmt{Loc: b.Loc, Body: body}
}

func powOptStmt(s ast.Stmt) ast.Stmt {
	if s == nil {
		return nil
	}
	return powStmt(s)
}

func powOptExpr(x ast.Expr) ast.Expr {
	if x == nil {
		return nil
	}
	return powExpr(x)
}

func powExprs(xs []ast.Expr) []ast.Expr {
	var out []ast.Expr
	for i, x := range xs {
		rx := powExpr(x)
		if out == nil && rx != x {
			out = make([]ast.Expr, i, len(xs))
			copy(out, xs[:i])
		}
		if out != nil {
			out = append(out, rx)
		}
	}
	if out == nil {
		return xs
	}
	return out
}

func sameExprs(a, b []ast.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func powExpr(x ast.Expr) ast.Expr {
	switch v := x.(type) {
	case *ast.TemplateLit:
		if exprs := powExprs(v.Exprs); !sameExprs(exprs, v.Exprs) {
			return &ast.TemplateLit{Loc: v.Loc, Quasis: v.Quasis, Exprs: exprs}
		}
	case *ast.ArrayLit:
		if elems := powExprs(v.Elems); !sameExprs(elems, v.Elems) {
			return &ast.ArrayLit{Loc: v.Loc, Elems: elems}
		}
	case *ast.ObjectLit:
		var props []*ast.Property
		for i, prop := range v.Props {
			rp := prop
			if value := powExpr(prop.Value); value != prop.Value {
				rp = &ast.Property{Loc: prop.Loc, Key: prop.Key, Value: value, Shorthand: prop.Shorthand}
			}
			if props == nil && rp != prop {
				props = make([]*ast.Property, i, len(v.Props))
				copy(props, v.Props[:i])
			}
			if props != nil {
				props = append(props, rp)
			}
		}
		if props != nil {
			return &ast.ObjectLit{Loc: v.Loc, Props: props}
		}
	case *ast.MemberExpr:
		object := powExpr(v.Object)
		property := powExpr(v.Property)
		if object != v.Object || property != v.Property {
			return &ast.MemberExpr{Loc: v.Loc, Object: object, Property: property, Computed: v.Computed}
		}
	case *ast.CallExpr:
		callee := powExpr(v.Callee)
		args := powExprs(v.Args)
		if callee != v.Callee || !sameExprs(args, v.Args) {
			return &ast.CallExpr{Loc: v.Loc, Callee: callee, Args: args}
		}
	case *ast.NewExpr:
		callee := powExpr(v.Callee)
		args := powExprs(v.Args)
		if callee != v.Callee || !sameExprs(args, v.Args) {
			return &ast.NewExpr{Loc: v.Loc, Callee: callee, Args: args}
		}
	case *ast.UnaryExpr:
		if operand := powExpr(v.Operand); operand != v.Operand {
			return &ast.UnaryExpr{Loc: v.Loc, Op: v.Op, Operand: operand}
		}
	case *ast.UpdateExpr:
		if operand := powExpr(v.Operand); operand != v.Operand {
			return &ast.UpdateExpr{Loc: v.Loc, Op: v.Op, Operand: operand, Prefix: v.Prefix}
		}
	case *ast.BinaryExpr:
		left := powExpr(v.Left)
		right := powExpr(v.Right)
		if v.Op == token.StarStar {
			return mathPowCall(v.Loc, left, right)
		}
		if left != v.Left || right != v.Right {
			return &ast.BinaryExpr{Loc: v.Loc, Op: v.Op, Left: left, Right: right}
		}
	case *ast.LogicalExpr:
		left := powExpr(v.Left)
		right := powExpr(v.Right)
		if left != v.Left || right != v.Right {
			return &ast.LogicalExpr{Loc: v.Loc, Op: v.Op, Left: left, Right: right}
		}
	case *ast.CondExpr:
		test := powExpr(v.Test)
		cons := powExpr(v.Cons)
		alt := powExpr(v.Alt)
		if test != v.Test || cons != v.Cons || alt != v.Alt {
			return &ast.CondExpr{Loc: v.Loc, Test: test, Cons: cons, Alt: alt}
		}
	case *ast.AssignExpr:
		target := powExpr(v.Target)
		value := powExpr(v.Value)
		if target != v.Target || value != v.Value {
			return &ast.AssignExpr{Loc: v.Loc, Op: v.Op, Target: target, Value: value}
		}
	case *ast.SeqExpr:
		if exprs := powExprs(v.Exprs); !sameExprs(exprs, v.Exprs) {
			return &ast.SeqExpr{Loc: v.Loc, Exprs: exprs}
		}
	case *ast.FuncLit:
		if body := powBlock(v.Body); body != v.Body {
			return &ast.FuncLit{Loc: v.Loc, Name: v.Name, Params: v.Params, Body: body}
		}
	case *ast.ArrowFunc:
		if v.BodyBlock != nil {
			if body := powBlock(v.BodyBlock); body != v.BodyBlock {
				return &ast.ArrowFunc{Loc: v.Loc, Params: v.Params, BodyBlock: body}
			}
		} else if body := powExpr(v.BodyExpr); body != v.BodyExpr {
			return &ast.ArrowFunc{Loc: v.Loc, Params: v.Params, BodyExpr: body}
		}
	}
	return x
}

// mathPowCall builds `Math.pow(left, right)` over the span of the original
// exponentiation.
func mathPowCall(sp source.Span, left, right ast.Expr) ast.Expr {
	callee := &ast.MemberExpr{
		Loc:      sp,
		Object:   &ast.Ident{Loc: sp, Name: "Math"},
		Property: &ast.Ident{Loc: sp, Name: "pow"},
	}
	return &ast.CallExpr{Loc: sp, Callee: callee, Args: []ast.Expr{left, right}}
}
