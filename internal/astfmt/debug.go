// Package astfmt renders a parsed tree into the two output formats: a
// deterministic debug text dump and the reference-schema JSON document.
package astfmt

import (
	"fmt"
	"strings"

	"jsparse/internal/ast"
	"jsparse/internal/token"
)

// DebugDump renders the program's statement list in the debug format:
// every node wrapped as `Loc { start: N, end: N, item: ... }`, collections
// bracketed. The format is internal, but stable for identical input.
func DebugDump(prog *ast.Program) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, s := range prog.Body {
		if i > 0 {
			b.WriteString(", ")
		}
		debugStmt(&b, s)
	}
	b.WriteByte(']')
	return b.String()
}

func openLoc(b *strings.Builder, n ast.Node) {
	sp := n.Span()
	fmt.Fprintf(b, "Loc { start: %d, end: %d, item: ", sp.Start, sp.End)
}

func closeLoc(b *strings.Builder) {
	b.WriteString(" }")
}

func debugStmt(b *strings.Builder, s ast.Stmt) {
	openLoc(b, s)
	switch v := s.(type) {
	case *ast.EmptyStmt:
		b.WriteString("Empty")
	case *ast.ExprStmt:
		b.WriteString("Expression(")
		debugExpr(b, v.X)
		b.WriteString(")")
	case *ast.BlockStmt:
		b.WriteString("Block { body: ")
		debugStmtList(b, v.Body)
		closeLoc(b)
	case *ast.VarDecl:
		fmt.Fprintf(b, "Declaration { kind: %s, declarators: [", declKindName(v.Kind))
		for i, d := range v.Decls {
			if i > 0 {
				b.WriteString(", ")
			}
			openLoc(b, d)
			b.WriteString("Declarator { name: ")
			debugExpr(b, d.Name)
			b.WriteString(", value: ")
			debugOptExpr(b, d.Init)
			closeLoc(b)
			closeLoc(b)
		}
		b.WriteString("]")
		closeLoc(b)
	case *ast.FuncDecl:
		b.WriteString("Function { name: ")
		debugExpr(b, v.Name)
		b.WriteString(", params: ")
		debugParams(b, v.Params)
		b.WriteString(", body: ")
		debugStmtList(b, v.Body.Body)
		closeLoc(b)
	case *ast.ReturnStmt:
		b.WriteString("Return { value: ")
		debugOptExpr(b, v.Value)
		closeLoc(b)
	case *ast.IfStmt:
		b.WriteString("If { test: ")
		debugExpr(b, v.Test)
		b.WriteString(", consequent: ")
		debugStmt(b, v.Cons)
		b.WriteString(", alternate: ")
		debugOptStmt(b, v.Alt)
		closeLoc(b)
	case *ast.WhileStmt:
		b.WriteString("While { test: ")
		debugExpr(b, v.Test)
		b.WriteString(", body: ")
		debugStmt(b, v.Body)
		closeLoc(b)
	case *ast.DoWhileStmt:
		b.WriteString("Do { body: ")
		debugStmt(b, v.Body)
		b.WriteString(", test: ")
		debugExpr(b, v.Test)
		closeLoc(b)
	case *ast.ForStmt:
		b.WriteString("For { init: ")
		debugOptStmt(b, v.Init)
		b.WriteString(", test: ")
		debugOptExpr(b, v.Test)
		b.WriteString(", update: ")
		debugOptExpr(b, v.Update)
		b.WriteString(", body: ")
		debugStmt(b, v.Body)
		closeLoc(b)
	case *ast.ForInStmt:
		debugForInOf(b, "ForIn", v.Left, v.Right, v.Body)
	case *ast.ForOfStmt:
		debugForInOf(b, "ForOf", v.Left, v.Right, v.Body)
	case *ast.BreakStmt:
		b.WriteString("Break { label: ")
		debugOptIdent(b, v.Label)
		closeLoc(b)
	case *ast.ContinueStmt:
		b.WriteString("Continue { label: ")
		debugOptIdent(b, v.Label)
		closeLoc(b)
	case *ast.ThrowStmt:
		b.WriteString("Throw { value: ")
		debugExpr(b, v.Value)
		closeLoc(b)
	case *ast.TryStmt:
		b.WriteString("Try { block: ")
		debugStmtList(b, v.Block.Body)
		b.WriteString(", handler: ")
		if v.Handler == nil {
			b.WriteString("None")
		} else {
			b.WriteString("Some(")
			openLoc(b, v.Handler)
			b.WriteString("CatchClause { param: ")
			debugExpr(b, v.Handler.Param)
			b.WriteString(", body: ")
			debugStmtList(b, v.Handler.Body.Body)
			closeLoc(b)
			closeLoc(b)
			b.WriteString(")")
		}
		b.WriteString(", finally: ")
		if v.Finally == nil {
			b.WriteString("None")
		} else {
			b.WriteString("Some(")
			debugStmtList(b, v.Finally.Body)
			b.WriteString(")")
		}
		closeLoc(b)
	case *ast.LabeledStmt:
		fmt.Fprintf(b, "Labeled { label: %q, body: ", v.Label.Name)
		debugStmt(b, v.Body)
		closeLoc(b)
	}
	closeLoc(b)
}

func debugForInOf(b *strings.Builder, name string, left ast.Stmt, right ast.Expr, body ast.Stmt) {
	b.WriteString(name)
	b.WriteString(" { left: ")
	debugStmt(b, left)
	b.WriteString(", right: ")
	debugExpr(b, right)
	b.WriteString(", body: ")
	debugStmt(b, body)
	closeLoc(b)
}

func debugStmtList(b *strings.Builder, body []ast.Stmt) {
	b.WriteByte('[')
	for i, s := range body {
		if i > 0 {
			b.WriteString(", ")
		}
		debugStmt(b, s)
	}
	b.WriteByte(']')
}

func debugOptStmt(b *strings.Builder, s ast.Stmt) {
	if s == nil {
		b.WriteString("None")
		return
	}
	b.WriteString("Some(")
	debugStmt(b, s)
	b.WriteString(")")
}

func debugOptExpr(b *strings.Builder, x ast.Expr) {
	if x == nil {
		b.WriteString("None")
		return
	}
	b.WriteString("Some(")
	debugExpr(b, x)
	b.WriteString(")")
}

func debugOptIdent(b *strings.Builder, id *ast.Ident) {
	if id == nil {
		b.WriteString("None")
		return
	}
	b.WriteString("Some(")
	debugExpr(b, id)
	b.WriteString(")")
}

func debugExpr(b *strings.Builder, x ast.Expr) {
	openLoc(b, x)
	switch v := x.(type) {
	case *ast.Ident:
		fmt.Fprintf(b, "Identifier(%q)", v.Name)
	case *ast.ThisExpr:
		b.WriteString("This")
	case *ast.Literal:
		b.WriteString("Literal(")
		debugLiteral(b, v)
		b.WriteString(")")
	case *ast.TemplateLit:
		b.WriteString("Template { quasis: [")
		for i, q := range v.Quasis {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%q", q.Raw)
		}
		b.WriteString("], expressions: ")
		debugExprList(b, v.Exprs)
		closeLoc(b)
	case *ast.ArrayLit:
		b.WriteString("Array { body: ")
		debugExprList(b, v.Elems)
		closeLoc(b)
	case *ast.ObjectLit:
		b.WriteString("Object { body: [")
		for i, prop := range v.Props {
			if i > 0 {
				b.WriteString(", ")
			}
			debugProperty(b, prop)
		}
		b.WriteString("]")
		closeLoc(b)
	case *ast.MemberExpr:
		if v.Computed {
			b.WriteString("ComputedMember { object: ")
		} else {
			b.WriteString("Member { object: ")
		}
		debugExpr(b, v.Object)
		b.WriteString(", property: ")
		debugExpr(b, v.Property)
		closeLoc(b)
	case *ast.CallExpr:
		b.WriteString("Call { callee: ")
		debugExpr(b, v.Callee)
		b.WriteString(", arguments: ")
		debugExprList(b, v.Args)
		closeLoc(b)
	case *ast.NewExpr:
		b.WriteString("New { callee: ")
		debugExpr(b, v.Callee)
		b.WriteString(", arguments: ")
		debugExprList(b, v.Args)
		closeLoc(b)
	case *ast.UnaryExpr:
		fmt.Fprintf(b, "Prefix { operator: %q, operand: ", v.Op.String())
		debugExpr(b, v.Operand)
		closeLoc(b)
	case *ast.UpdateExpr:
		if v.Prefix {
			fmt.Fprintf(b, "Prefix { operator: %q, operand: ", v.Op.String())
		} else {
			fmt.Fprintf(b, "Postfix { operator: %q, operand: ", v.Op.String())
		}
		debugExpr(b, v.Operand)
		closeLoc(b)
	case *ast.BinaryExpr:
		debugBinary(b, "Binary", v.Op, v.Left, v.Right)
	case *ast.LogicalExpr:
		debugBinary(b, "Logical", v.Op, v.Left, v.Right)
	case *ast.CondExpr:
		b.WriteString("Conditional { test: ")
		debugExpr(b, v.Test)
		b.WriteString(", consequent: ")
		debugExpr(b, v.Cons)
		b.WriteString(", alternate: ")
		debugExpr(b, v.Alt)
		closeLoc(b)
	case *ast.AssignExpr:
		fmt.Fprintf(b, "Assign { operator: %q, target: ", v.Op.String())
		debugExpr(b, v.Target)
		b.WriteString(", value: ")
		debugExpr(b, v.Value)
		closeLoc(b)
	case *ast.SeqExpr:
		b.WriteString("Sequence { body: ")
		debugExprList(b, v.Exprs)
		closeLoc(b)
	case *ast.FuncLit:
		b.WriteString("Function { name: ")
		debugOptIdent(b, v.Name)
		b.WriteString(", params: ")
		debugParams(b, v.Params)
		b.WriteString(", body: ")
		debugStmtList(b, v.Body.Body)
		closeLoc(b)
	case *ast.ArrowFunc:
		b.WriteString("Arrow { params: ")
		debugParams(b, v.Params)
		b.WriteString(", body: ")
		if v.BodyBlock != nil {
			b.WriteString("Block(")
			debugStmtList(b, v.BodyBlock.Body)
			b.WriteString(")")
		} else {
			b.WriteString("Expression(")
			debugExpr(b, v.BodyExpr)
			b.WriteString(")")
		}
		closeLoc(b)
	}
	closeLoc(b)
}

func debugBinary(b *strings.Builder, name string, op token.Kind, left, right ast.Expr) {
	fmt.Fprintf(b, "%s { operator: %q, left: ", name, op.String())
	debugExpr(b, left)
	b.WriteString(", right: ")
	debugExpr(b, right)
	closeLoc(b)
}

func debugProperty(b *strings.Builder, prop *ast.Property) {
	openLoc(b, prop)
	if prop.Shorthand {
		fmt.Fprintf(b, "Shorthand(%q)", prop.Key.(*ast.Ident).Name)
	} else {
		b.WriteString("Property { key: ")
		debugExpr(b, prop.Key)
		b.WriteString(", value: ")
		debugExpr(b, prop.Value)
		closeLoc(b)
	}
	closeLoc(b)
}

func debugParams(b *strings.Builder, params []*ast.Ident) {
	b.WriteByte('[')
	for i, param := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		debugExpr(b, param)
	}
	b.WriteByte(']')
}

func debugExprList(b *strings.Builder, xs []ast.Expr) {
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		debugExpr(b, x)
	}
	b.WriteByte(']')
}

func debugLiteral(b *strings.Builder, v *ast.Literal) {
	switch v.Kind {
	case ast.LitNumber:
		fmt.Fprintf(b, "Number(%q)", v.Raw)
	case ast.LitString:
		fmt.Fprintf(b, "String(%q)", v.Raw)
	case ast.LitTrue:
		b.WriteString("True")
	case ast.LitFalse:
		b.WriteString("False")
	case ast.LitNull:
		b.WriteString("Null")
	case ast.LitRegex:
		fmt.Fprintf(b, "RegEx(%q)", v.Raw)
	}
}

func declKindName(kind token.Kind) string {
	switch kind {
	case token.KwVar:
		return "Var"
	case token.KwLet:
		return "Let"
	case token.KwConst:
		return "Const"
	}
	return "Var"
}
