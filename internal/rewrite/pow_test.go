package rewrite_test

import (
	"testing"

	"jsparse/internal/ast"
	"jsparse/internal/parser"
	"jsparse/internal/rewrite"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

func parseSource(t *testing.T, input string) *ast.Program {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.js", []byte(input)))
	prog, err := parser.Parse(file)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return prog
}

// hasStarStar walks an expression looking for a surviving ** node
func hasStarStar(x ast.Expr) bool {
	switch v := x.(type) {
	case *ast.BinaryExpr:
		return v.Op == token.StarStar || hasStarStar(v.Left) || hasStarStar(v.Right)
	case *ast.CallExpr:
		if hasStarStar(v.Callee) {
			return true
		}
		for _, a := range v.Args {
			if hasStarStar(a) {
				return true
			}
		}
	case *ast.MemberExpr:
		return hasStarStar(v.Object) || hasStarStar(v.Property)
	case *ast.UnaryExpr:
		return hasStarStar(v.Operand)
	}
	return false
}

func exprOf(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	return prog.Body[0].(*ast.ExprStmt).X
}

func TestPowSimple(t *testing.T) {
	prog := rewrite.Pow(parseSource(t, "2 ** 3"))
	call, ok := exprOf(t, prog).(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected call, got %T", exprOf(t, prog))
	}
	member, ok := call.Callee.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("expected member callee, got %T", call.Callee)
	}
	obj := member.Object.(*ast.Ident)
	prop := member.Property.(*ast.Ident)
	if obj.Name != "Math" || prop.Name != "pow" {
		t.Errorf("callee %s.%s, want Math.pow", obj.Name, prop.Name)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 arguments, got %d", len(call.Args))
	}
	if lit := call.Args[0].(*ast.Literal); lit.Raw != "2" {
		t.Errorf("first argument %q, want 2", lit.Raw)
	}
}

func TestPowSpanCoversOriginal(t *testing.T) {
	src := "1 + 2 ** 3"
	prog := rewrite.Pow(parseSource(t, src))
	add := exprOf(t, prog).(*ast.BinaryExpr)
	call := add.Right.(*ast.CallExpr)
	if call.Loc.Start != 4 || call.Loc.End != 10 {
		t.Errorf("call span [%d,%d), want [4,10)", call.Loc.Start, call.Loc.End)
	}
}

func TestPowNested(t *testing.T) {
	// right-associative: 2 ** 3 ** 4 is Math.pow(2, Math.pow(3, 4))
	prog := rewrite.Pow(parseSource(t, "2 ** 3 ** 4"))
	outer := exprOf(t, prog).(*ast.CallExpr)
	inner, ok := outer.Args[1].(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected nested call in second argument, got %T", outer.Args[1])
	}
	if lit := inner.Args[0].(*ast.Literal); lit.Raw != "3" {
		t.Errorf("inner base %q, want 3", lit.Raw)
	}
}

func TestPowLeavesNoStarStar(t *testing.T) {
	inputs := []string{
		"2 ** 3",
		"a ** b ** c",
		"f(x ** 2) + [1 ** 2]",
		"(a + b) ** 2",
		"x = y ** 2",
	}
	for _, input := range inputs {
		prog := rewrite.Pow(parseSource(t, input))
		for _, s := range prog.Body {
			if es, ok := s.(*ast.ExprStmt); ok && hasStarStar(es.X) {
				t.Errorf("%q: ** survived the rewrite", input)
			}
		}
	}
}

func TestPowSharesUntouchedSubtrees(t *testing.T) {
	prog := parseSource(t, "f(a.b) + 2 ** 3")
	out := rewrite.Pow(prog)

	inAdd := exprOf(t, prog).(*ast.BinaryExpr)
	outAdd := exprOf(t, out).(*ast.BinaryExpr)

	// the call on the left had no ** below it; identity is preserved
	inCall := inAdd.Left.(*ast.CallExpr)
	outCall := outAdd.Left.(*ast.CallExpr)
	if inCall.Args[0] != outCall.Args[0] {
		t.Error("untouched argument subtree should be shared")
	}

	// the input tree itself is unchanged
	if right, ok := inAdd.Right.(*ast.BinaryExpr); !ok || right.Op != token.StarStar {
		t.Error("input tree was mutated by the rewrite")
	}
}

func TestPowNoOpOnExistingCall(t *testing.T) {
	prog := rewrite.Pow(parseSource(t, "Math.pow(2, 2)"))
	call, ok := exprOf(t, prog).(*ast.CallExpr)
	if !ok || len(call.Args) != 2 {
		t.Fatalf("expected untouched call, got %#v", call)
	}
}
