package ast_test

import (
	"testing"

	"jsparse/internal/ast"
	"jsparse/internal/source"
)

// Every node the serializers walk must expose its span, including the
// auxiliary nodes that are neither statements nor expressions.
var (
	_ ast.Node = (*ast.Property)(nil)
	_ ast.Node = (*ast.TemplateElement)(nil)
	_ ast.Node = (*ast.Declarator)(nil)
	_ ast.Node = (*ast.CatchClause)(nil)
	_ ast.Node = (*ast.Program)(nil)
)

func TestAuxiliaryNodeSpans(t *testing.T) {
	prop := &ast.Property{Loc: source.Span{Start: 2, End: 7}}
	if sp := prop.Span(); sp.Start != 2 || sp.End != 7 {
		t.Errorf("Property span %v, want 2-7", sp)
	}

	quasi := &ast.TemplateElement{Loc: source.Span{Start: 1, End: 4}, Raw: "abc"}
	if sp := quasi.Span(); sp.Start != 1 || sp.End != 4 {
		t.Errorf("TemplateElement span %v, want 1-4", sp)
	}
}
