package ast

import (
	"jsparse/internal/source"
)

// Node is the common interface of every syntax tree node. Each node carries
// the half-open byte span of the source text it was built from; nodes
// synthesized by a rewrite cover the span of the construct they replace.
//
// Trees are built bottom-up by the parser and never mutated afterwards.
// Rewrites reconstruct: an untouched subtree is shared between the old and
// the new tree, a changed one is a fresh allocation.
type Node interface {
	Span() source.Span
}

// Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed file. Its span covers the statements,
// trimmed of trailing trivia; an empty input yields the empty span [0,0).
type Program struct {
	Loc  source.Span
	Body []Stmt
}

func (p *Program) Span() source.Span { return p.Loc }
