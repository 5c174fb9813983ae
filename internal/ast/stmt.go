package ast

import (
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Loc source.Span
}

// ExprStmt wraps an expression used in statement position. Its span equals
// the expression's span; the statement terminator is not included.
type ExprStmt struct {
	Loc source.Span
	X   Expr
}

// BlockStmt is a braced statement list. The span includes the braces.
type BlockStmt struct {
	Loc  source.Span
	Body []Stmt
}

// Declarator is one `name` or `name = init` inside a variable declaration.
type Declarator struct {
	Loc  source.Span
	Name *Ident
	Init Expr // nil without initializer
}

// VarDecl is a `var`, `let` or `const` declaration with one or more
// declarators. Kind is the declaring keyword token.
type VarDecl struct {
	Loc   source.Span
	Kind  token.Kind
	Decls []*Declarator
}

// FuncDecl is a named function declaration.
type FuncDecl struct {
	Loc    source.Span
	Name   *Ident
	Params []*Ident
	Body   *BlockStmt
}

// ReturnStmt is `return` with an optional argument.
type ReturnStmt struct {
	Loc   source.Span
	Value Expr // nil for a bare return
}

// IfStmt is `if`/`else`. Alt is nil without an else branch.
type IfStmt struct {
	Loc  source.Span
	Test Expr
	Cons Stmt
	Alt  Stmt
}

// WhileStmt is a `while` loop.
type WhileStmt struct {
	Loc  source.Span
	Test Expr
	Body Stmt
}

// DoWhileStmt is a `do`/`while` loop.
type DoWhileStmt struct {
	Loc  source.Span
	Body Stmt
	Test Expr
}

// ForStmt is the classic three-clause `for`. Init is a VarDecl or an
// ExprStmt, or nil; Test and Update may be nil.
type ForStmt struct {
	Loc    source.Span
	Init   Stmt
	Test   Expr
	Update Expr
	Body   Stmt
}

// ForInStmt is `for (left in right)`. Left is a VarDecl with a single
// initializer-free declarator, or an ExprStmt.
type ForInStmt struct {
	Loc   source.Span
	Left  Stmt
	Right Expr
	Body  Stmt
}

// ForOfStmt is `for (left of right)`, with the same Left shape as ForInStmt.
type ForOfStmt struct {
	Loc   source.Span
	Left  Stmt
	Right Expr
	Body  Stmt
}

// BreakStmt is `break` with an optional label.
type BreakStmt struct {
	Loc   source.Span
	Label *Ident
}

// ContinueStmt is `continue` with an optional label.
type ContinueStmt struct {
	Loc   source.Span
	Label *Ident
}

// ThrowStmt is `throw expr`.
type ThrowStmt struct {
	Loc   source.Span
	Value Expr
}

// CatchClause is the `catch (param) { ... }` arm of a try statement.
type CatchClause struct {
	Loc   source.Span
	Param *Ident
	Body  *BlockStmt
}

// TryStmt is `try`/`catch`/`finally`. At least one of Handler and Finally
// is non-nil.
type TryStmt struct {
	Loc     source.Span
	Block   *BlockStmt
	Handler *CatchClause
	Finally *BlockStmt
}

// LabeledStmt is `label: stmt`.
type LabeledStmt struct {
	Loc   source.Span
	Label *Ident
	Body  Stmt
}

func (n *EmptyStmt) Span() source.Span    { return n.Loc }
func (n *ExprStmt) Span() source.Span     { return n.Loc }
func (n *BlockStmt) Span() source.Span    { return n.Loc }
func (n *Declarator) Span() source.Span   { return n.Loc }
func (n *VarDecl) Span() source.Span      { return n.Loc }
func (n *FuncDecl) Span() source.Span     { return n.Loc }
func (n *ReturnStmt) Span() source.Span   { return n.Loc }
func (n *IfStmt) Span() source.Span       { return n.Loc }
func (n *WhileStmt) Span() source.Span    { return n.Loc }
func (n *DoWhileStmt) Span() source.Span  { return n.Loc }
func (n *ForStmt) Span() source.Span      { return n.Loc }
func (n *ForInStmt) Span() source.Span    { return n.Loc }
func (n *ForOfStmt) Span() source.Span    { return n.Loc }
func (n *BreakStmt) Span() source.Span    { return n.Loc }
func (n *ContinueStmt) Span() source.Span { return n.Loc }
func (n *ThrowStmt) Span() source.Span    { return n.Loc }
func (n *CatchClause) Span() source.Span  { return n.Loc }
func (n *TryStmt) Span() source.Span      { return n.Loc }
func (n *LabeledStmt) Span() source.Span  { return n.Loc }

func (*EmptyStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()     {}
func (*BlockStmt) stmtNode()    {}
func (*VarDecl) stmtNode()      {}
func (*FuncDecl) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*ForOfStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ThrowStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*LabeledStmt) stmtNode()  {}
