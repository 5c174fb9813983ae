package ast

import (
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// LitKind discriminates the payload of a Literal.
type LitKind uint8

const (
	// LitNumber is a numeric literal in any supported base.
	LitNumber LitKind = iota
	// LitString is a single- or double-quoted string literal.
	LitString
	// LitTrue is the `true` keyword literal.
	LitTrue
	// LitFalse is the `false` keyword literal.
	LitFalse
	// LitNull is the `null` keyword literal.
	LitNull
	// LitRegex is a regular expression literal including flags.
	LitRegex
)

// Ident is a plain identifier reference.
type Ident struct {
	Loc  source.Span
	Name string
}

// ThisExpr is the `this` keyword in expression position.
type ThisExpr struct {
	Loc source.Span
}

// Literal keeps the raw source slice; no numeric or escape decoding is done
// at parse time, the serializers decide how to present the value.
type Literal struct {
	Loc  source.Span
	Kind LitKind
	Raw  string
}

// TemplateElement is one raw text chunk of a template literal, without the
// backtick / ${ / } delimiters of the token it came from.
type TemplateElement struct {
	Loc source.Span
	Raw string
}

// TemplateLit is a template literal. len(Quasis) == len(Exprs)+1.
type TemplateLit struct {
	Loc    source.Span
	Quasis []*TemplateElement
	Exprs  []Expr
}

// ArrayLit is an array literal. Elisions are not supported; every element
// slot holds an expression.
type ArrayLit struct {
	Loc   source.Span
	Elems []Expr
}

// Property is one `key: value` or shorthand member of an object literal.
// Key is an *Ident or a *Literal (string or number).
type Property struct {
	Loc       source.Span
	Key       Expr
	Value     Expr
	Shorthand bool
}

// ObjectLit is an object literal.
type ObjectLit struct {
	Loc   source.Span
	Props []*Property
}

// MemberExpr is property access. Computed selects `obj[prop]` over
// `obj.prop`; for the dot form Property is always an *Ident.
type MemberExpr struct {
	Loc      source.Span
	Object   Expr
	Property Expr
	Computed bool
}

// CallExpr is a function call.
type CallExpr struct {
	Loc    source.Span
	Callee Expr
	Args   []Expr
}

// NewExpr is a `new` expression, with or without an argument list.
type NewExpr struct {
	Loc    source.Span
	Callee Expr
	Args   []Expr
}

// UnaryExpr is a prefix operator application
// (+ - ! ~ typeof void delete).
type UnaryExpr struct {
	Loc     source.Span
	Op      token.Kind
	Operand Expr
}

// UpdateExpr is ++ or --, prefix or postfix.
type UpdateExpr struct {
	Loc     source.Span
	Op      token.Kind
	Operand Expr
	Prefix  bool
}

// BinaryExpr is a binary operator application, including comparison,
// arithmetic, bitwise, shift, `in` and `instanceof`.
type BinaryExpr struct {
	Loc   source.Span
	Op    token.Kind
	Left  Expr
	Right Expr
}

// LogicalExpr is && or ||; kept apart from BinaryExpr because its evaluation
// short-circuits and the reference schema names it differently.
type LogicalExpr struct {
	Loc   source.Span
	Op    token.Kind
	Left  Expr
	Right Expr
}

// CondExpr is the ternary conditional.
type CondExpr struct {
	Loc  source.Span
	Test Expr
	Cons Expr
	Alt  Expr
}

// AssignExpr is plain or compound assignment.
type AssignExpr struct {
	Loc    source.Span
	Op     token.Kind
	Target Expr
	Value  Expr
}

// SeqExpr is a comma sequence of two or more expressions.
type SeqExpr struct {
	Loc   source.Span
	Exprs []Expr
}

// FuncLit is a function expression, optionally named.
type FuncLit struct {
	Loc    source.Span
	Name   *Ident // nil when anonymous
	Params []*Ident
	Body   *BlockStmt
}

// ArrowFunc is an arrow function. Exactly one of BodyExpr and BodyBlock is
// set.
type ArrowFunc struct {
	Loc       source.Span
	Params    []*Ident
	BodyExpr  Expr
	BodyBlock *BlockStmt
}

func (n *Ident) Span() source.Span           { return n.Loc }
func (n *ThisExpr) Span() source.Span        { return n.Loc }
func (n *Literal) Span() source.Span         { return n.Loc }
func (n *TemplateElement) Span() source.Span { return n.Loc }
func (n *TemplateLit) Span() source.Span     { return n.Loc }
func (n *ArrayLit) Span() source.Span        { return n.Loc }
func (n *Property) Span() source.Span        { return n.Loc }
func (n *ObjectLit) Span() source.Span       { return n.Loc }
func (n *MemberExpr) Span() source.Span      { return n.Loc }
func (n *CallExpr) Span() source.Span        { return n.Loc }
func (n *NewExpr) Span() source.Span         { return n.Loc }
func (n *UnaryExpr) Span() source.Span       { return n.Loc }
func (n *UpdateExpr) Span() source.Span      { return n.Loc }
func (n *BinaryExpr) Span() source.Span      { return n.Loc }
func (n *LogicalExpr) Span() source.Span     { return n.Loc }
func (n *CondExpr) Span() source.Span        { return n.Loc }
func (n *AssignExpr) Span() source.Span      { return n.Loc }
func (n *SeqExpr) Span() source.Span         { return n.Loc }
func (n *FuncLit) Span() source.Span         { return n.Loc }
func (n *ArrowFunc) Span() source.Span       { return n.Loc }

func (*Ident) exprNode()       {}
func (*ThisExpr) exprNode()    {}
func (*Literal) exprNode()     {}
func (*TemplateLit) exprNode() {}
func (*ArrayLit) exprNode()    {}
func (*ObjectLit) exprNode()   {}
func (*MemberExpr) exprNode()  {}
func (*CallExpr) exprNode()    {}
func (*NewExpr) exprNode()     {}
func (*UnaryExpr) exprNode()   {}
func (*UpdateExpr) exprNode()  {}
func (*BinaryExpr) exprNode()  {}
func (*LogicalExpr) exprNode() {}
func (*CondExpr) exprNode()    {}
func (*AssignExpr) exprNode()  {}
func (*SeqExpr) exprNode()     {}
func (*FuncLit) exprNode()     {}
func (*ArrowFunc) exprNode()   {}
