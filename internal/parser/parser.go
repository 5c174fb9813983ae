package parser

import (
	"fmt"

	"jsparse/internal/ast"
	"jsparse/internal/diag"
	"jsparse/internal/lexer"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// Parser turns a token stream into an owned AST. It keeps the current token,
// pulls the next one on demand, and aborts on the first error: there is no
// statement-level recovery and no partial tree. All context (statement
// position, expression position, lexing mode for `/`) is decided at the call
// site, never through shared mutable state.
type Parser struct {
	file    *source.File
	lx      *lexer.Lexer
	tok     token.Token
	prevEnd uint32 // end offset of the last consumed token
	err     *diag.Error
}

// Parse parses a whole file into a Program. On failure the returned error is
// a *diag.Error carrying the offending offset; the tree is nil.
func Parse(file *source.File) (*ast.Program, error) {
	p := newParser(file)
	prog := p.parseProgram()
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

func newParser(file *source.File) *Parser {
	p := &Parser{file: file}
	p.lx = lexer.New(file, lexer.Options{Reporter: p})
	p.advance()
	return p
}

// Report implements lexer.Reporter. A lexical error becomes the parse error
// at the same offset; only the first one is kept.
func (p *Parser) Report(code diag.Code, span source.Span, msg string) {
	if p.err != nil {
		return
	}
	p.err = diag.NewError(code, span, msg)
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.err == nil && p.tok.Kind != token.EOF {
		stmt, ok := p.parseStatement()
		if !ok {
			return nil
		}
		prog.Body = append(prog.Body, stmt)
	}
	if p.err != nil {
		return nil
	}
	if len(prog.Body) > 0 {
		prog.Loc = source.Span{Start: 0, End: prog.Body[len(prog.Body)-1].Span().End}
	}
	return prog
}

// advance moves to the next significant token. Invalid tokens carry a lexer
// report already; if none arrived (nil reporter path) they still fail here.
func (p *Parser) advance() {
	p.prevEnd = p.tok.Span.End
	p.tok = p.lx.Next()
	if p.tok.Kind == token.Invalid && p.err == nil {
		p.failUnexpected(p.tok)
	}
}

// at is true when the current token has the given kind.
func (p *Parser) at(kind token.Kind) bool {
	return p.tok.Kind == kind
}

// eat consumes the current token if it has the given kind.
func (p *Parser) eat(kind token.Kind) bool {
	if p.tok.Kind == kind {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or fails the parse.
func (p *Parser) expect(kind token.Kind) bool {
	if p.eat(kind) {
		return true
	}
	p.failUnexpected(p.tok)
	return false
}

// expectIdent consumes an identifier token into an *ast.Ident.
func (p *Parser) expectIdent() (*ast.Ident, bool) {
	if p.tok.Kind != token.Ident {
		p.failUnexpected(p.tok)
		return nil, false
	}
	id := &ast.Ident{Loc: p.tok.Span, Name: p.tok.Text}
	p.advance()
	return id, true
}

// expectSemicolon enforces the statement terminator with automatic
// insertion: an explicit `;` is consumed; `}` or EOF, or a line break before
// the current token, terminate implicitly.
func (p *Parser) expectSemicolon() bool {
	switch {
	case p.eat(token.Semicolon):
		return true
	case p.at(token.RBrace) || p.at(token.EOF):
		return true
	case p.tok.NewlineBefore():
		return true
	}
	p.failUnexpected(p.tok)
	return false
}

// failUnexpected records the first error. The message always carries the
// literal phrase "Unexpected token".
func (p *Parser) failUnexpected(tok token.Token) {
	if p.err != nil {
		return
	}
	p.err = diag.NewError(diag.SynUnexpectedToken, tok.Span, describeUnexpected(tok))
}

func describeUnexpected(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "Unexpected token: end of input"
	}
	if tok.Text != "" {
		return fmt.Sprintf("Unexpected token %q", tok.Text)
	}
	return fmt.Sprintf("Unexpected token %s", tok.Kind)
}

// spanFrom covers from a start offset to the end of the last consumed token.
func (p *Parser) spanFrom(start uint32) source.Span {
	return source.Span{Start: start, End: p.prevEnd}
}
