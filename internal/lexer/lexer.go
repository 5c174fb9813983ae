package lexer

import (
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// Lexer produces significant tokens on demand, pulled by the parser.
// It keeps a one-token lookahead buffer and the trivia collected since the
// previous token. Context-sensitive forms (regex vs. division, template
// continuations) are not guessed: the parser requests them explicitly via
// the Rescan* methods, which rewind to a token's mark and re-lex it in the
// requested mode.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia accumulated for the next token
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanTemplate()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan is a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

// RescanRegex re-lexes tok, which must be a Slash or SlashAssign produced in
// operator mode, as a regular expression literal. The parser calls this at
// positions where an expression is expected.
func (lx *Lexer) RescanRegex(tok token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(tok.Span.Start))
	out := lx.scanRegex()
	out.Leading = tok.Leading
	return out
}

// RescanTemplateContinue re-lexes tok, which must be an RBrace closing a
// template substitution, as the next template segment (middle or tail).
func (lx *Lexer) RescanTemplateContinue(tok token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(tok.Span.Start))
	out := lx.scanTemplateContinue()
	out.Leading = tok.Leading
	return out
}
