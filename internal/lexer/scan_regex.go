package lexer

import (
	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// scanRegex is only entered through RescanRegex: the cursor sits on the
// opening '/' and the parser has decided an expression is expected here.
// Character classes may contain unescaped '/' and a backslash escapes the
// next byte; a line break before the closing '/' is an error.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	closed := false
body:
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		case '[':
			inClass = true
			lx.cursor.Bump()
		case ']':
			inClass = false
			lx.cursor.Bump()
		case '/':
			lx.cursor.Bump()
			if !inClass {
				closed = true
				break body
			}
		case '\n', '\r':
			break body
		default:
			lx.cursor.Bump()
		}
	}

	if !closed {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// flags
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.RegexLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
