package lexer

import (
	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// Single- or double-quoted string. Escapes are consumed but kept raw in
// Token.Text (the serializers emit raw text, so no decoding is needed here);
// \x and \u escapes get their digit count validated.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump() // opening quote

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			if tok, ok := lx.scanEscape(start); !ok {
				return tok
			}
			continue
		}
		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape consumes a backslash escape. On failure it returns the Invalid
// token to surface and ok=false.
func (lx *Lexer) scanEscape(start Mark) (token.Token, bool) {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}, false
	}

	switch lx.cursor.Bump() {
	case 'x':
		for i := 0; i < 2; i++ {
			if !isHex(lx.cursor.Peek()) {
				return lx.badEscape(escStart), false
			}
			lx.cursor.Bump()
		}
	case 'u':
		if lx.cursor.Eat('{') {
			n := 0
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				n++
			}
			if n == 0 || !lx.cursor.Eat('}') {
				return lx.badEscape(escStart), false
			}
		} else {
			for i := 0; i < 4; i++ {
				if !isHex(lx.cursor.Peek()) {
					return lx.badEscape(escStart), false
				}
				lx.cursor.Bump()
			}
		}
	default:
		// any other escaped byte passes through raw
	}
	return token.Token{}, true
}

func (lx *Lexer) badEscape(escStart Mark) token.Token {
	sp := lx.cursor.SpanFrom(escStart)
	lx.errLex(diag.LexBadEscape, sp, "invalid escape sequence")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
