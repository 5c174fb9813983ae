package lexer

import (
	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// Supported forms: 0, 123, 0b..., 0o..., 0x..., 1.0, 1., .5, 1e-3, 1.0e+10.
// Token.Text keeps the raw source slice; no numeric decoding happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// leading dot: ".digits" (caller checked isNumberAfterDot)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumberExp(start)
	}

	// leading 0 with a base prefix?
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'b', 'B':
			lx.cursor.Bump()
			n := 0
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' {
				lx.cursor.Bump()
				n++
			}
			if n == 0 {
				return lx.badNumber(start, "expected binary digit")
			}
			return lx.emitNumber(start)
		case 'o', 'O':
			lx.cursor.Bump()
			n := 0
			for b := lx.cursor.Peek(); b >= '0' && b <= '7'; b = lx.cursor.Peek() {
				lx.cursor.Bump()
				n++
			}
			if n == 0 {
				return lx.badNumber(start, "expected octal digit")
			}
			return lx.emitNumber(start)
		case 'x', 'X':
			lx.cursor.Bump()
			n := 0
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				n++
			}
			if n == 0 {
				return lx.badNumber(start, "expected hex digit")
			}
			return lx.emitNumber(start)
		}
		// plain "0", possibly with fraction/exponent below
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction; "1." without digits is still a valid literal
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishNumberExp(start)
}

func (lx *Lexer) finishNumberExp(start Mark) token.Token {
	if lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E' {
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			return lx.badNumber(start, "expected digit after exponent")
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.emitNumber(start)
}

func (lx *Lexer) emitNumber(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadNumber, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
