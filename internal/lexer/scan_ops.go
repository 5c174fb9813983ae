package lexer

import (
	"fmt"

	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// scanOperatorOrPunct scans the longest matching operator or punctuator.
// '/' always lexes as Slash or SlashAssign here; the parser rescans it as a
// regex when it sits in expression position.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	kind := lx.matchOperator()
	if kind == token.Invalid {
		b := lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", b))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// Longest match first within each leading byte.
func (lx *Lexer) matchOperator() token.Kind {
	switch lx.cursor.Peek() {
	case '>':
		switch {
		case lx.try4('>', '>', '>', '='):
			return token.UShrAssign
		case lx.try3('>', '>', '>'):
			return token.UShr
		case lx.try3('>', '>', '='):
			return token.ShrAssign
		case lx.try2('>', '>'):
			return token.Shr
		case lx.try2('>', '='):
			return token.GtEq
		}
		lx.cursor.Bump()
		return token.Gt
	case '<':
		switch {
		case lx.try3('<', '<', '='):
			return token.ShlAssign
		case lx.try2('<', '<'):
			return token.Shl
		case lx.try2('<', '='):
			return token.LtEq
		}
		lx.cursor.Bump()
		return token.Lt
	case '=':
		switch {
		case lx.try3('=', '=', '='):
			return token.EqEqEq
		case lx.try2('=', '='):
			return token.EqEq
		case lx.try2('=', '>'):
			return token.FatArrow
		}
		lx.cursor.Bump()
		return token.Assign
	case '!':
		switch {
		case lx.try3('!', '=', '='):
			return token.BangEqEq
		case lx.try2('!', '='):
			return token.BangEq
		}
		lx.cursor.Bump()
		return token.Bang
	case '*':
		switch {
		case lx.try3('*', '*', '='):
			return token.StarStarAssign
		case lx.try2('*', '*'):
			return token.StarStar
		case lx.try2('*', '='):
			return token.StarAssign
		}
		lx.cursor.Bump()
		return token.Star
	case '+':
		switch {
		case lx.try2('+', '+'):
			return token.PlusPlus
		case lx.try2('+', '='):
			return token.PlusAssign
		}
		lx.cursor.Bump()
		return token.Plus
	case '-':
		switch {
		case lx.try2('-', '-'):
			return token.MinusMinus
		case lx.try2('-', '='):
			return token.MinusAssign
		}
		lx.cursor.Bump()
		return token.Minus
	case '/':
		if lx.try2('/', '=') {
			return token.SlashAssign
		}
		lx.cursor.Bump()
		return token.Slash
	case '%':
		if lx.try2('%', '=') {
			return token.PercentAssign
		}
		lx.cursor.Bump()
		return token.Percent
	case '&':
		switch {
		case lx.try2('&', '&'):
			return token.AndAnd
		case lx.try2('&', '='):
			return token.AmpAssign
		}
		lx.cursor.Bump()
		return token.Amp
	case '|':
		switch {
		case lx.try2('|', '|'):
			return token.OrOr
		case lx.try2('|', '='):
			return token.PipeAssign
		}
		lx.cursor.Bump()
		return token.Pipe
	case '^':
		if lx.try2('^', '=') {
			return token.CaretAssign
		}
		lx.cursor.Bump()
		return token.Caret
	case '~':
		lx.cursor.Bump()
		return token.Tilde
	case '?':
		lx.cursor.Bump()
		return token.Question
	case ':':
		lx.cursor.Bump()
		return token.Colon
	case ';':
		lx.cursor.Bump()
		return token.Semicolon
	case ',':
		lx.cursor.Bump()
		return token.Comma
	case '.':
		lx.cursor.Bump()
		return token.Dot
	case '(':
		lx.cursor.Bump()
		return token.LParen
	case ')':
		lx.cursor.Bump()
		return token.RParen
	case '{':
		lx.cursor.Bump()
		return token.LBrace
	case '}':
		lx.cursor.Bump()
		return token.RBrace
	case '[':
		lx.cursor.Bump()
		return token.LBracket
	case ']':
		lx.cursor.Bump()
		return token.RBracket
	}
	return token.Invalid
}
