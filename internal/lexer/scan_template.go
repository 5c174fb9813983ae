package lexer

import (
	"jsparse/internal/diag"
	"jsparse/internal/token"
)

// scanTemplate starts at the opening backtick. A template with no
// substitutions lexes as one TemplateComplete token; otherwise the part up to
// and including the first "${" becomes a TemplateHead and the parser drives
// the rest through RescanTemplateContinue.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	return lx.scanTemplateBody(start, token.TemplateComplete, token.TemplateHead)
}

// scanTemplateContinue starts at the '}' that closed a substitution and scans
// up to the next "${" (TemplateMiddle) or the closing backtick (TemplateTail).
func (lx *Lexer) scanTemplateContinue() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '}'
	return lx.scanTemplateBody(start, token.TemplateTail, token.TemplateMiddle)
}

func (lx *Lexer) scanTemplateBody(start Mark, closedKind, openKind token.Kind) token.Token {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			lx.cursor.Bump()
			return lx.emitTemplate(start, closedKind)
		case '$':
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '$' && b1 == '{' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				return lx.emitTemplate(start, openKind)
			}
			lx.cursor.Bump()
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emitTemplate(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
