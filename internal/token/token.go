package token

import (
	"jsparse/internal/source"
)

// Token represents a single source token with its location and leading trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a literal of any kind.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, RegexLit, TemplateComplete,
		KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwVar && t.Kind <= KwDebugger
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsAssignOp reports whether the token is an assignment operator.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign,
		ShlAssign, ShrAssign, UShrAssign:
		return true
	default:
		return false
	}
}

// NewlineBefore reports whether a line break appears in the token's leading
// trivia. The parser uses this for automatic semicolon insertion.
func (t Token) NewlineBefore() bool {
	for _, tr := range t.Leading {
		if tr.Kind == TriviaNewline {
			return true
		}
		if tr.Kind == TriviaBlockComment {
			for i := 0; i < len(tr.Text); i++ {
				if tr.Text[i] == '\n' {
					return true
				}
			}
		}
	}
	return false
}
