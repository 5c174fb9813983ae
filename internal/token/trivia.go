package token

import (
	"jsparse/internal/source"
)

// TriviaKind classifies non-token source text (whitespace and comments).
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of line breaks.
	TriviaNewline
	// TriviaLineComment is a // comment up to end of line.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment.
	TriviaBlockComment
)

// Trivia is a piece of skipped source text. Trivia never surfaces as a token;
// it rides on the following token's Leading list so spans stay accountable.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "space"
	case TriviaNewline:
		return "newline"
	case TriviaLineComment:
		return "line-comment"
	case TriviaBlockComment:
		return "block-comment"
	}
	return "unknown"
}
