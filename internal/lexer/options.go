package lexer

import (
	"jsparse/internal/diag"
	"jsparse/internal/source"
)

// Reporter is the thin contract for lexical failures. The lexer only calls
// it; formatting and propagation belong to the outer layer. The parser wraps
// the first report into its own error and aborts.
type Reporter interface {
	Report(code diag.Code, span source.Span, msg string)
}

type Options struct {
	Reporter Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sp, msg)
	}
}
