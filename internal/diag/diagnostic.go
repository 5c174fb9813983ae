package diag

import (
	"jsparse/internal/source"
)

// Diagnostic describes a single problem anchored to a source span.
// Parsing is all-or-nothing, so at most one diagnostic survives a run;
// there is no bag or collection layer.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}
