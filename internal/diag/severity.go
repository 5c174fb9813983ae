package diag

// Severity ranks a diagnostic. Parsing stops at the first SevError;
// SevWarning marks faults the caller recovered from, as the tokenizer
// does when it keeps scanning past a bad token.
type Severity uint8

const (
	SevWarning Severity = iota
	SevError
)

func (s Severity) String() string {
	if s == SevWarning {
		return "WARNING"
	}
	return "ERROR"
}
