package diag

import (
	"fmt"
)

// Code identifies a diagnostic family and variant.
type Code uint16

const (
	// UnknownCode is the zero value, kept for early failures.
	UnknownCode Code = 0

	// Lexical
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005
	LexUnterminatedTemplate     Code = 1006
	LexUnterminatedRegex        Code = 1007

	// Syntactic
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynExpectExpression  Code = 2004
	SynUnclosedDelimiter Code = 2005
	SynBadAssignTarget   Code = 2006
	SynBadExponentBase   Code = 2007
	SynForBadHeader      Code = 2008
)

var codeIDs = map[Code]string{
	UnknownCode:                 "E0000",
	LexUnknownChar:              "L1001",
	LexUnterminatedString:       "L1002",
	LexUnterminatedBlockComment: "L1003",
	LexBadNumber:                "L1004",
	LexBadEscape:                "L1005",
	LexUnterminatedTemplate:     "L1006",
	LexUnterminatedRegex:        "L1007",
	SynUnexpectedToken:          "S2001",
	SynExpectSemicolon:          "S2002",
	SynExpectIdentifier:         "S2003",
	SynExpectExpression:         "S2004",
	SynUnclosedDelimiter:        "S2005",
	SynBadAssignTarget:          "S2006",
	SynBadExponentBase:          "S2007",
	SynForBadHeader:             "S2008",
}

// ID returns the stable short identifier for the code.
func (c Code) ID() string {
	if id, ok := codeIDs[c]; ok {
		return id
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

// IsLex reports whether the code belongs to the lexical family.
func (c Code) IsLex() bool { return c >= 1000 && c < 2000 }

func (c Code) String() string { return c.ID() }
