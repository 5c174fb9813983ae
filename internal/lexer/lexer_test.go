package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"jsparse/internal/diag"
	"jsparse/internal/lexer"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

// testReporter collects every diagnostic reported by the lexer
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, span source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  span,
	})
}

func (r *testReporter) HasErrors() bool {
	return len(r.diagnostics) > 0
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return messages
}

// makeTestLexer builds a lexer over an in-memory file
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens drains the lexer up to and including EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence (EOF excluded)
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that input produces exactly one significant token
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers and keywords ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"$el", "$el"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"UPPER", "UPPER"},
		{"été", "été"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"var", token.KwVar},
		{"let", token.KwLet},
		{"const", token.KwConst},
		{"function", token.KwFunction},
		{"return", token.KwReturn},
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"while", token.KwWhile},
		{"do", token.KwDo},
		{"for", token.KwFor},
		{"in", token.KwIn},
		{"break", token.KwBreak},
		{"continue", token.KwContinue},
		{"throw", token.KwThrow},
		{"try", token.KwTry},
		{"catch", token.KwCatch},
		{"finally", token.KwFinally},
		{"new", token.KwNew},
		{"this", token.KwThis},
		{"typeof", token.KwTypeof},
		{"void", token.KwVoid},
		{"delete", token.KwDelete},
		{"instanceof", token.KwInstanceof},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
		{"null", token.KwNull},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestContextualOf(t *testing.T) {
	// "of" is contextual and always lexes as an identifier
	expectSingleToken(t, "of", token.Ident, "of")
}

func TestKeywordPrefix_IsIdent(t *testing.T) {
	expectSingleToken(t, "iffy", token.Ident, "iffy")
	expectSingleToken(t, "varx", token.Ident, "varx")
	expectSingleToken(t, "instanceofx", token.Ident, "instanceofx")
}

// ====== numbers ======

func TestNumbers(t *testing.T) {
	tests := []string{
		"0", "2", "123", "1.5", "1.", ".5", "0.25",
		"1e3", "1E3", "1e+3", "1e-3", "1.5e10",
		"0b1010", "0o755", "0xFF", "0Xff",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expectSingleToken(t, input, token.NumberLit, input)
		})
	}
}

func TestNumberErrors(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"0x", "hex without digits"},
		{"0b", "binary without digits"},
		{"0o", "octal without digits"},
		{"1e", "exponent without digits"},
		{"1e+", "signed exponent without digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("Expected Invalid, got %v", tok.Kind)
			}
			if !reporter.HasErrors() {
				t.Error("Expected a diagnostic")
			}
			if reporter.diagnostics[0].Code != diag.LexBadNumber {
				t.Errorf("Expected LexBadNumber, got %v", reporter.diagnostics[0].Code)
			}
		})
	}
}

func TestNumberDotMember(t *testing.T) {
	// "1..toString" lexes the first dot into the literal, the second as Dot
	expectTokens(t, "1..toString", []token.Kind{token.NumberLit, token.Dot, token.Ident})
	expectTokens(t, "1.toString", []token.Kind{token.NumberLit, token.Ident})
}

// ====== strings ======

func TestStrings(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{`"hello"`, "double quoted"},
		{`'hello'`, "single quoted"},
		{`""`, "empty"},
		{`"it's"`, "other quote inside"},
		{`"a\"b"`, "escaped quote"},
		{`"\n\t\\"`, "simple escapes"},
		{`"\x41"`, "hex escape"},
		{"\"\\u0041\"", "unicode escape"},
		{`"\u{1F600}"`, "braced unicode escape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.StringLit, tt.input)
		})
	}
}

func TestStringErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		name  string
	}{
		{`"abc`, diag.LexUnterminatedString, "unterminated"},
		{"\"ab\ncd\"", diag.LexUnterminatedString, "newline inside"},
		{`"\x4"`, diag.LexBadEscape, "short hex escape"},
		{`"\u12"`, diag.LexBadEscape, "short unicode escape"},
		{`"\u{}"`, diag.LexBadEscape, "empty braced escape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tt.input)
			tok := lx.Next()
			if tok.Kind != token.Invalid {
				t.Errorf("Expected Invalid, got %v", tok.Kind)
			}
			if len(reporter.diagnostics) == 0 {
				t.Fatal("Expected a diagnostic")
			}
			if reporter.diagnostics[0].Code != tt.code {
				t.Errorf("Expected %v, got %v", tt.code, reporter.diagnostics[0].Code)
			}
		})
	}
}

// ====== templates ======

func TestTemplateComplete(t *testing.T) {
	expectSingleToken(t, "`hello`", token.TemplateComplete, "`hello`")
	expectSingleToken(t, "``", token.TemplateComplete, "``")
	expectSingleToken(t, "`a\nb`", token.TemplateComplete, "`a\nb`")
	expectSingleToken(t, "`\\${x}`", token.TemplateComplete, "`\\${x}`")
}

func TestTemplateHead(t *testing.T) {
	lx, _ := makeTestLexer("`a${x}b`")
	head := lx.Next()
	if head.Kind != token.TemplateHead || head.Text != "`a${" {
		t.Fatalf("head: got %v %q", head.Kind, head.Text)
	}
	ident := lx.Next()
	if ident.Kind != token.Ident || ident.Text != "x" {
		t.Fatalf("substitution: got %v %q", ident.Kind, ident.Text)
	}
	rbrace := lx.Next()
	if rbrace.Kind != token.RBrace {
		t.Fatalf("closing brace: got %v", rbrace.Kind)
	}
	tail := lx.RescanTemplateContinue(rbrace)
	if tail.Kind != token.TemplateTail || tail.Text != "}b`" {
		t.Fatalf("tail: got %v %q", tail.Kind, tail.Text)
	}
}

func TestTemplateMiddle(t *testing.T) {
	lx, _ := makeTestLexer("`a${x}b${y}c`")
	if got := lx.Next(); got.Kind != token.TemplateHead {
		t.Fatalf("head: got %v", got.Kind)
	}
	lx.Next() // x
	rbrace := lx.Next()
	mid := lx.RescanTemplateContinue(rbrace)
	if mid.Kind != token.TemplateMiddle || mid.Text != "}b${" {
		t.Fatalf("middle: got %v %q", mid.Kind, mid.Text)
	}
	lx.Next() // y
	rbrace2 := lx.Next()
	tail := lx.RescanTemplateContinue(rbrace2)
	if tail.Kind != token.TemplateTail || tail.Text != "}c`" {
		t.Fatalf("tail: got %v %q", tail.Kind, tail.Text)
	}
}

func TestTemplateUnterminated(t *testing.T) {
	lx, reporter := makeTestLexer("`abc")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) == 0 || reporter.diagnostics[0].Code != diag.LexUnterminatedTemplate {
		t.Errorf("Expected LexUnterminatedTemplate, got %v", reporter.ErrorMessages())
	}
}

// ====== regex rescan ======

func TestRegexRescan(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/ab/", "/ab/"},
		{"/ab/gi", "/ab/gi"},
		{`/a\/b/`, `/a\/b/`},
		{"/[/]/", "/[/]/"},
		{`/[\]]/`, `/[\]]/`},
		{"/=x/", "/=x/"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, _ := makeTestLexer(tt.input)
			slash := lx.Next()
			if slash.Kind != token.Slash && slash.Kind != token.SlashAssign {
				t.Fatalf("operator mode: got %v", slash.Kind)
			}
			re := lx.RescanRegex(slash)
			if re.Kind != token.RegexLit || re.Text != tt.want {
				t.Errorf("got %v %q, want RegexLit %q", re.Kind, re.Text, tt.want)
			}
		})
	}
}

func TestRegexUnterminated(t *testing.T) {
	for _, input := range []string{"/ab", "/ab\nc/"} {
		lx, reporter := makeTestLexer(input)
		slash := lx.Next()
		re := lx.RescanRegex(slash)
		if re.Kind != token.Invalid {
			t.Errorf("%q: expected Invalid, got %v", input, re.Kind)
		}
		if len(reporter.diagnostics) == 0 || reporter.diagnostics[len(reporter.diagnostics)-1].Code != diag.LexUnterminatedRegex {
			t.Errorf("%q: expected LexUnterminatedRegex, got %v", input, reporter.ErrorMessages())
		}
	}
}

// ====== operators ======

func TestOperators_Greedy(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{">>>=", token.UShrAssign},
		{">>>", token.UShr},
		{">>=", token.ShrAssign},
		{">>", token.Shr},
		{">=", token.GtEq},
		{">", token.Gt},
		{"<<=", token.ShlAssign},
		{"<<", token.Shl},
		{"<=", token.LtEq},
		{"<", token.Lt},
		{"===", token.EqEqEq},
		{"==", token.EqEq},
		{"=>", token.FatArrow},
		{"=", token.Assign},
		{"!==", token.BangEqEq},
		{"!=", token.BangEq},
		{"!", token.Bang},
		{"**=", token.StarStarAssign},
		{"**", token.StarStar},
		{"*=", token.StarAssign},
		{"*", token.Star},
		{"++", token.PlusPlus},
		{"+=", token.PlusAssign},
		{"+", token.Plus},
		{"--", token.MinusMinus},
		{"-=", token.MinusAssign},
		{"-", token.Minus},
		{"/=", token.SlashAssign},
		{"/", token.Slash},
		{"%=", token.PercentAssign},
		{"%", token.Percent},
		{"&&", token.AndAnd},
		{"&=", token.AmpAssign},
		{"&", token.Amp},
		{"||", token.OrOr},
		{"|=", token.PipeAssign},
		{"|", token.Pipe},
		{"^=", token.CaretAssign},
		{"^", token.Caret},
		{"~", token.Tilde},
		{"?", token.Question},
		{":", token.Colon},
		{";", token.Semicolon},
		{",", token.Comma},
		{".", token.Dot},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestOperatorSequences(t *testing.T) {
	expectTokens(t, "a**b", []token.Kind{token.Ident, token.StarStar, token.Ident})
	expectTokens(t, "a***b", []token.Kind{token.Ident, token.StarStar, token.Star, token.Ident})
	expectTokens(t, "x>>>y", []token.Kind{token.Ident, token.UShr, token.Ident})
	expectTokens(t, "x=>y", []token.Kind{token.Ident, token.FatArrow, token.Ident})
	expectTokens(t, "f(a,b)", []token.Kind{token.Ident, token.LParen, token.Ident, token.Comma, token.Ident, token.RParen})
}

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("#")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) == 0 || reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("Expected LexUnknownChar, got %v", reporter.ErrorMessages())
	}
}

// ====== trivia ======

func TestTrivia_Leading(t *testing.T) {
	lx, _ := makeTestLexer("  // note\nfoo")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "foo" {
		t.Fatalf("got %v %q", tok.Kind, tok.Text)
	}
	if len(tok.Leading) != 3 {
		t.Fatalf("expected 3 trivia, got %d: %+v", len(tok.Leading), tok.Leading)
	}
	kinds := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline}
	for i, want := range kinds {
		if tok.Leading[i].Kind != want {
			t.Errorf("trivia %d: expected %v, got %v", i, want, tok.Leading[i].Kind)
		}
	}
}

func TestTrivia_BlockComment(t *testing.T) {
	lx, _ := makeTestLexer("/* a\nb */x")
	tok := lx.Next()
	if tok.Kind != token.Ident {
		t.Fatalf("got %v", tok.Kind)
	}
	if len(tok.Leading) != 1 || tok.Leading[0].Kind != token.TriviaBlockComment {
		t.Fatalf("expected one block comment, got %+v", tok.Leading)
	}
	if !tok.NewlineBefore() {
		t.Error("block comment with newline should count as a line break")
	}
}

func TestTrivia_NewlineBefore(t *testing.T) {
	lx, _ := makeTestLexer("a\nb c")
	lx.Next() // a
	b := lx.Next()
	if !b.NewlineBefore() {
		t.Error("b should have a newline before it")
	}
	c := lx.Next()
	if c.NewlineBefore() {
		t.Error("c should not have a newline before it")
	}
}

func TestBlockCommentUnterminated(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("Expected EOF after dangling comment, got %v", tok.Kind)
	}
	if len(reporter.diagnostics) == 0 || reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("Expected LexUnterminatedBlockComment, got %v", reporter.ErrorMessages())
	}
}

// ====== spans ======

func TestSpans(t *testing.T) {
	lx, _ := makeTestLexer("let x = 2;")
	wants := []struct {
		start, end uint32
	}{
		{0, 3}, {4, 5}, {6, 7}, {8, 9}, {9, 10},
	}
	for i, want := range wants {
		tok := lx.Next()
		if tok.Span.Start != want.start || tok.Span.End != want.end {
			t.Errorf("token %d: span [%d,%d), want [%d,%d)",
				i, tok.Span.Start, tok.Span.End, want.start, want.end)
		}
	}
}

func TestPeek(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Span != n.Span {
		t.Error("Peek should return the same token as the following Next")
	}
	if got := lx.Next(); got.Text != "b" {
		t.Errorf("expected b, got %q", got.Text)
	}
}

func TestEOFRepeats(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if got := lx.Next(); got.Kind != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v", i, got.Kind)
		}
	}
}
