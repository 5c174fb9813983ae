package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwThrow represents the 'throw' keyword.
	KwThrow // throw
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwCatch represents the 'catch' keyword.
	KwCatch // catch
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwTypeof represents the 'typeof' keyword.
	KwTypeof // typeof
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwDelete represents the 'delete' keyword.
	KwDelete // delete
	// KwInstanceof represents the 'instanceof' keyword.
	KwInstanceof // instanceof
	// KwTrue represents the 'true' literal keyword.
	KwTrue // true
	// KwFalse represents the 'false' literal keyword.
	KwFalse // false
	// KwNull represents the 'null' literal keyword.
	KwNull // null
	// KwClass represents the reserved 'class' keyword.
	KwClass // class
	// KwSwitch represents the reserved 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the reserved 'case' keyword.
	KwCase // case
	// KwDefault represents the reserved 'default' keyword.
	KwDefault // default
	// KwSuper represents the reserved 'super' keyword.
	KwSuper // super
	// KwExtends represents the reserved 'extends' keyword.
	KwExtends // extends
	// KwImport represents the reserved 'import' keyword.
	KwImport // import
	// KwExport represents the reserved 'export' keyword.
	KwExport // export
	// KwWith represents the reserved 'with' keyword.
	KwWith // with
	// KwDebugger represents the reserved 'debugger' keyword.
	KwDebugger // debugger

	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a string literal token.
	StringLit
	// RegexLit represents a regular expression literal token.
	RegexLit
	// TemplateComplete represents a substitution-free template literal `...`.
	TemplateComplete
	// TemplateHead represents the `...${ opening of a template with substitutions.
	TemplateHead
	// TemplateMiddle represents a }...${ segment between substitutions.
	TemplateMiddle
	// TemplateTail represents the closing }...` segment.
	TemplateTail

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the exponentiation operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// StarStarAssign represents the exponentiation assign operator token.
	StarStarAssign // **=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// UShrAssign represents the unsigned shr assign operator token.
	UShrAssign // >>>=
	// EqEq represents the loose equality operator token.
	EqEq // ==
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the loose inequality operator token.
	BangEq // !=
	// BangEqEq represents the strict inequality operator token.
	BangEqEq // !==
	// Tilde represents the bitwise not operator token.
	Tilde // ~
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// UShr represents the unsigned shr operator token.
	UShr // >>>
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// Question represents the question operator token.
	Question // ?
	// Colon represents the colon operator token.
	Colon // :
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid: "invalid", EOF: "eof", Ident: "ident",
	KwVar: "var", KwLet: "let", KwConst: "const", KwFunction: "function",
	KwReturn: "return", KwIf: "if", KwElse: "else", KwWhile: "while",
	KwDo: "do", KwFor: "for", KwIn: "in", KwBreak: "break",
	KwContinue: "continue", KwThrow: "throw", KwTry: "try", KwCatch: "catch",
	KwFinally: "finally", KwNew: "new", KwThis: "this", KwTypeof: "typeof",
	KwVoid: "void", KwDelete: "delete", KwInstanceof: "instanceof",
	KwTrue: "true", KwFalse: "false", KwNull: "null", KwClass: "class",
	KwSwitch: "switch", KwCase: "case", KwDefault: "default", KwSuper: "super",
	KwExtends: "extends", KwImport: "import", KwExport: "export",
	KwWith: "with", KwDebugger: "debugger",
	NumberLit: "number", StringLit: "string", RegexLit: "regex",
	TemplateComplete: "template", TemplateHead: "template-head",
	TemplateMiddle: "template-middle", TemplateTail: "template-tail",
	Plus: "+", Minus: "-", Star: "*", StarStar: "**", Slash: "/", Percent: "%",
	Assign: "=", PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=",
	StarStarAssign: "**=", SlashAssign: "/=", PercentAssign: "%=",
	AmpAssign: "&=", PipeAssign: "|=", CaretAssign: "^=", ShlAssign: "<<=",
	ShrAssign: ">>=", UShrAssign: ">>>=", EqEq: "==", EqEqEq: "===",
	Bang: "!", BangEq: "!=", BangEqEq: "!==", Tilde: "~",
	Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=", Shl: "<<", Shr: ">>",
	UShr: ">>>", Amp: "&", Pipe: "|", Caret: "^", AndAnd: "&&", OrOr: "||",
	PlusPlus: "++", MinusMinus: "--", Question: "?", Colon: ":",
	Semicolon: ";", Comma: ",", Dot: ".", FatArrow: "=>",
	LParen: "(", RParen: ")", LBrace: "{", RBrace: "}",
	LBracket: "[", RBracket: "]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}
