package token

var keywords = map[string]Kind{
	"var":        KwVar,
	"let":        KwLet,
	"const":      KwConst,
	"function":   KwFunction,
	"return":     KwReturn,
	"if":         KwIf,
	"else":       KwElse,
	"while":      KwWhile,
	"do":         KwDo,
	"for":        KwFor,
	"in":         KwIn,
	"break":      KwBreak,
	"continue":   KwContinue,
	"throw":      KwThrow,
	"try":        KwTry,
	"catch":      KwCatch,
	"finally":    KwFinally,
	"new":        KwNew,
	"this":       KwThis,
	"typeof":     KwTypeof,
	"void":       KwVoid,
	"delete":     KwDelete,
	"instanceof": KwInstanceof,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
	"class":      KwClass,
	"switch":     KwSwitch,
	"case":       KwCase,
	"default":    KwDefault,
	"super":      KwSuper,
	"extends":    KwExtends,
	"import":     KwImport,
	"export":     KwExport,
	"with":       KwWith,
	"debugger":   KwDebugger,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase form is recognized.
// Note: "of" is contextual in for-of heads and lexes as a plain Ident.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
