package driver

import (
	"jsparse/internal/ast"
	"jsparse/internal/astfmt"
	"jsparse/internal/parser"
	"jsparse/internal/printer"
	"jsparse/internal/rewrite"
	"jsparse/internal/source"
)

// Parse parses JavaScript source and returns the debug dump of its statement
// list. The input is treated as an in-memory file named "input.js".
func Parse(src string) (string, error) {
	prog, err := parseVirtual(src)
	if err != nil {
		return "", err
	}
	return astfmt.DebugDump(prog), nil
}

// Transform parses the source, rewrites every `**` into a Math.pow call and
// prints the result back as JavaScript. With minify set the output drops
// inter-token spacing; otherwise statements are newline-separated and
// lightly spaced.
func Transform(src string, minify bool) (string, error) {
	prog, err := parseVirtual(src)
	if err != nil {
		return "", err
	}
	return printer.Print(rewrite.Pow(prog), minify), nil
}

// AST parses the source and returns its JSON serialization. With loose set
// the top-level Program node carries `sourceType: "script"`.
func AST(src string, loose bool) (string, error) {
	prog, err := parseVirtual(src)
	if err != nil {
		return "", err
	}
	return astfmt.JSON(prog, loose)
}

func parseVirtual(src string) (*ast.Program, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("input.js", []byte(src)))
	return parser.Parse(file)
}

// ParseFile parses an already loaded file. Batch drivers and the CLI use it
// so diagnostics can be resolved against the owning FileSet.
func ParseFile(file *source.File) (*ast.Program, error) {
	return parser.Parse(file)
}
