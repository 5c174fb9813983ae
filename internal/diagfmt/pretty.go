package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"jsparse/internal/diag"
	"jsparse/internal/source"
)

// Pretty renders a parse error in human-readable form:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline for the span.
// Color is applied per the options.
func Pretty(w io.Writer, perr *diag.Error, file *source.File, opts PrettyOpts) {
	if perr == nil {
		return
	}
	d := perr.Diag

	sevAttr := color.FgRed
	if d.Severity == diag.SevWarning {
		sevAttr = color.FgYellow
	}
	sevColor := color.New(sevAttr, color.Bold)
	codeColor := color.New(color.FgCyan)
	gutterColor := color.New(color.FgHiBlack)
	caretColor := color.New(sevAttr, color.Bold)
	for _, c := range []*color.Color{sevColor, codeColor, gutterColor, caretColor} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if file == nil {
		fmt.Fprintf(w, "%s %s: %s\n",
			sevColor.Sprint(d.Severity.String()),
			codeColor.Sprint(d.Code.ID()),
			d.Message)
		return
	}

	start, end := file.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts.PathMode),
		start.Line, start.Col,
		sevColor.Sprint(d.Severity.String()),
		codeColor.Sprint(d.Code.ID()),
		d.Message)

	firstLine := start.Line
	if opts.Context > 0 && firstLine > uint32(opts.Context) {
		firstLine -= uint32(opts.Context)
	} else if opts.Context > 0 {
		firstLine = 1
	}
	gutterWidth := len(fmt.Sprintf("%d", start.Line))

	for line := firstLine; line < start.Line; line++ {
		fmt.Fprintf(w, "%s %s\n",
			gutterColor.Sprintf("%*d |", gutterWidth, line),
			file.GetLine(line))
	}

	text := file.GetLine(start.Line)
	fmt.Fprintf(w, "%s %s\n",
		gutterColor.Sprintf("%*d |", gutterWidth, start.Line),
		text)
	fmt.Fprintf(w, "%s %s\n",
		gutterColor.Sprintf("%*s |", gutterWidth, ""),
		underline(text, start, end, d.Primary, caretColor))
}

// underline builds the ^~~~ marker for the span portion that falls on the
// first error line.
func underline(lineText string, start, end source.LineCol, sp source.Span, caret *color.Color) string {
	col := int(start.Col)
	if col < 1 {
		col = 1
	}

	width := 1
	if end.Line == start.Line && !sp.Empty() {
		width = int(sp.Len())
	} else if end.Line > start.Line {
		// span continues past this line, underline to the end of it
		if rest := len(lineText) - (col - 1); rest > width {
			width = rest
		}
	}
	if avail := len(lineText) - (col - 1); width > avail && avail > 0 {
		width = avail
	}

	pad := strings.Repeat(" ", col-1)
	if width <= 1 {
		return pad + caret.Sprint("^")
	}
	return pad + caret.Sprint("^"+strings.Repeat("~", width-1))
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return path
	case PathModeRelative:
		if wd, err := filepath.Abs("."); err == nil {
			if rel, err := filepath.Rel(wd, path); err == nil && !strings.HasPrefix(rel, "..") {
				return filepath.ToSlash(rel)
			}
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		if len(path) > 40 {
			return filepath.Base(path)
		}
		return path
	}
}
