package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsparse/internal/diag"
	"jsparse/internal/diagfmt"
	"jsparse/internal/lexer"
	"jsparse/internal/source"
	"jsparse/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Tokenize a JavaScript source file",
	Long:  `Tokenize breaks a JavaScript source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

// lexErrorLog keeps every lexical failure; tokenization keeps going so the
// whole stream is still shown.
type lexErrorLog struct {
	errs []*diag.Error
}

func (r *lexErrorLog) Report(code diag.Code, span source.Span, msg string) {
	r.errs = append(r.errs, diag.NewError(code, span, msg))
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	file, err := loadSource(args[0])
	if err != nil {
		return err
	}

	log := &lexErrorLog{}
	lx := lexer.New(file, lexer.Options{Reporter: log})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if len(log.errs) > 0 {
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		opts := diagfmt.PrettyOpts{
			Color:   useColor(colorFlag, os.Stderr),
			Context: 2,
		}
		for _, perr := range log.errs {
			// scanning continued past the fault, so it renders as a warning
			perr.Diag.Severity = diag.SevWarning
			diagfmt.Pretty(os.Stderr, perr, file, opts)
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), tokens, file)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
