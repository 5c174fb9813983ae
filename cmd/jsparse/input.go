package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsparse/internal/diag"
	"jsparse/internal/diagfmt"
	"jsparse/internal/source"
)

// loadSource loads a single input into a fresh FileSet. "-" reads stdin.
func loadSource(arg string) (*source.File, error) {
	fs := source.NewFileSet()
	if arg == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return fs.Get(fs.AddVirtual("<stdin>", content)), nil
	}
	id, err := fs.Load(arg)
	if err != nil {
		return nil, err
	}
	return fs.Get(id), nil
}

// reportParseError renders a parse failure with source context when the
// error carries a span, then returns a terse error for cobra.
func reportParseError(cmd *cobra.Command, err error, file *source.File) error {
	var perr *diag.Error
	if !errors.As(err, &perr) {
		return err
	}
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	diagfmt.Pretty(os.Stderr, perr, file, diagfmt.PrettyOpts{
		Color:   useColor(colorFlag, os.Stderr),
		Context: 2,
	})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("parse failed: %s", perr.Diag.Message)
}

// resolveTarget picks the input for a command: the positional argument when
// given, otherwise the manifest's batch directory. The second result reports
// whether the target is a directory.
func resolveTarget(args []string) (string, bool, error) {
	if len(args) == 1 {
		arg := args[0]
		if arg == "-" {
			return arg, false, nil
		}
		info, err := os.Stat(arg)
		if err != nil {
			return "", false, err
		}
		return arg, info.IsDir(), nil
	}

	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", false, err
	}
	if !ok || manifest.Config.Batch.Dir == "" {
		return "", false, errors.New("no input given and no jsparse.toml with [batch].dir found")
	}
	return manifest.BatchDir(), true, nil
}
