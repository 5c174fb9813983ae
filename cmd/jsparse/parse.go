package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jsparse/internal/astfmt"
	"jsparse/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js|dir",
	Short: "Parse JavaScript and print the statement dump",
	Long:  `Parse reads a JavaScript source (file, directory, or - for stdin) and prints the debug dump of its statement list`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	target, isDir, err := resolveTarget(args)
	if err != nil {
		return err
	}

	if isDir {
		return runBatch(cmd, target, "parse "+target, func(ctx context.Context, opts driver.BatchOptions) ([]driver.FileResult, error) {
			return driver.ParseDir(ctx, target, opts)
		})
	}

	file, err := loadSource(target)
	if err != nil {
		return err
	}
	prog, err := driver.ParseFile(file)
	if err != nil {
		return reportParseError(cmd, err, file)
	}
	fmt.Fprintln(cmd.OutOrStdout(), astfmt.DebugDump(prog))
	return nil
}
