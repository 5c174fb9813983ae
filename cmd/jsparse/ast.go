package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jsparse/internal/astfmt"
	"jsparse/internal/driver"
)

var astLoose bool

var astCmd = &cobra.Command{
	Use:   "ast [flags] file.js|dir",
	Short: "Parse JavaScript and print the JSON syntax tree",
	Long:  `Ast parses the source and prints its syntax tree in the reference JSON schema`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().BoolVar(&astLoose, "loose", false, "add sourceType to the top-level Program node")
}

func runAST(cmd *cobra.Command, args []string) error {
	target, isDir, err := resolveTarget(args)
	if err != nil {
		return err
	}

	loose := astLoose
	if !cmd.Flags().Changed("loose") {
		if manifest, ok, err := loadProjectManifest("."); err == nil && ok {
			loose = manifest.Config.Output.Loose
		}
	}

	if isDir {
		return runBatch(cmd, target, "ast "+target, func(ctx context.Context, opts driver.BatchOptions) ([]driver.FileResult, error) {
			return driver.ASTDir(ctx, target, loose, opts)
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
	out, err := astfmt.JSON(prog, loose)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
