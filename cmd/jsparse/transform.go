package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"jsparse/internal/driver"
	"jsparse/internal/printer"
	"jsparse/internal/rewrite"
)

var transformMinify bool

var transformCmd = &cobra.Command{
	Use:   "transform [flags] file.js|dir",
	Short: "Rewrite exponentiation into Math.pow and print JavaScript",
	Long:  `Transform parses the source, replaces every ** with a Math.pow call and prints the program back as JavaScript`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTransform,
}

func init() {
	transformCmd.Flags().BoolVar(&transformMinify, "minify", false, "drop inter-token spacing in the output")
}

func runTransform(cmd *cobra.Command, args []string) error {
	target, isDir, err := resolveTarget(args)
	if err != nil {
		return err
	}

	minify := transformMinify
	if !cmd.Flags().Changed("minify") {
		if manifest, ok, err := loadProjectManifest("."); err == nil && ok {
			minify = manifest.Config.Output.Minify
		}
	}

	if isDir {
		return runBatch(cmd, target, "transform "+target, func(ctx context.Context, opts driver.BatchOptions) ([]driver.FileResult, error) {
			return driver.TransformDir(ctx, target, minify, opts)
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
	fmt.Fprintln(cmd.OutOrStdout(), printer.Print(rewrite.Pow(prog), minify))
	return nil
}
