package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsparse/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "jsparse",
	Short: "JavaScript parser and Math.pow rewriter",
	Long:  `jsparse parses JavaScript sources, rewrites exponentiation into Math.pow calls and serializes syntax trees`,
}

// main registers subcommands and persistent flags and executes the root
// command. A failed command exits with status code 1.
func main() {
	// Version for the automatic --version flag
	rootCmd.Version = version.Version

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(transformCmd)
	rootCmd.AddCommand(astCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel workers for directory runs (0 = all CPUs)")
	rootCmd.PersistentFlags().Bool("ui", false, "live progress display for directory runs")
	rootCmd.PersistentFlags().Bool("cache", false, "reuse results from the on-disk cache for directory runs")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(colorFlag string, f *os.File) bool {
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
