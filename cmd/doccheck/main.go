// SPDX-License-Identifier: Apache-2.0

// Command doccheck runs shell checks against fenced code blocks in
// documentation files, and serves the same capability over the Model
// Context Protocol.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "doccheck",
	Short: "Run shell commands against code blocks in documentation",
	Long: `doccheck extracts fenced code blocks from Markdown documentation and
runs external tools against them: checkers that fail the run when a
block is wrong, and formatters whose output is written back into the
document.

Each block is materialized into a temporary file next to the document,
optionally padded with blank lines so tool-reported line numbers match
the source, and removed again afterward.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if !verbose {
			return nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(fixCmd, checkCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
