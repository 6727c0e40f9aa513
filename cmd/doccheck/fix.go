// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doccheckproj/doccheck/internal/languages"
	"github.com/doccheckproj/doccheck/pkg/evaluate"
)

var fixLanguage string

var fixCmd = &cobra.Command{
	Use:   "fix --language LANG FILE... -- COMMAND [ARG...]",
	Short: "Rewrite code blocks with a formatter's output",
	Long: `Run a formatter against every code block of the given language and
write its output back into the documents. The block's temporary file
path is appended as the command's final argument, so the command must
format its file argument in place, e.g.:

  doccheck fix --language python docs/usage.md -- ruff format`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dash := cmd.ArgsLenAtDash()
		if dash < 1 || dash == len(args) {
			return fmt.Errorf("usage: doccheck fix --language LANG FILE... -- COMMAND [ARG...]")
		}
		files, command := args[:dash], args[dash:]

		evaluator := evaluate.NewShellCommandEvaluator(evaluate.ShellCommandConfig{
			Command:        command,
			TempfileSuffix: languages.Suffix(fixLanguage),
			PadFile:        true,
			WriteToFile:    true,
			Logger:         logger,
		})
		checks := []namedCheck{{name: strings.Join(command, " "), evaluator: evaluator}}

		failed := 0
		for _, path := range files {
			for _, failure := range evaluateFile(cmd.Context(), path, fixLanguage, checks) {
				fmt.Fprintln(os.Stderr, failure)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d code block(s) failed", failed)
		}
		return nil
	},
}

func init() {
	fixCmd.Flags().StringVar(&fixLanguage, "language", "", "code block language to rewrite (required)")
	_ = fixCmd.MarkFlagRequired("language")
}
