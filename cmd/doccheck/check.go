// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/doccheckproj/doccheck/internal/config"
)

var checkConfigPath string

var checkCmd = &cobra.Command{
	Use:   "check --config doccheck.yaml FILE...",
	Short: "Run the configured checks against documentation files",
	Long: `Run every check from the configuration file against the matching code
blocks of the given files. Checks for the same language run in
configuration order against each block; the first failing check of a
block stops that block's remaining checks.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		suite, err := config.Load(checkConfigPath)
		if err != nil {
			return err
		}

		failed := 0
		for _, path := range args {
			for _, language := range suite.Languages() {
				var checks []namedCheck
				for _, check := range suite.ForLanguage(language) {
					checks = append(checks, namedCheck{
						name:      check.Name,
						evaluator: check.Evaluator(logger),
					})
				}
				for _, failure := range evaluateFile(cmd.Context(), path, language, checks) {
					fmt.Fprintln(os.Stderr, failure)
					failed++
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "doccheck.yaml", "path to the suite configuration")
}
