// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/doccheckproj/doccheck/internal/blocks"
	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// namedCheck pairs an evaluator with the name reported on failure.
type namedCheck struct {
	name      string
	evaluator doctest.Evaluator
}

// evaluateFile runs every check against every matching code block of
// one file, in document order, and saves the document if any check
// rewrote a block. A failing check does not stop the remaining blocks;
// all failures are returned.
func evaluateFile(ctx context.Context, path, language string, checks []namedCheck) []error {
	doc, err := doctest.LoadTextDocument(path)
	if err != nil {
		return []error{err}
	}

	examples := blocks.Extract(doc, language)
	logger.Debug("extracted code blocks",
		zap.String("path", path),
		zap.String("language", language),
		zap.Int("count", len(examples)))

	var failures []error
	for i, example := range examples {
		for _, check := range checks {
			before := example.Region
			beforeLines := strings.Count(example.Text, "\n")

			if err := check.evaluator.Evaluate(ctx, example); err != nil {
				failures = append(failures, fmt.Errorf("check %q: %w", check.name, err))
				break
			}

			// A write-back can change the block's size; keep the
			// positions of the remaining examples valid.
			shiftExamples(examples[i+1:],
				example.Region.Len()-before.Len(),
				strings.Count(example.Text, "\n")-beforeLines)
		}
	}

	if doc.Modified() {
		if err := doc.Save(); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}

func shiftExamples(examples []*doctest.Example, byteDelta, lineDelta int) {
	if byteDelta == 0 && lineDelta == 0 {
		return
	}
	for _, example := range examples {
		example.Region.Start += byteDelta
		example.Region.End += byteDelta
		example.Line += lineDelta
	}
}
