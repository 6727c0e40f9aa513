// SPDX-License-Identifier: Apache-2.0

// Package evaluate provides evaluators for documentation examples: a
// MultiEvaluator that composes several evaluators, a
// ShellCommandEvaluator that runs an external command against an
// example's content, and a WriteEvaluator that writes content back into
// the source document.
package evaluate

import (
	"context"

	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// MultiEvaluator runs several independent evaluators against the same
// example, in registration order. Instances hold no per-call state and
// may be reused across any number of examples.
type MultiEvaluator struct {
	evaluators []doctest.Evaluator
}

// NewMultiEvaluator creates a MultiEvaluator. Order is significant and
// defines execution order; duplicates are allowed.
func NewMultiEvaluator(evaluators ...doctest.Evaluator) *MultiEvaluator {
	return &MultiEvaluator{evaluators: evaluators}
}

// Evaluate invokes each evaluator in order, passing the same example to
// each. The first failure is returned and later evaluators are not
// invoked. Errors are deliberately not wrapped: the caller must see the
// inner evaluator's failure unchanged. An empty sequence succeeds
// trivially.
func (m *MultiEvaluator) Evaluate(ctx context.Context, example *doctest.Example) error {
	for _, evaluator := range m.evaluators {
		if err := evaluator.Evaluate(ctx, example); err != nil {
			return err
		}
	}
	return nil
}
