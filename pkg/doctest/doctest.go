// SPDX-License-Identifier: Apache-2.0

// Package doctest defines the contract between documentation-testing
// frameworks and the evaluators in this repository: a positioned Example
// within a source Document, and the Evaluator capability that checks it.
package doctest

import "context"

// Region is a contiguous byte-offset span within a document's text,
// addressable for replacement. Start is inclusive, End exclusive.
type Region struct {
	Start int
	End   int
}

// Len returns the number of bytes the region spans.
func (r Region) Len() int {
	return r.End - r.Start
}

// Document is the source document abstraction evaluators consume.
// Discovery of examples is the caller's concern; evaluators only read
// the text and, for write-back, replace a single region in place.
type Document interface {
	Path() string
	Text() string
	Replace(r Region, text string) error
}

// Example is one discovered, positioned unit of text within a source
// document, subject to evaluation.
//
// Text is the region content exactly as it appears in the document,
// indentation included. Parsed is the dedented content handed to tools.
// An evaluator that rewrites content updates Parsed (and Text/Region on
// write-back) so that later evaluators in a chain see the result.
type Example struct {
	Document Document
	Path     string
	Line     int // 1-based line of the first content line
	Region   Region
	Text     string
	Parsed   string
}

// Evaluator checks one Example. A nil return means the example passed;
// a non-nil error is the failure the framework surfaces for it.
type Evaluator interface {
	Evaluate(ctx context.Context, example *Example) error
}

// EvaluatorFunc adapts a plain function to the Evaluator interface.
type EvaluatorFunc func(ctx context.Context, example *Example) error

func (f EvaluatorFunc) Evaluate(ctx context.Context, example *Example) error {
	return f(ctx, example)
}
