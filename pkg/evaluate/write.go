// SPDX-License-Identifier: Apache-2.0

package evaluate

import (
	"context"
	"strings"

	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// WriteEvaluator writes the example's current Parsed content back into
// its document region, re-indented to match the region. It is useful at
// the end of a chain whose earlier evaluators rewrite Parsed. Writes
// that would not change the document are skipped.
type WriteEvaluator struct {
	// StripLeadingNewlines removes up to Line-1 leading newlines from
	// the content before writing, undoing padding added upstream.
	StripLeadingNewlines bool
}

func (w *WriteEvaluator) Evaluate(_ context.Context, example *doctest.Example) error {
	content := strings.TrimRight(example.Parsed, "\n")
	if w.StripLeadingNewlines {
		pad := example.Line - 1
		if pad > 0 {
			content = stripLeadingNewlines(content, pad)
		}
	}
	return replaceExampleContent(example, content)
}
