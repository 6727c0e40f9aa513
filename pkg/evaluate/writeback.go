// SPDX-License-Identifier: Apache-2.0

package evaluate

import (
	"fmt"
	"strings"

	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// countLeadingNewlines returns the number of newlines before the first
// non-newline byte of s.
func countLeadingNewlines(s string) int {
	count := 0
	for _, c := range s {
		if c != '\n' {
			break
		}
		count++
	}
	return count
}

// stripLeadingNewlines removes up to n newlines from the start of s.
// If fewer exist, all of them are removed.
func stripLeadingNewlines(s string, n int) string {
	leading := countLeadingNewlines(s)
	if leading < n {
		n = leading
	}
	return s[n:]
}

// regionIndent returns the leading whitespace of the first non-blank
// line of the example's region text. Parsed content is dedented, so
// this is the prefix to re-apply on write-back.
func regionIndent(example *doctest.Example) string {
	for _, line := range strings.Split(example.Text, "\n") {
		if strings.TrimSpace(line) != "" {
			return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		}
	}
	return ""
}

// indentText prefixes every non-blank line of text with prefix.
func indentText(text, prefix string) string {
	if prefix == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// replaceExampleContent replaces the example's document region with
// content (given dedented, without a trailing newline), re-applying the
// region's indentation and preserving its trailing-newline state so a
// round trip without real changes produces no document diff. The
// example's Region, Text and Parsed are updated so that later
// evaluators in a chain see the result. Replacing with identical
// content is a no-op.
func replaceExampleContent(example *doctest.Example, content string) error {
	replacement := indentText(content, regionIndent(example))
	if strings.HasSuffix(example.Text, "\n") {
		replacement += "\n"
	}
	if replacement == example.Text {
		return nil
	}
	if example.Document == nil {
		return fmt.Errorf("cannot write back %s:%d: example has no document", example.Path, example.Line)
	}
	if err := example.Document.Replace(example.Region, replacement); err != nil {
		return fmt.Errorf("write back %s:%d: %w", example.Path, example.Line, err)
	}
	example.Region.End = example.Region.Start + len(replacement)
	example.Text = replacement
	example.Parsed = content
	return nil
}
