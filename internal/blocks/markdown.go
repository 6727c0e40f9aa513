// SPDX-License-Identifier: Apache-2.0

// Package blocks extracts fenced code blocks from Markdown documents as
// evaluatable examples. It exists to feed the CLI; the evaluators
// themselves never parse documents.
package blocks

import (
	"strings"

	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// Extract scans doc's text for fenced code blocks whose info string
// matches language (case-insensitive; an empty language matches every
// block) and returns one Example per block. The example's region covers
// the block body only, fences excluded, so write-back replaces just the
// code. Unclosed fences are ignored.
func Extract(doc doctest.Document, language string) []*doctest.Example {
	text := doc.Text()
	lines := strings.SplitAfter(text, "\n")

	var examples []*doctest.Example

	inFence := false
	fenceIndent := ""
	fenceLen := 0
	fenceMatches := false
	bodyStart := 0
	bodyLine := 0

	offset := 0
	for i, line := range lines {
		lineStart := offset
		offset += len(line)

		trimmed := strings.TrimRight(line, "\n")
		stripped := strings.TrimLeft(trimmed, " \t")

		if !inFence {
			ticks := leadingRun(stripped, '`')
			if ticks >= 3 {
				inFence = true
				fenceIndent = trimmed[:len(trimmed)-len(stripped)]
				fenceLen = ticks
				info := strings.TrimSpace(stripped[ticks:])
				fenceMatches = matchesLanguage(info, language)
				bodyStart = offset
				bodyLine = i + 2 // 1-based line after the fence
			}
			continue
		}

		if isClosingFence(stripped, fenceLen) {
			inFence = false
			if !fenceMatches {
				continue
			}
			region := doctest.Region{Start: bodyStart, End: lineStart}
			body := text[region.Start:region.End]
			examples = append(examples, &doctest.Example{
				Document: doc,
				Path:     doc.Path(),
				Line:     bodyLine,
				Region:   region,
				Text:     body,
				Parsed:   dedent(body, fenceIndent),
			})
		}
	}

	return examples
}

func matchesLanguage(info, language string) bool {
	if language == "" {
		return true
	}
	first, _, _ := strings.Cut(info, " ")
	return strings.EqualFold(first, language)
}

// isClosingFence reports whether a line (already stripped of leading
// whitespace and the trailing newline) closes a fence of openLen ticks.
func isClosingFence(stripped string, openLen int) bool {
	ticks := leadingRun(stripped, '`')
	return ticks >= openLen && strings.TrimSpace(stripped[ticks:]) == ""
}

func leadingRun(s string, c byte) int {
	n := 0
	for n < len(s) && s[n] == c {
		n++
	}
	return n
}

// dedent strips the opening fence's indentation prefix from each body
// line that carries it.
func dedent(body, prefix string) string {
	if prefix == "" {
		return body
	}
	lines := strings.SplitAfter(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "")
}
