// SPDX-License-Identifier: Apache-2.0

// Package languages maps documentation code-block language names to the
// file suffix external tools expect.
package languages

import "strings"

// suffixTable maps code-block info strings (lowercased) to the
// canonical file suffix for that language. Aliases share an entry.
var suffixTable = map[string]string{
	"python":     ".py",
	"py":         ".py",
	"go":         ".go",
	"golang":     ".go",
	"javascript": ".js",
	"js":         ".js",
	"typescript": ".ts",
	"ts":         ".ts",
	"rust":       ".rs",
	"ruby":       ".rb",
	"shell":      ".sh",
	"sh":         ".sh",
	"bash":       ".sh",
	"c":          ".c",
	"cpp":        ".cpp",
	"c++":        ".cpp",
	"java":       ".java",
	"kotlin":     ".kt",
	"yaml":       ".yaml",
	"yml":        ".yaml",
	"json":       ".json",
	"toml":       ".toml",
	"html":       ".html",
	"css":        ".css",
	"sql":        ".sql",
	"markdown":   ".md",
	"md":         ".md",
	"rst":        ".rst",
	"text":       ".txt",
}

// Suffix returns the temp-file suffix for a code-block language.
// Unknown languages get ".txt", a safe default for text tools.
func Suffix(language string) string {
	if suffix, ok := suffixTable[strings.ToLower(strings.TrimSpace(language))]; ok {
		return suffix
	}
	return ".txt"
}
