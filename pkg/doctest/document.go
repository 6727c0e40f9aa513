// SPDX-License-Identifier: Apache-2.0

package doctest

import (
	"fmt"
	"os"
)

// TextDocument is an in-memory, file-backed Document. Replace mutates
// only the in-memory text; Save persists it, and is skipped entirely
// when nothing changed so file modification times are left alone.
type TextDocument struct {
	path  string
	text  string
	dirty bool
}

// NewTextDocument creates a document from already-loaded text.
func NewTextDocument(path, text string) *TextDocument {
	return &TextDocument{path: path, text: text}
}

// LoadTextDocument reads the file at path into a document.
func LoadTextDocument(path string) (*TextDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return &TextDocument{path: path, text: string(data)}, nil
}

func (d *TextDocument) Path() string {
	return d.path
}

func (d *TextDocument) Text() string {
	return d.text
}

// Modified reports whether the text differs from what was loaded or
// last saved.
func (d *TextDocument) Modified() bool {
	return d.dirty
}

// Replace rewrites the span r with text. Replacing a region with
// identical content is a no-op and does not mark the document modified.
func (d *TextDocument) Replace(r Region, text string) error {
	if r.Start < 0 || r.End < r.Start || r.End > len(d.text) {
		return fmt.Errorf("region [%d:%d) out of range for %s (%d bytes)", r.Start, r.End, d.path, len(d.text))
	}
	updated := d.text[:r.Start] + text + d.text[r.End:]
	if updated == d.text {
		return nil
	}
	d.text = updated
	d.dirty = true
	return nil
}

// Save writes the text back to the document's path if it was modified.
func (d *TextDocument) Save() error {
	if !d.dirty {
		return nil
	}
	if err := os.WriteFile(d.path, []byte(d.text), 0o644); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	d.dirty = false
	return nil
}
