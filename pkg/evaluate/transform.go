// SPDX-License-Identifier: Apache-2.0

package evaluate

import "github.com/doccheckproj/doccheck/pkg/doctest"

// SourcePreparer extracts the source string from an example before it
// is materialized into the temporary file handed to a shell command.
// The default preparer returns Parsed as-is.
type SourcePreparer func(example *doctest.Example) string

// ResultTransformer converts the content produced by a shell command
// (after any padding has been stripped) before it is written back into
// the document. The default transformer returns the content unchanged.
type ResultTransformer func(content string, example *doctest.Example) string

func defaultPreparer(example *doctest.Example) string {
	return example.Parsed
}

func defaultTransformer(content string, _ *doctest.Example) string {
	return content
}
