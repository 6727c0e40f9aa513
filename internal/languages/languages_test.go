// SPDX-License-Identifier: Apache-2.0

package languages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doccheckproj/doccheck/internal/languages"
)

func TestSuffix(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{language: "python", want: ".py"},
		{language: "py", want: ".py"},
		{language: "Python", want: ".py"},
		{language: " go ", want: ".go"},
		{language: "bash", want: ".sh"},
		{language: "yml", want: ".yaml"},
		{language: "c++", want: ".cpp"},
		{language: "brainfuck", want: ".txt"},
		{language: "", want: ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.language, func(t *testing.T) {
			assert.Equal(t, tt.want, languages.Suffix(tt.language))
		})
	}
}
