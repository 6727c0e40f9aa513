// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunShellCheck(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	tests := []struct {
		name           string
		input          InputRunShellCheck
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputRunShellCheck)
	}{
		{
			name:        "missing command returns error",
			input:       InputRunShellCheck{Content: "x = 1"},
			wantErr:     true,
			errContains: "command is required",
		},
		{
			name: "passing command reports success",
			input: InputRunShellCheck{
				Content: "x = 2 + 2\nassert x == 4\n",
				Command: []string{"sh", "-c", "exit 0"},
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputRunShellCheck) {
				assert.True(t, output.Passed)
				assert.Equal(t, 0, output.ExitCode)
			},
		},
		{
			name: "failing command reports exit code and output",
			input: InputRunShellCheck{
				Content: "x = broken",
				Command: []string{"sh", "-c", "echo not ok >&2; exit 2", "doccheck"},
				Path:    "docs/usage.md",
				Line:    12,
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputRunShellCheck) {
				assert.False(t, output.Passed)
				assert.Equal(t, 2, output.ExitCode)
				assert.Contains(t, output.Stderr, "not ok")
				require.NotEmpty(t, output.Command)
				assert.Equal(t, []string{"sh", "-c", "echo not ok >&2; exit 2", "doccheck"}, output.Command[:len(output.Command)-1], "the last element is the temporary file path")
			},
		},
		{
			name: "empty content still runs the command",
			input: InputRunShellCheck{
				Content: "",
				Command: []string{"sh", "-c", `test -f "$1"`, "doccheck"},
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputRunShellCheck) {
				assert.True(t, output.Passed)
			},
		},
		{
			name: "padded content aligns reported line numbers",
			input: InputRunShellCheck{
				Content: "x = 1\n",
				Command: []string{"sh", "-c", `test "$(wc -l < "$1")" -eq 5`, "doccheck"},
				Line:    5,
				PadFile: true,
			},
			wantErr: false,
			validateOutput: func(t *testing.T, output OutputRunShellCheck) {
				assert.True(t, output.Passed, "4 padding lines plus one content line")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := RunShellCheck(ctx, req, tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}
