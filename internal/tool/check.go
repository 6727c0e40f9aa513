// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/doccheckproj/doccheck/pkg/doctest"
	"github.com/doccheckproj/doccheck/pkg/evaluate"
)

// MetadataRunShellCheck describes the run_shell_check tool.
var MetadataRunShellCheck = &mcp.Tool{
	Name: "run_shell_check",
	Description: "Run a shell command against the content of a documentation code block. " +
		"The content is materialized into a temporary file (optionally padded so the tool " +
		"reports line numbers matching the source document), the command is invoked with " +
		"the file path appended as its final argument, and the exit status and captured " +
		"output are returned. The temporary file is removed afterward and the source " +
		"document is never modified.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content", "command"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw content of the code block to check. May be empty.",
			},
			"command": map[string]interface{}{
				"type":        "array",
				"items":       map[string]interface{}{"type": "string"},
				"description": "Program and arguments to run. The temporary file path is appended as the final argument.",
			},
			"line": map[string]interface{}{
				"type":        "integer",
				"description": "1-based line of the block's first content line in its source document. Defaults to 1.",
			},
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Optional source document path, used in diagnostics and for the temporary file's name.",
			},
			"tempfile_suffix": map[string]interface{}{
				"type":        "string",
				"description": "Suffix for the temporary file name, for tools that dispatch on file extension (\".py\", \".go\", ...).",
			},
			"pad_file": map[string]interface{}{
				"type":        "boolean",
				"description": "Prepend line-1 blank lines so reported line numbers match the source document.",
			},
		},
	},
}

// InputRunShellCheck is the input for the RunShellCheck tool.
type InputRunShellCheck struct {
	Content        string   `json:"content"`
	Command        []string `json:"command"`
	Line           int      `json:"line"`
	Path           string   `json:"path"`
	TempfileSuffix string   `json:"tempfile_suffix"`
	PadFile        bool     `json:"pad_file"`
}

// OutputRunShellCheck is the output for the RunShellCheck tool.
type OutputRunShellCheck struct {
	// Passed reports whether the command exited with status zero.
	Passed bool `json:"passed"`
	// ExitCode is the command's exit status.
	ExitCode int `json:"exit_code"`
	// Stdout and Stderr carry the captured output of a failed command.
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	// Command is the full command that ran, temporary file included, so
	// a failure can be reproduced manually.
	Command []string `json:"command"`
}

// RunShellCheck evaluates a code block's content with a shell command
// and reports the outcome. Command failures are part of the output, not
// tool errors; only broken input or file plumbing surfaces as an error.
func RunShellCheck(ctx context.Context, _ *mcp.CallToolRequest, input InputRunShellCheck) (*mcp.CallToolResult, OutputRunShellCheck, error) {
	if len(input.Command) == 0 {
		return nil, OutputRunShellCheck{}, fmt.Errorf("command is required")
	}

	line := input.Line
	if line < 1 {
		line = 1
	}
	path := input.Path
	if path == "" {
		path = "example.md"
	}

	example := &doctest.Example{
		Path:   path,
		Line:   line,
		Text:   input.Content,
		Parsed: input.Content,
	}
	evaluator := evaluate.NewShellCommandEvaluator(evaluate.ShellCommandConfig{
		Command:        input.Command,
		TempfileSuffix: input.TempfileSuffix,
		PadFile:        input.PadFile,
	})

	err := evaluator.Evaluate(ctx, example)
	var cmdErr *evaluate.CommandError
	switch {
	case err == nil:
		return nil, OutputRunShellCheck{Passed: true, Command: input.Command}, nil
	case errors.As(err, &cmdErr):
		return nil, OutputRunShellCheck{
			Passed:   false,
			ExitCode: cmdErr.ExitCode,
			Stdout:   cmdErr.Stdout,
			Stderr:   cmdErr.Stderr,
			Command:  cmdErr.Command,
		}, nil
	default:
		return nil, OutputRunShellCheck{}, err
	}
}
