// SPDX-License-Identifier: Apache-2.0

// Package shellrun runs external commands synchronously and captures
// their outcome.
package shellrun

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Spec describes one command invocation.
type Spec struct {
	// Argv is the program followed by its arguments.
	Argv []string
	// Dir is the working directory. Empty inherits the caller's.
	Dir string
	// Env is the full environment for the command. Nil inherits the
	// caller's environment.
	Env []string
	// Stdin is fed to the command's standard input when non-empty.
	Stdin string
}

// Result is the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Run executes the command described by spec and waits for it to exit.
// A non-zero exit status is reported through Result.ExitCode, not as an
// error. Errors are reserved for commands that could not be started and
// for runs cut short by ctx.
func Run(ctx context.Context, spec Spec) (*Result, error) {
	if len(spec.Argv) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, spec.Argv[0], spec.Argv[1:]...)
	cmd.Dir = spec.Dir
	if spec.Env != nil {
		cmd.Env = spec.Env
	}
	if spec.Stdin != "" {
		cmd.Stdin = strings.NewReader(spec.Stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		if ctx.Err() != nil {
			return nil, fmt.Errorf("command %q interrupted: %w", spec.Argv[0], ctx.Err())
		}
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("start command %q: %w", spec.Argv[0], err)
	}
	return result, nil
}
