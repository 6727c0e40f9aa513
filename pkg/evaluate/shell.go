// SPDX-License-Identifier: Apache-2.0

package evaluate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/doccheckproj/doccheck/internal/shellrun"
	"github.com/doccheckproj/doccheck/pkg/doctest"
)

// CommandError reports a shell check whose command exited non-zero. It
// carries everything needed to reproduce the failure manually: the full
// command including the temporary file path, the exit code, and the
// captured output.
type CommandError struct {
	Command  []string
	ExitCode int
	Stdout   string
	Stderr   string
	Path     string
	Line     int
}

func (e *CommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d: command %q exited with status %d", e.Path, e.Line, strings.Join(e.Command, " "), e.ExitCode)
	if out := strings.TrimSpace(e.Stdout); out != "" {
		b.WriteString("\nstdout:\n")
		b.WriteString(out)
	}
	if errOut := strings.TrimSpace(e.Stderr); errOut != "" {
		b.WriteString("\nstderr:\n")
		b.WriteString(errOut)
	}
	return b.String()
}

// ShellCommandConfig configures a ShellCommandEvaluator. The zero value
// of every optional field is usable.
type ShellCommandConfig struct {
	// Command is the program and its arguments. The temporary file path
	// is appended as the final argument on every invocation.
	Command []string
	// TempfileSuffix is appended to the temporary file name, for tools
	// that dispatch on file extension (".py", ".go", ...).
	TempfileSuffix string
	// TempfileNamePrefix further distinguishes temporary files, e.g.
	// for ignore rules in linter configurations.
	TempfileNamePrefix string
	// PadFile prepends Line-1 blank lines to the temporary file so the
	// tool reports line numbers matching the source document. Useful
	// for checkers, detrimental to formatters.
	PadFile bool
	// WriteToFile copies the temporary file's post-run content back
	// into the source document's region when the command succeeds.
	WriteToFile bool
	// WorkDir is the working directory for the command. Empty inherits
	// the caller's.
	WorkDir string
	// Env holds environment overrides merged onto the caller's
	// environment for the command.
	Env map[string]string
	// Preparer extracts the source written to the temporary file.
	Preparer SourcePreparer
	// Transformer rewrites post-run content before write-back.
	Transformer ResultTransformer
	// Logger receives secondary diagnostics such as cleanup failures.
	Logger *zap.Logger
}

// ShellCommandEvaluator bridges an example's text to an external
// process: it materializes the text into a temporary file, runs the
// configured command against that file, optionally writes the file's
// final content back into the source document, and removes the file on
// every exit path. Configuration is immutable after construction and
// instances are reusable; each Evaluate call owns its own file, so
// concurrent invocations do not collide.
type ShellCommandEvaluator struct {
	cfg    ShellCommandConfig
	logger *zap.Logger
}

// NewShellCommandEvaluator creates an evaluator from cfg.
func NewShellCommandEvaluator(cfg ShellCommandConfig) *ShellCommandEvaluator {
	if cfg.Preparer == nil {
		cfg.Preparer = defaultPreparer
	}
	if cfg.Transformer == nil {
		cfg.Transformer = defaultTransformer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShellCommandEvaluator{cfg: cfg, logger: logger}
}

// Evaluate runs the configured command against the example's content.
// It returns nil on a zero exit status, a *CommandError on a non-zero
// one, and a wrapped I/O error when the file plumbing fails. No timeout
// is imposed; cancel ctx to cut a hanging command short.
func (e *ShellCommandEvaluator) Evaluate(ctx context.Context, example *doctest.Example) (err error) {
	line := example.Line
	if line < 1 {
		line = 1
	}

	source := e.cfg.Preparer(example)
	if e.cfg.PadFile {
		source = strings.Repeat("\n", line-1) + source
	}
	// Tools, formatters especially, expect a trailing newline.
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}

	tempPath := e.tempFilePath(example, line)
	if writeErr := os.WriteFile(tempPath, []byte(source), 0o644); writeErr != nil {
		return fmt.Errorf("write temp file for %s:%d: %w", example.Path, line, writeErr)
	}
	defer func() {
		rmErr := os.Remove(tempPath)
		if rmErr == nil || os.IsNotExist(rmErr) {
			return
		}
		if err == nil {
			err = fmt.Errorf("remove temp file for %s:%d: %w", example.Path, line, rmErr)
			return
		}
		// Never mask the more specific failure with a cleanup failure.
		e.logger.Warn("could not remove temp file",
			zap.String("path", tempPath),
			zap.Error(rmErr))
	}()

	argv := append(append([]string{}, e.cfg.Command...), tempPath)
	e.logger.Debug("running shell check",
		zap.Strings("command", argv),
		zap.String("example", fmt.Sprintf("%s:%d", example.Path, line)))

	result, runErr := shellrun.Run(ctx, shellrun.Spec{
		Argv: argv,
		Dir:  e.cfg.WorkDir,
		Env:  e.environ(),
	})
	if runErr != nil {
		return fmt.Errorf("run %q for %s:%d: %w", strings.Join(e.cfg.Command, " "), example.Path, line, runErr)
	}

	if result.ExitCode != 0 {
		return &CommandError{
			Command:  argv,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Path:     example.Path,
			Line:     line,
		}
	}

	if e.cfg.WriteToFile {
		return e.writeBack(example, tempPath, line)
	}
	return nil
}

// tempFilePath builds a collision-free sibling path for the example's
// document, so tool output points near the real file. The random part
// keeps concurrent and repeated invocations apart.
func (e *ShellCommandEvaluator) tempFilePath(example *doctest.Example, line int) string {
	dir := os.TempDir()
	base := "example"
	if example.Path != "" {
		if parent := filepath.Dir(example.Path); isDir(parent) {
			dir = parent
		}
		base = sanitizeBaseName(filepath.Base(example.Path))
	}
	name := fmt.Sprintf("%s_l%d_%s%s", base, line, uuid.NewString()[:8], e.cfg.TempfileSuffix)
	if e.cfg.TempfileNamePrefix != "" {
		name = e.cfg.TempfileNamePrefix + "_" + name
	}
	return filepath.Join(dir, name)
}

// writeBack copies the temporary file's final content into the source
// document's region, stripping the padding added before the run.
func (e *ShellCommandEvaluator) writeBack(example *doctest.Example, tempPath string, line int) error {
	raw, err := os.ReadFile(tempPath)
	if err != nil {
		if os.IsNotExist(err) {
			// The command removed its input; nothing to write back.
			return nil
		}
		return fmt.Errorf("read temp file for %s:%d after command: %w", example.Path, line, err)
	}

	content := string(raw)
	if e.cfg.PadFile {
		content = stripLeadingNewlines(content, line-1)
	}
	// Code blocks never contain trailing blank lines; the region's own
	// trailing-newline state is restored by replaceExampleContent.
	content = strings.TrimRight(content, "\n")
	content = e.cfg.Transformer(content, example)
	return replaceExampleContent(example, content)
}

// environ merges the configured overrides onto the caller's
// environment, or inherits it untouched when there are none.
func (e *ShellCommandEvaluator) environ() []string {
	if len(e.cfg.Env) == 0 {
		return nil
	}
	env := os.Environ()
	for key, value := range e.cfg.Env {
		env = append(env, key+"="+value)
	}
	return env
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// sanitizeBaseName replaces characters that trip up tools which infer
// module names from file names.
func sanitizeBaseName(name string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(name)
}
