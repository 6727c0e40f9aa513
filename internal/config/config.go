// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the doccheck suite configuration.
package config

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/doccheckproj/doccheck/internal/languages"
	"github.com/doccheckproj/doccheck/pkg/evaluate"
)

// suiteSchema constrains the configuration file. Validation happens
// against this schema before the struct is populated, so type and shape
// mistakes surface with a config error rather than odd behavior later.
const suiteSchema = `
#Check: {
	name:               string & !=""
	language:           string & !=""
	command:            [string, ...string]
	pad_file:           bool | *false
	write_to_file:      bool | *false
	tempfile_suffix?:   string & !=""
	working_directory?: string & !=""
	env?: [string]: string
}

#Suite: {
	version: 1
	checks:  [...#Check]
}
`

// Check is one named shell check applied to code blocks of a language.
type Check struct {
	Name             string            `yaml:"name"`
	Language         string            `yaml:"language"`
	Command          []string          `yaml:"command"`
	PadFile          bool              `yaml:"pad_file"`
	WriteToFile      bool              `yaml:"write_to_file"`
	TempfileSuffix   string            `yaml:"tempfile_suffix"`
	WorkingDirectory string            `yaml:"working_directory"`
	Env              map[string]string `yaml:"env"`
}

// Suite is the full configuration: an ordered list of checks. Order is
// significant; checks for the same language run in file order.
type Suite struct {
	Version int     `yaml:"version"`
	Checks  []Check `yaml:"checks"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	suite, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return suite, nil
}

// Parse validates data against the suite schema and decodes it.
func Parse(data []byte) (*Suite, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	cuectx := cuecontext.New()
	schema := cuectx.CompileString(suiteSchema)
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	definition := schema.LookupPath(cue.ParsePath("#Suite"))
	unified := definition.Unify(cuectx.Encode(raw))
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	var suite Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &suite, nil
}

// Suffix returns the temp-file suffix for the check, falling back to
// the language's canonical suffix when none is configured.
func (c Check) Suffix() string {
	if c.TempfileSuffix != "" {
		return c.TempfileSuffix
	}
	return languages.Suffix(c.Language)
}

// Evaluator materializes the check into a ShellCommandEvaluator.
func (c Check) Evaluator(logger *zap.Logger) *evaluate.ShellCommandEvaluator {
	return evaluate.NewShellCommandEvaluator(evaluate.ShellCommandConfig{
		Command:        c.Command,
		TempfileSuffix: c.Suffix(),
		PadFile:        c.PadFile,
		WriteToFile:    c.WriteToFile,
		WorkDir:        c.WorkingDirectory,
		Env:            c.Env,
		Logger:         logger,
	})
}

// Languages returns the distinct languages referenced by the suite, in
// first-appearance order.
func (s *Suite) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, check := range s.Checks {
		if !seen[check.Language] {
			seen[check.Language] = true
			out = append(out, check.Language)
		}
	}
	return out
}

// ForLanguage returns the suite's checks for one language, in order.
func (s *Suite) ForLanguage(language string) []Check {
	var out []Check
	for _, check := range s.Checks {
		if check.Language == language {
			out = append(out, check)
		}
	}
	return out
}
