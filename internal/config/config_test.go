// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/doccheckproj/doccheck/internal/config"
)

const validConfig = `
version: 1
checks:
  - name: mypy
    language: python
    command: ["mypy", "--strict"]
    pad_file: true
  - name: ruff-format
    language: python
    command: ["ruff", "format"]
    write_to_file: true
    env:
      RUFF_CACHE_DIR: /tmp/ruff
  - name: gofmt
    language: go
    command: ["gofmt", "-w"]
    write_to_file: true
    tempfile_suffix: ".go"
    working_directory: /tmp
`

func TestParse_ValidSuite(t *testing.T) {
	suite, err := config.Parse([]byte(validConfig))
	require.NoError(t, err)

	require.Len(t, suite.Checks, 3)
	assert.Equal(t, 1, suite.Version)

	mypy := suite.Checks[0]
	assert.Equal(t, "mypy", mypy.Name)
	assert.Equal(t, []string{"mypy", "--strict"}, mypy.Command)
	assert.True(t, mypy.PadFile)
	assert.False(t, mypy.WriteToFile, "write_to_file defaults to false")

	ruff := suite.Checks[1]
	assert.False(t, ruff.PadFile, "pad_file defaults to false")
	assert.True(t, ruff.WriteToFile)
	assert.Equal(t, map[string]string{"RUFF_CACHE_DIR": "/tmp/ruff"}, ruff.Env)

	gofmt := suite.Checks[2]
	assert.Equal(t, "/tmp", gofmt.WorkingDirectory)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		errContains string
	}{
		{
			name:        "not yaml",
			data:        "{\n",
			errContains: "parse YAML",
		},
		{
			name:        "wrong version",
			data:        "version: 2\nchecks: []\n",
			errContains: "invalid config",
		},
		{
			name:        "missing command",
			data:        "version: 1\nchecks:\n  - name: mypy\n    language: python\n",
			errContains: "invalid config",
		},
		{
			name:        "empty command",
			data:        "version: 1\nchecks:\n  - name: mypy\n    language: python\n    command: []\n",
			errContains: "invalid config",
		},
		{
			name:        "empty name",
			data:        "version: 1\nchecks:\n  - name: \"\"\n    language: python\n    command: [\"true\"]\n",
			errContains: "invalid config",
		},
		{
			name:        "command not a list of strings",
			data:        "version: 1\nchecks:\n  - name: mypy\n    language: python\n    command: \"mypy --strict\"\n",
			errContains: "invalid config",
		},
		{
			name:        "unknown field",
			data:        "version: 1\nchecks:\n  - name: mypy\n    language: python\n    command: [\"mypy\"]\n    timeout: 30\n",
			errContains: "invalid config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestCheck_SuffixFallsBackToLanguage(t *testing.T) {
	assert.Equal(t, ".py", config.Check{Language: "python"}.Suffix())
	assert.Equal(t, ".pyi", config.Check{Language: "python", TempfileSuffix: ".pyi"}.Suffix())
	assert.Equal(t, ".txt", config.Check{Language: "unknown-lang"}.Suffix())
}

func TestSuite_LanguageGrouping(t *testing.T) {
	suite, err := config.Parse([]byte(validConfig))
	require.NoError(t, err)

	assert.Equal(t, []string{"python", "go"}, suite.Languages())

	python := suite.ForLanguage("python")
	require.Len(t, python, 2)
	assert.Equal(t, "mypy", python[0].Name, "configuration order is preserved")
	assert.Equal(t, "ruff-format", python[1].Name)

	assert.Empty(t, suite.ForLanguage("rust"))
}

func TestCheck_Evaluator(t *testing.T) {
	check := config.Check{
		Name:     "true-check",
		Language: "python",
		Command:  []string{"true"},
	}
	assert.NotNil(t, check.Evaluator(zap.NewNop()))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doccheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o644))

	suite, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, suite.Checks, 3)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}
