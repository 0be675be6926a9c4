package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sivchari/gobasics/internal/config"
	"github.com/sivchari/gobasics/internal/report"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_DefaultProgram(t *testing.T) {
	want := "test\ny is greater or equal\n0\n1\n2\n3\n4\n5\n6\n7\n8\n9\n2 is even\n4 is even\n"

	for _, args := range [][]string{nil, {"run"}} {
		t.Run(strings.Join(append([]string{"root"}, args...), " "), func(t *testing.T) {
			stdout, stderr, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRun_WithConfigAndFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("record:\n  x: 1\n  name: hello\ndata: [6]\n"), 0600))

	stdout, stderr, err := execute(t, "run", "--config", path, "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var summary report.Summary
	require.NoError(t, json.Unmarshal([]byte(stdout), &summary))

	assert.Equal(t, "hello", summary.Label)
	assert.Equal(t, 1, summary.RecordX)
	assert.Equal(t, []int{6}, summary.Evens)
	assert.Equal(t, 7, summary.Calculation.Result)
	assert.Equal(t, "y is greater or equal", summary.Branch)
}

func TestRun_HTMLFormat(t *testing.T) {
	stdout, _, err := execute(t, "run", "--format", "html")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "<!DOCTYPE html>"))
	assert.Contains(t, stdout, "4 is even")
}

func TestRun_OutputFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.txt")

	stdout, _, err := execute(t, "run", "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "test\n"))
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "run", "-v")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "test\n"))
	assert.Contains(t, stderr, "Record created")
}

func TestRun_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--format", "xml")
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestCalc(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"simple", []string{"calc", "1", "2", "3"}, "7\n", false},
		{"negative operands", []string{"calc", "--", "-1", "-2", "-3"}, "5\n", false},
		{"not a number", []string{"calc", "1", "x", "3"}, "", true},
		{"too few args", []string{"calc", "1"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestCompare(t *testing.T) {
	stdout, _, err := execute(t, "compare", "5", "10", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, "y is greater or equal\n0\n1\n", stdout)

	stdout, _, err = execute(t, "compare", "10", "5", "--count", "0", "--label", "z")
	require.NoError(t, err)
	assert.Equal(t, "x is greater\n", stdout)
}

func TestEvens(t *testing.T) {
	stdout, _, err := execute(t, "evens", "1", "2", "3", "4", "5")
	require.NoError(t, err)
	assert.Equal(t, "2 is even\n4 is even\n", stdout)

	_, _, err = execute(t, "evens")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "gobasics version "))
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", ".gobasics.yaml")

	stdout, _, err := execute(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	_, _, err = execute(t, "config", "init", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--config", path, "--force")
	require.NoError(t, err)

	stdout, _, err = execute(t, "config", "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "Configuration is valid\n", stdout)
}

func TestConfigValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("compare:\n  count: -2\n"), 0600))

	_, _, err := execute(t, "config", "validate", path)
	require.ErrorIs(t, err, config.ErrNegativeCount)
}
