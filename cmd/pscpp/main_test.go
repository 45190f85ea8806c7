package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectfile = `version: "1"
frontend:
  cmd: ["sh", "-c", "cat >/dev/null; cat response.json"]
`

const response = `{"declarations":[{"kind":"code","text":"// header"},{"kind":"end-of-header"},{"kind":"code","text":"// impl"}],"externs":{}}`

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"pscpp.yaml":    projectfile,
		"response.json": response,
		"src/Main.purs": "module Main where\n",
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return dir
}

func TestRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		setup        func(dir string)
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"pscpp", "version"},
			expectedExit: 0,
		},
		{
			name:         "build all modules",
			args:         []string{"pscpp", "build"},
			expectedExit: 0,
		},
		{
			name:         "build selected module with flags",
			args:         []string{"pscpp", "build", "--force", "--no-banner", "-j", "2", "Main"},
			expectedExit: 0,
		},
		{
			name:         "unknown module",
			args:         []string{"pscpp", "build", "Data.*"},
			expectedExit: 1,
		},
		{
			name: "frontend failure",
			args: []string{"pscpp", "build"},
			setup: func(dir string) {
				_ = os.Remove(filepath.Join(dir, "response.json"))
			},
			expectedExit: 1,
		},
		{
			name:         "missing explicit configuration",
			args:         []string{"pscpp", "-c", "missing.yaml", "build"},
			expectedExit: 1,
		},
		{
			name:         "clean",
			args:         []string{"pscpp", "clean"},
			expectedExit: 0,
		},
		{
			name:         "runtime verify before build",
			args:         []string{"pscpp", "runtime", "verify"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"pscpp", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupProject(t)
			if tt.setup != nil {
				tt.setup(dir)
			}
			t.Chdir(dir)

			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestRun_BuildThenVerify(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	dir := setupProject(t)
	t.Chdir(dir)

	os.Args = []string{"pscpp", "build"}
	require.Equal(t, 0, run())
	assert.FileExists(t, filepath.Join(dir, "output", "Main", "Main.cc"))

	os.Args = []string{"pscpp", "runtime", "verify"}
	assert.Equal(t, 0, run())
}
