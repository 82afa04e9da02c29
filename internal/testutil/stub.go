package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ToolSet manages fake external tool executables for tests. Stubs live in
// one temp directory that is prepended to PATH, shadowing any real pip/uv
// on the machine.
type ToolSet struct {
	Dir string
}

// NewToolSet creates the stub directory and prepends it to PATH for the
// duration of the test.
func NewToolSet(t *testing.T) *ToolSet {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return &ToolSet{Dir: dir}
}

// Stub installs a fake tool that records each invocation as
// "<cwd>::<args>" in the returned log file and exits with exitCode.
func (s *ToolSet) Stub(t *testing.T, name string, exitCode int) (logPath string) {
	t.Helper()
	logPath = filepath.Join(s.Dir, name+".log")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s::%%s\\n' \"$PWD\" \"$*\" >> %q\nexit %d\n", logPath, exitCode)
	s.StubScript(t, name, script)
	return logPath
}

// StubScript installs a fake tool with the given shell script body.
func (s *ToolSet) StubScript(t *testing.T, name, script string) {
	t.Helper()
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil { //nolint:gosec // test executable
		t.Fatal(err)
	}
}

// Invocations reads the stub log. Returns nil when the tool never ran.
func Invocations(t *testing.T, logPath string) []string {
	t.Helper()
	data, err := os.ReadFile(logPath) //nolint:gosec // test log file
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// WriteProject creates a project directory with a requirements manifest.
func WriteProject(t *testing.T, requirements string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(requirements), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// WriteVenv lays out a minimal virtual environment inside the project dir
// and returns its path.
func WriteVenv(t *testing.T, projectDir string) string {
	t.Helper()
	dir := filepath.Join(projectDir, ".venv")
	if err := os.MkdirAll(filepath.Join(dir, "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bin", "activate"), []byte("# activate\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}
