package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwrona/comprep/internal/testutil"
)

// run has DisableFlagParsing; besides a leading --project, args pass
// through verbatim. Most tests set the persistent flag directly.

func TestRun_executesInProjectRoot(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")

	root := newRootCmd()
	if err := root.PersistentFlags().Set("project", dir); err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"run", "--", "touch", "marker.txt"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker.txt")); err != nil {
		t.Error("command should run in the project root")
	}
}

func TestRun_exportsVenvEnvironment(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")
	venvDir := testutil.WriteVenv(t, dir)

	root := newRootCmd()
	if err := root.PersistentFlags().Set("project", dir); err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"run", "--", "sh", "-c", `printf '%s\n%s' "$VIRTUAL_ENV" "$PATH" > env.txt`})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "env.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.SplitN(string(data), "\n", 2)
	if lines[0] != venvDir {
		t.Errorf("VIRTUAL_ENV = %q, want %q", lines[0], venvDir)
	}
	if len(lines) < 2 || !strings.HasPrefix(lines[1], filepath.Join(venvDir, "bin")+string(os.PathListSeparator)) {
		t.Errorf("PATH should start with the venv bin dir: %q", lines[1])
	}
}

func TestRun_leadingProjectFlag(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")

	root := newRootCmd()
	root.SetArgs([]string{"run", "--project", dir, "--", "touch", "flagged.txt"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "flagged.txt")); err != nil {
		t.Error("leading --project should select the project root")
	}

	root = newRootCmd()
	root.SetArgs([]string{"run", "--project=" + dir, "--", "touch", "flagged2.txt"})
	if err := root.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "flagged2.txt")); err != nil {
		t.Error("leading --project=dir should select the project root")
	}
}

func TestRun_requiresCommand(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"run", "--"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error with no command")
	}
}

func TestRun_propagatesExitError(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")

	root := newRootCmd()
	if err := root.PersistentFlags().Set("project", dir); err != nil {
		t.Fatal(err)
	}
	root.SetArgs([]string{"run", "--", "sh", "-c", "exit 7"})
	err := root.Execute()
	if err == nil {
		t.Fatal("expected error from failing command")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error should carry the exit status, got %v", err)
	}
	if code := exitErr.ExitCode(); code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}
