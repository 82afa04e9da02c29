package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mwrona/comprep/internal/testutil"
)

func TestClean_requiresForce(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")
	testutil.WriteVenv(t, dir)

	root := newRootCmd()
	root.SetArgs([]string{"--project", dir, "clean"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error without --force")
	}
	if _, err := os.Stat(filepath.Join(dir, ".venv")); err != nil {
		t.Error("venv should still exist")
	}
}

func TestClean_removesVenv(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")
	venvDir := testutil.WriteVenv(t, dir)

	root := newRootCmd()
	root.SetArgs([]string{"--project", dir, "clean", "--force"})
	if err := root.Execute(); err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if _, err := os.Stat(venvDir); !os.IsNotExist(err) {
		t.Error("venv should be removed")
	}
	// The rest of the project is untouched.
	if _, err := os.Stat(filepath.Join(dir, "requirements.txt")); err != nil {
		t.Error("manifest should survive clean")
	}
}

func TestClean_refusesNonVenvDir(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")
	// A directory at the venv path that is not a virtual environment.
	if err := os.MkdirAll(filepath.Join(dir, ".venv", "data"), 0755); err != nil {
		t.Fatal(err)
	}

	root := newRootCmd()
	root.SetArgs([]string{"--project", dir, "clean", "--force"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected refusal for non-venv directory")
	}
	if _, err := os.Stat(filepath.Join(dir, ".venv", "data")); err != nil {
		t.Error("directory should not be removed")
	}
}

func TestClean_missingVenv(t *testing.T) {
	dir := testutil.WriteProject(t, "pandas\n")

	root := newRootCmd()
	root.SetArgs([]string{"--project", dir, "clean", "--force"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error when nothing to clean")
	}
}
