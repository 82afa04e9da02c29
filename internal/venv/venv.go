package venv

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Env points at a virtual environment directory. The environment itself is
// created and destroyed by external tools or the operator; Env only
// inspects it.
type Env struct {
	Dir string
}

// At returns an Env for the given directory.
func At(dir string) Env {
	return Env{Dir: dir}
}

// Exists reports whether the directory holds a virtual environment, which
// is marked by a pyvenv.cfg file at its root.
func (e Env) Exists() bool {
	info, err := os.Stat(filepath.Join(e.Dir, "pyvenv.cfg"))
	return err == nil && !info.IsDir()
}

// BinDir returns the environment's executable directory.
func (e Env) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Dir, "Scripts")
	}
	return filepath.Join(e.Dir, "bin")
}

// ActivatePath returns the path of the shell activation script. Sourcing
// it is a session-scoped operation the operator performs; this tool only
// reports the path.
func (e Env) ActivatePath() string {
	return filepath.Join(e.BinDir(), "activate")
}

// Python returns the path of the environment's interpreter.
func (e Env) Python() string {
	name := "python"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(e.BinDir(), name)
}

// PythonVersion runs the environment's interpreter to report its version.
func (e Env) PythonVersion() (string, error) {
	cmd := exec.Command(e.Python(), "--version") //nolint:gosec // interpreter path derives from the venv dir
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("querying interpreter version: %w", err)
	}
	return strings.TrimSpace(out.String()), nil
}
