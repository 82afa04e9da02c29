package installer

import (
	"fmt"
	"os"
)

// UvTool is the unified environment manager binary name.
const UvTool = "uv"

// Sync runs `uv sync` in dir: the tool creates the virtual environment if
// absent, resolves the manifest/lock pair, and installs into the
// environment. Rerunning converges to the same installed set; that
// idempotence is the tool's guarantee, not ours.
//
// An unwritable project directory is rejected before the tool runs, so a
// failed creation never leaves a partial environment behind.
func Sync(dir string) error {
	if err := ensureWritable(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrEnvCreate, err)
	}
	if err := run(dir, UvTool, "sync"); err != nil {
		return fmt.Errorf("%w: uv sync: %w", ErrSync, err)
	}
	return nil
}

// ensureWritable verifies dir accepts new files by creating and removing a
// probe file.
func ensureWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".comprep-probe-*")
	if err != nil {
		return fmt.Errorf("target directory %s is not writable: %w", dir, err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
