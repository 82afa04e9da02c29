package installer

import (
	"fmt"
	"os"
)

// PipTool is the manifest installer binary name.
const PipTool = "pip"

// Install runs `pip install -r <manifestPath>` in dir, installing every
// listed package into the currently active interpreter environment. No
// isolation is provided and the manifest content is not validated here;
// both are the installer's contract. The manifest must exist, so a missing
// file fails before the tool is invoked.
func Install(dir, manifestPath string) error {
	if _, err := os.Stat(manifestPath); err != nil {
		return fmt.Errorf("manifest %s: %w", manifestPath, err)
	}
	if err := run(dir, PipTool, "install", "-r", manifestPath); err != nil {
		return fmt.Errorf("%w: pip install -r %s: %w", ErrInstall, manifestPath, err)
	}
	return nil
}
