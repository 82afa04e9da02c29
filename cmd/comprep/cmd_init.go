package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mwrona/comprep/internal/manifest"
	"github.com/mwrona/comprep/internal/project"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new project interactively or from a requirements file",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
	cmd.Flags().String("from", "", "Import an existing requirements file")
	cmd.Flags().Bool("force", false, "Overwrite an existing project")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]
	root, _ := cmd.Flags().GetString("project")
	from, _ := cmd.Flags().GetString("from")
	force, _ := cmd.Flags().GetBool("force")

	if filepath.IsAbs(name) || strings.Contains(filepath.Clean(name), "..") {
		return fmt.Errorf("invalid project name %q: must be a simple directory name (no absolute paths or ..)", name)
	}

	projDir := filepath.Join(root, name)
	if _, err := os.Stat(projDir); err == nil && !force {
		return fmt.Errorf("project %q already exists (use --force to overwrite)", name)
	}

	// Build manifest content before creating the directory, so an aborted
	// interactive session leaves nothing behind.
	var data []byte
	switch {
	case from != "":
		src, err := os.ReadFile(from) //nolint:gosec // user-provided --from path
		if err != nil {
			return fmt.Errorf("reading --from source: %w", err)
		}
		if _, err := manifest.Parse(src); err != nil {
			return fmt.Errorf("invalid manifest from %s: %w", from, err)
		}
		data = src
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("interactive init requires a TTY; use --from to import a requirements file")
		}
		lines, err := interactiveAddPackages(nil)
		if err != nil {
			return fmt.Errorf("interactive setup: %w", err)
		}
		data = []byte(strings.Join(lines, "\n") + "\n")
	}

	if err := os.MkdirAll(projDir, 0755); err != nil { //nolint:gosec // project dir needs to be world-readable
		return fmt.Errorf("creating project directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projDir, project.DefaultManifest), data, 0644); err != nil { //nolint:gosec // manifest needs to be readable
		return fmt.Errorf("writing manifest: %w", err)
	}
	cfg := fmt.Sprintf("installer: uv\nmanifest: %s\nvenv_dir: %s\n", project.DefaultManifest, project.DefaultVenvDir)
	if err := os.WriteFile(filepath.Join(projDir, project.ConfigFile), []byte(cfg), 0644); err != nil { //nolint:gosec // config needs to be readable
		return fmt.Errorf("writing %s: %w", project.ConfigFile, err)
	}
	gitignore := project.DefaultVenvDir + "/\n"
	if err := os.WriteFile(filepath.Join(projDir, ".gitignore"), []byte(gitignore), 0644); err != nil { //nolint:gosec // .gitignore needs to be readable
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Project %q created at %s\n", name, projDir)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Next: comprep provision")
	return nil
}
