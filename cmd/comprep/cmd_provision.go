package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/installer"
	"github.com/mwrona/comprep/internal/project"
)

func newProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Install project dependencies with pip or uv",
		Long: `Provision the development environment using one of two strategies:

  pip  installs the manifest's packages into the active interpreter
       environment, with no isolation.
  uv   creates the project virtual environment if needed and syncs the
       manifest/lock pair into it.

Resolution, registry access and retry behavior all belong to the chosen
tool; its output streams through unchanged and its exit code is surfaced
as-is.`,
		RunE: runProvision,
	}
	cmd.Flags().String("installer", "", "Installer to use: pip or uv (default from .comprep.yaml, else uv)")
	cmd.Flags().String("manifest", "", "Requirements file for the pip installer")
	return cmd
}

func runProvision(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	instFlag, _ := cmd.Flags().GetString("installer")
	manifestFlag, _ := cmd.Flags().GetString("manifest")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	inst, err := ctx.EffectiveInstaller(instFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch inst {
	case project.InstallerPip:
		manifestPath := ctx.ManifestPath
		if manifestFlag != "" {
			manifestPath = manifestFlag
			if !filepath.IsAbs(manifestPath) {
				manifestPath = filepath.Join(ctx.Root, manifestPath)
			}
		}
		_, _ = fmt.Fprintf(out, "Installing from %s with pip ...\n", manifestPath)
		if err := installer.Install(ctx.Root, manifestPath); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Install complete.")

	case project.InstallerUv:
		if manifestFlag != "" {
			return fmt.Errorf("--manifest applies to the pip installer only")
		}
		_, _ = fmt.Fprintln(out, "Syncing environment with uv ...")
		if err := installer.Sync(ctx.Root); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Sync complete.")
		_, _ = fmt.Fprintf(out, "Activate with:\n  source %s\n", ctx.Venv.ActivatePath())
	}

	return nil
}
