package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/project"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the virtual environment (destructive, requires --force)",
		RunE:  runClean,
	}
	cmd.Flags().Bool("force", false, "Required to confirm destructive operation")
	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	force, _ := cmd.Flags().GetBool("force")

	if !force {
		return fmt.Errorf("clean is destructive; pass --force to confirm")
	}

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	if _, err := os.Stat(ctx.Venv.Dir); os.IsNotExist(err) {
		return fmt.Errorf("no virtual environment at %s", ctx.Venv.Dir)
	}
	// Only ever delete something that looks like a virtual environment.
	if !ctx.Venv.Exists() {
		return fmt.Errorf("refusing to remove %s: no pyvenv.cfg found (not a virtual environment)", ctx.Venv.Dir)
	}

	if err := os.RemoveAll(ctx.Venv.Dir); err != nil {
		return fmt.Errorf("removing virtual environment: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Virtual environment removed: %s\n", ctx.Venv.Dir)
	return nil
}
