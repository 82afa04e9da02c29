package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/project"
)

func newActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate",
		Short: "Print the shell line that activates the virtual environment",
		Long: `Print the source line for the environment's activation script.

Activation mutates the invoking shell and lasts until the shell exits or
deactivates, so it cannot be performed by this process. Evaluate the output
instead:

  eval "$(comprep activate)"`,
		RunE: runActivate,
	}
}

func runActivate(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	if !ctx.Venv.Exists() {
		return fmt.Errorf("no virtual environment at %s (run `comprep provision` first)", ctx.Venv.Dir)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "source %s\n", ctx.Venv.ActivatePath())
	return nil
}
