package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/project"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [--project dir] -- <command...>",
		Short: "Run a command with the virtual environment on PATH",
		Long: `Run a command with the project's virtual environment bin directory
prepended to PATH and VIRTUAL_ENV set.

Everything after run is passed to the command verbatim, including flags;
only a leading --project is recognized.`,
		DisableFlagParsing: true,
		RunE:               runRun,
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Root().Flags().GetString("project")

	// Flag parsing is disabled, so pick up a leading --project by hand.
	for len(args) > 0 {
		if v, ok := strings.CutPrefix(args[0], "--project="); ok {
			root = v
			args = args[1:]
			continue
		}
		if args[0] == "--project" && len(args) > 1 {
			root = args[1]
			args = args[2:]
			continue
		}
		break
	}

	if len(args) == 0 {
		return fmt.Errorf("usage: comprep run -- <command...>")
	}

	// Strip leading "--" if present.
	if args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no command specified after --")
	}

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	c := exec.Command(args[0], args[1:]...) //nolint:gosec // command comes from the operator's own arguments
	c.Dir = ctx.Root
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	c.Env = os.Environ()
	if ctx.Venv.Exists() {
		// Same resolution an activated shell would get, scoped to this one
		// child process.
		c.Env = append(c.Env,
			"PATH="+ctx.Venv.BinDir()+string(os.PathListSeparator)+os.Getenv("PATH"),
			"VIRTUAL_ENV="+ctx.Venv.Dir,
		)
	}
	return c.Run()
}
