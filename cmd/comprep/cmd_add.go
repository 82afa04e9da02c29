package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mwrona/comprep/internal/manifest"
	"github.com/mwrona/comprep/internal/project"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [requirement...]",
		Short: "Add package requirements to the manifest",
		Long: `Append requirements to the project manifest. With no arguments, packages
are collected interactively. The manifest is only edited, never installed;
run ` + "`comprep provision`" + ` afterwards.`,
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	root, _ := cmd.Flags().GetString("project")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}

	existing := make(map[string]bool)
	if ctx.HasManifest() {
		m, err := manifest.Load(ctx.ManifestPath)
		if err != nil {
			return err
		}
		for _, r := range m.Packages() {
			existing[manifest.Normalize(r.Name)] = true
		}
	}

	var lines []string
	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no requirements given and no TTY for interactive entry")
		}
		lines, err = interactiveAddPackages(existing)
		if err != nil {
			return err
		}
	} else {
		for _, a := range args {
			a = strings.TrimSpace(a)
			req, err := manifest.ParseLine(a)
			if err != nil {
				return err
			}
			if !req.IsPackage() {
				return fmt.Errorf("%q is not a package requirement", a)
			}
			key := manifest.Normalize(req.Name)
			if existing[key] {
				return fmt.Errorf("package %q is already in the manifest", req.Name)
			}
			existing[key] = true
			lines = append(lines, a)
		}
	}

	if len(lines) == 0 {
		return fmt.Errorf("nothing to add")
	}
	if err := manifest.Append(ctx.ManifestPath, lines); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, l := range lines {
		_, _ = fmt.Fprintf(out, "Added %s\n", l)
	}
	_, _ = fmt.Fprintln(out, "Run `comprep provision` to install.")
	return nil
}
