package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/installer"
	"github.com/mwrona/comprep/internal/lock"
	"github.com/mwrona/comprep/internal/manifest"
	"github.com/mwrona/comprep/internal/project"
	"github.com/mwrona/comprep/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show environment status",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

type envStatus struct {
	Manifest        bool     `json:"manifest"`
	ManifestError   string   `json:"manifest_error,omitempty"`
	Packages        int      `json:"packages,omitempty"`
	Lock            bool     `json:"lock"`
	LockPackages    int      `json:"lock_packages,omitempty"`
	MissingFromLock []string `json:"missing_from_lock,omitempty"`
	Venv            bool     `json:"venv"`
	Python          string   `json:"python,omitempty"`
	Pip             bool     `json:"pip"`
	Uv              bool     `json:"uv"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("project")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	s := collectStatus(ctx)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	tbl := ui.NewTable(out, "COMPONENT", "STATE", "DETAIL")
	if s.ManifestError != "" {
		tbl.Row("manifest", "error", s.ManifestError)
	} else {
		tbl.Row("manifest", presence(s.Manifest), detailCount(s.Manifest, s.Packages, "packages"))
	}
	lockDetail := detailCount(s.Lock, s.LockPackages, "pinned")
	if len(s.MissingFromLock) > 0 {
		lockDetail += " (missing: " + strings.Join(s.MissingFromLock, ", ") + ")"
	}
	tbl.Row("lock", presence(s.Lock), lockDetail)
	tbl.Row("venv", presence(s.Venv), s.Python)
	tbl.Row("pip", presence(s.Pip), "")
	tbl.Row("uv", presence(s.Uv), "")
	return tbl.Flush()
}

func collectStatus(ctx *project.Context) envStatus {
	s := envStatus{
		Pip: installer.Installed(installer.PipTool),
		Uv:  installer.Installed(installer.UvTool),
	}

	var mf *manifest.File
	if ctx.HasManifest() {
		// A manifest that exists but does not parse is present with an
		// error, not missing.
		s.Manifest = true
		if m, err := manifest.Load(ctx.ManifestPath); err != nil {
			s.ManifestError = err.Error()
		} else {
			s.Packages = len(m.Packages())
			mf = m
		}
	}

	if ctx.HasLock() {
		if lf, err := lock.Load(ctx.LockPath); err == nil {
			s.Lock = true
			s.LockPackages = len(lf.Packages)
			if mf != nil {
				s.MissingFromLock = lf.MissingFrom(mf)
			}
		}
	}

	if ctx.Venv.Exists() {
		s.Venv = true
		if v, err := ctx.Venv.PythonVersion(); err == nil {
			s.Python = v
		}
	}

	return s
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}

func detailCount(ok bool, n int, label string) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d %s", n, label)
}
