package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/mwrona/comprep/internal/installer"
	"github.com/mwrona/comprep/internal/manifest"
	"github.com/mwrona/comprep/internal/project"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the provisioning environment",
		RunE:  runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	ok := true

	// Check the interpreter.
	fmt.Print("Checking python3... ")
	if path, err := exec.LookPath("python3"); err != nil {
		fmt.Println("NOT FOUND")
		fmt.Println("  python3 is required. Install it from https://www.python.org/")
		ok = false
	} else {
		fmt.Printf("found at %s\n", path)
		if v, err := installer.ToolVersion("python3"); err == nil {
			fmt.Printf("  %s\n", v)
		}
	}

	// At least one installer must be available.
	pipOK := checkTool(installer.PipTool)
	uvOK := checkTool(installer.UvTool)
	if !pipOK && !uvOK {
		fmt.Println("  Neither pip nor uv found; provisioning cannot run.")
		ok = false
	}

	// Check the project itself when one is present.
	root, _ := cmd.Flags().GetString("project")
	ctx, err := project.Load(root)
	if err != nil {
		return err
	}
	if ctx.HasManifest() {
		m, err := manifest.Load(ctx.ManifestPath)
		if err != nil {
			fmt.Printf("Manifest %s: PARSE ERROR: %v\n", ctx.ManifestPath, err)
		} else {
			fmt.Printf("Manifest: %s (%d packages)\n", ctx.ManifestPath, len(m.Packages()))
		}
	} else {
		fmt.Println("No manifest found (skipping project checks)")
	}
	if ctx.Venv.Exists() {
		if v, err := ctx.Venv.PythonVersion(); err == nil {
			fmt.Printf("Venv: %s (%s)\n", ctx.Venv.Dir, v)
		} else {
			fmt.Printf("Venv: %s (interpreter not runnable: %v)\n", ctx.Venv.Dir, err)
		}
	} else {
		fmt.Println("No virtual environment (run `comprep provision` to create one)")
	}

	fmt.Print("Checking project dir is writable... ")
	if writable(ctx.Root) {
		fmt.Println("OK")
	} else {
		fmt.Println("READ-ONLY (uv cannot create an environment here)")
		ok = false
	}

	if ok {
		fmt.Println("\nAll checks passed.")
		return nil
	}
	fmt.Println("\nSome checks failed. See above for details.")
	return fmt.Errorf("doctor checks failed")
}

func checkTool(tool string) bool {
	fmt.Printf("Checking %s... ", tool)
	if !installer.Installed(tool) {
		fmt.Println("NOT FOUND")
		return false
	}
	if v, err := installer.ToolVersion(tool); err == nil {
		fmt.Println(v)
	} else {
		fmt.Println("found (version query failed)")
	}
	return true
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".comprep-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
