package installer

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// run executes a tool in the given directory, streaming its output through
// unchanged. The call blocks for the tool's full duration; there is no
// timeout or retry.
func run(dir, tool string, args ...string) error {
	cmd := exec.Command(tool, args...) //nolint:gosec // tool names are fixed, args come from the manifest path
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// output executes a tool and returns its stdout without printing it.
func output(dir, tool string, args ...string) (string, error) {
	cmd := exec.Command(tool, args...) //nolint:gosec // tool names are fixed
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s %s: %w: %s", tool, strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}

// Installed reports whether a tool is available on the system PATH.
func Installed(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

// ToolVersion returns the first line of `<tool> --version`.
func ToolVersion(tool string) (string, error) {
	out, err := output(".", tool, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line), nil
}
