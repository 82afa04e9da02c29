package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comprep",
		Short:   "Environment provisioning and report tooling for compression reports",
		Version: version,
	}

	cmd.PersistentFlags().String("project", ".", "Project directory")

	cmd.AddCommand(
		newInitCmd(),
		newProvisionCmd(),
		newActivateCmd(),
		newAddCmd(),
		newStatusCmd(),
		newDoctorCmd(),
		newRunCmd(),
		newCleanCmd(),
		newGenerateCmd(),
		newReportCmd(),
	)

	return cmd
}
