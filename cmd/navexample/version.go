package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display navexample version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "navexample v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Screen navigation demo built with Go, SDL2 and Bubble Tea")
		},
	}
}
