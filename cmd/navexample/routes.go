package main

import (
	"strings"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRoutesCommand creates the routes command.
func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the demo routes",
		Long:  `Print the route table the demo registers, with parameter slots and the start route.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			routes, err := navigator.Routes()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Pattern", "Parameters", "Start"})

			for _, route := range routes {
				start := ""
				if route.Start {
					start = "yes"
				}
				params := strings.Join(route.Slots, ", ")
				if params == "" {
					params = "-"
				}
				t.AppendRow(table.Row{route.Pattern, params, start})
			}

			t.AppendFooter(table.Row{"", "", len(routes)})
			t.Render()
			return nil
		},
	}
}
