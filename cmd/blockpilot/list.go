package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockpilot/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Long:  `Shows the registered game modes. Their IDs double as scoreboard names.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  ID\tTitle")
		for _, g := range registry.List() {
			fmt.Fprintf(w, "  %s\t%s\n", g.ID, g.Title)
		}
		return w.Flush()
	},
}
