package main

import (
	"fmt"

	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories with their contract counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		total := 0
		for _, row := range commands.Categories() {
			fmt.Fprintf(out, "%s %-8s %-8s %d\n", row.Meta.Icon, row.Meta.DisplayName, row.Category, row.Count)
			total += row.Count
		}
		fmt.Fprintf(out, "All (%d)\n", total)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, st := range commands.Stats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", st.Value, st.Label)
		}
		return nil
	},
}
