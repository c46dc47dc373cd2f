package main

import (
	"fmt"

	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/deploy"
	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy <id>...",
	Short: "Print deploy commands for one or more contracts",
	Long:  "Prints the Clarinet deploy command and source link for each contract, in the order given.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		instructions, err := commands.Deploy(cfg, args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, ins := range instructions {
			printInstructions(out, ins, false)
		}
		fmt.Fprintf(out, "⚠️  %s\n", deploy.Warning)
		return nil
	},
}
