package main

import (
	"fmt"
	"strconv"

	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/deploy"
	"github.com/spf13/cobra"
)

var feeCmd = &cobra.Command{
	Use:   "fee <microstx>",
	Short: "Compute the 2.5% marketplace platform fee for a sale price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid price %q: must be a whole number of micro-STX", args[0])
		}
		res := commands.Fee(price)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Price:    %d µSTX (%s)\n", res.Price, deploy.FormatSTX(res.Price))
		fmt.Fprintf(out, "Fee:      %d µSTX (%s)\n", res.Fee, deploy.FormatSTX(res.Fee))
		fmt.Fprintf(out, "Proceeds: %d µSTX (%s)\n", res.Proceeds, deploy.FormatSTX(res.Proceeds))
		return nil
	},
}
