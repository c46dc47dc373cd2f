package main

import (
	"fmt"
	"io"

	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/deploy"
	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	showCopy   bool
	showSource bool
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a contract template and how to deploy it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.Show(cfg, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showSource {
			src, err := commands.TemplateSource(paths.TemplatesDir(), args[0])
			if err != nil {
				return err
			}
			_, err = out.Write(src)
			return err
		}

		r := result.Record
		fmt.Fprintf(out, "%s %s [%s]\n", result.Meta.Icon, r.Name, result.Meta.DisplayName)
		fmt.Fprintf(out, "%s\n\n", r.Description)
		fmt.Fprintln(out, "FEATURES")
		for _, f := range r.Features {
			fmt.Fprintf(out, "  ✓ %s\n", f)
		}
		fmt.Fprintln(out)
		printInstructions(out, result.Instructions, true)

		if showCopy {
			if err := deploy.Copy(result.Instructions.Command); err != nil {
				logger.Warn("clipboard copy failed", zap.Error(err))
				return err
			}
			fmt.Fprintln(out, "Copied deploy command to clipboard.")
		}
		return nil
	},
}

// printInstructions writes the deploy command, source link and, when
// withWarning is set, the pre-deploy warning.
func printInstructions(out io.Writer, ins deploy.Instructions, withWarning bool) {
	fmt.Fprintf(out, "%s (%s)\n", ins.Name, ins.Network)
	fmt.Fprintf(out, "  $ %s\n", ins.Command)
	fmt.Fprintf(out, "  Source: %s\n", ins.SourceURL)
	if withWarning {
		fmt.Fprintf(out, "  Docs:   %s\n", ins.DocsURL)
		fmt.Fprintln(out)
		fmt.Fprintf(out, "⚠️  Before deploying: %s\n", ins.Warning)
	}
	fmt.Fprintln(out)
}

func init() {
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "Copy the deploy command to the clipboard")
	showCmd.Flags().BoolVar(&showSource, "source", false, "Print the Clarity source from the fetched templates")
}
