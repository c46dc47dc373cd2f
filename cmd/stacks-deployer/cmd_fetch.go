package main

import (
	"fmt"

	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchDir string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download or update the Clarity template sources",
	Long:  "Clones the template repository into ~/.stacks-deployer/templates, or fast-forwards an existing checkout.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := fetchDir
		if dir == "" {
			dir = paths.TemplatesDir()
		}
		result, err := commands.FetchTemplates(cfg.RepoURL, dir)
		if err != nil {
			logger.Error("template fetch failed", zap.String("repo", cfg.RepoURL), zap.Error(err))
			return err
		}
		logger.Info("templates fetched",
			zap.String("dir", result.Dir),
			zap.String("revision", result.Revision),
			zap.Bool("cloned", result.Cloned))

		verb := "Updated"
		if result.Cloned {
			verb = "Cloned"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s templates at %s (%s)\n", verb, result.Dir, result.Revision)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchDir, "dir", "", "Checkout directory (default ~/.stacks-deployer/templates)")
}
