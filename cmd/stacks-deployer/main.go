package main

import (
	"fmt"
	"os"

	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/logging"
	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

var (
	verbose    bool
	configPath string

	cfg    = config.Default()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "stacks-deployer",
	Short: "Browse and deploy Clarity smart contract templates",
	Long: "stacks-deployer is a catalog of production-ready Clarity smart contracts for the Stacks blockchain. " +
		"Filter by category, search, select templates and get the Clarinet commands to deploy them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configFile())
		if err != nil {
			return err
		}
		cfg = loaded

		l, err := logging.New(paths.LogFile(), cfg.LogLevel, verbose)
		if err != nil {
			// Logging is best effort; the commands work without it.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			l = zap.NewNop()
		}
		logger = l
		logger.Debug("command started",
			zap.String("command", cmd.CommandPath()),
			zap.String("network", string(cfg.Network)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: browse when interactive, list otherwise
		return runBrowse(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stacks-deployer %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.stacks-deployer/config.yaml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deployCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
