package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/spf13/cobra"
)

var (
	configInitNetwork string
	configInitForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stacks-deployer configuration",
	Long:  "Commands for showing and creating ~/.stacks-deployer/config.yaml.",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", configFile())
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile()
		newCfg := config.Default()
		if configInitNetwork != "" {
			n, err := config.ParseNetwork(configInitNetwork)
			if err != nil {
				return err
			}
			newCfg.Network = n
		}

		overwrite := configInitForce
		err := commands.ConfigInit(path, newCfg, overwrite)
		if errors.Is(err, commands.ErrConfigExists) {
			err = huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
						Value(&overwrite),
				),
			).Run()
			if err != nil || !overwrite {
				fmt.Fprintln(cmd.OutOrStdout(), "Kept existing config.")
				return nil
			}
			err = commands.ConfigInit(path, newCfg, true)
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (network: %s).\n", path, newCfg.Network)
		return nil
	},
}

func configFile() string {
	if configPath != "" {
		return configPath
	}
	return paths.ConfigFile()
}

func init() {
	configInitCmd.Flags().StringVar(&configInitNetwork, "network", "", "mainnet or testnet (default testnet)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config without asking")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
