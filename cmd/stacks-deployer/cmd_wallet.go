package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/paths"
	"github.com/serayd61/stacks-deployer/internal/wallet"
	"github.com/spf13/cobra"
)

var (
	walletAddress string
	walletNetwork string
	walletYes     bool
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage the connected Stacks wallet",
}

var walletStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the connected wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res := commands.WalletStatus(newSession(), cfg.Network)
		out := cmd.OutOrStdout()
		if res.Address == "" {
			fmt.Fprintf(out, "No wallet connected (%s).\n", res.Network)
			fmt.Fprintln(out, "Run 'stacks-deployer wallet connect' to connect one.")
			return nil
		}
		fmt.Fprintf(out, "Connected: %s (%s)\n", res.Short, res.Network)
		fmt.Fprintf(out, "Address:   %s\n", res.Address)
		return nil
	},
}

var walletConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect a wallet address",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		network := cfg.Network
		if walletNetwork != "" {
			n, err := config.ParseNetwork(walletNetwork)
			if err != nil {
				return err
			}
			network = n
		}

		address := walletAddress
		if address == "" {
			var err error
			network, address, err = promptWalletAddress(network)
			if err != nil {
				return err
			}
		}

		session := wallet.NewFileSession(paths.SessionFile(), network, logger)
		if err := commands.WalletConnect(session, network, address); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Connected %s on %s.\n", wallet.TruncateAddress(address), network)
		if network != cfg.Network {
			fmt.Fprintf(cmd.OutOrStdout(), "Note: the configured network is %s; set %s=%s to use this address.\n",
				cfg.Network, config.NetworkEnv, network)
		}
		return nil
	},
}

var walletDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Disconnect the current wallet",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := newSession()
		if !session.IsSignedIn() {
			fmt.Fprintln(cmd.OutOrStdout(), "No wallet connected.")
			return nil
		}
		if !walletYes {
			confirmed := false
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Disconnect wallet?").
						Description("The stored session will be removed.").
						Value(&confirmed),
				),
			).Run()
			if err != nil || !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}
		commands.WalletDisconnect(session)
		fmt.Fprintln(cmd.OutOrStdout(), "Wallet disconnected.")
		return nil
	},
}

// promptWalletAddress asks for the network and an address valid on it.
func promptWalletAddress(network config.Network) (config.Network, string, error) {
	selected := string(network)
	var address string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Network").
				Options(
					huh.NewOption("Testnet", string(config.NetworkTestnet)),
					huh.NewOption("Mainnet", string(config.NetworkMainnet)),
				).
				Value(&selected),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("STX address").
				Placeholder("ST... or SP...").
				Value(&address).
				Validate(func(s string) error {
					return wallet.ValidateAddress(config.Network(selected), s)
				}),
		),
	).Run()
	if err != nil {
		return "", "", err
	}
	return config.Network(selected), address, nil
}

// newSession opens the wallet session for the configured network.
func newSession() *wallet.FileSession {
	return wallet.NewFileSession(paths.SessionFile(), cfg.Network, logger)
}

func init() {
	walletConnectCmd.Flags().StringVar(&walletAddress, "address", "", "STX address to connect (prompts when empty)")
	walletConnectCmd.Flags().StringVar(&walletNetwork, "network", "", "mainnet or testnet (default: configured network)")
	walletDisconnectCmd.Flags().BoolVarP(&walletYes, "yes", "y", false, "Skip the confirmation prompt")

	walletCmd.AddCommand(walletStatusCmd)
	walletCmd.AddCommand(walletConnectCmd)
	walletCmd.AddCommand(walletDisconnectCmd)
}
