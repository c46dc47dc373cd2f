package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/serayd61/stacks-deployer/cmd/stacks-deployer/tui"
	"github.com/serayd61/stacks-deployer/internal/commands"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the contract catalog interactively",
	Long: "Opens the interactive catalog. Filter by category with Tab, search with /, " +
		"select contracts with Space. Deploy commands for the selection are printed on exit.",
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// TTY guard: fall back to list when stdin is not a terminal
	// (piping, CI, scripts, etc.)
	if !term.IsTerminal(os.Stdin.Fd()) {
		return listCmd.RunE(cmd, args)
	}

	model := tui.NewModel(tui.Options{
		Config: cfg,
		Wallet: newSession(),
		Logger: logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	selected := finalModel.(tui.Model).Result()
	logger.Info("browse finished", zap.Int("selected", len(selected)))
	if len(selected) == 0 {
		return nil
	}

	instructions, err := commands.Deploy(cfg, selected)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Selected %d contract(s):\n\n", len(instructions))
	for _, ins := range instructions {
		printInstructions(out, ins, false)
	}
	return nil
}
