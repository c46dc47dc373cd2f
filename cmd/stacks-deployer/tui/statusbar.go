package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/serayd61/stacks-deployer/internal/catalog"
)

// StatusBar renders the bottom row with the visible count, any transient
// notice and keyboard shortcuts.
type StatusBar struct {
	visible int
	total   int
	tab     string
	notice  string
	isError bool
	width   int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the counts shown on the left.
func (s *StatusBar) Update(visible, total int, tab string) {
	s.visible = visible
	s.total = total
	s.tab = tab
}

// SetNotice shows a transient message; an empty string clears it.
func (s *StatusBar) SetNotice(text string, isError bool) {
	s.notice = text
	s.isError = isError
}

// View renders the status bar.
func (s StatusBar) View() string {
	leftPart := fmt.Sprintf("%d/%d contracts · %s", s.visible, s.total, s.tab)
	if s.notice != "" {
		if s.isError {
			leftPart += " · " + StatusErrorStyle.Render(s.notice)
		} else {
			leftPart += " · " + s.notice
		}
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("Space") + ": select",
		StatusBarKeyStyle.Render("Enter") + ": details",
		StatusBarKeyStyle.Render("/") + ": search",
		StatusBarKeyStyle.Render("?") + ": help",
	}
	rightPart := strings.Join(shortcuts, " · ")

	gap := s.width - 2 - ansi.StringWidth(leftPart) - ansi.StringWidth(rightPart)
	if gap < 1 {
		gap = 1
	}
	return StatusBarStyle.Width(s.width).Render(leftPart + strings.Repeat(" ", gap) + rightPart)
}

// SelectionBanner renders "N contract(s) selected · c: clear selection", or
// "" when nothing is selected.
func SelectionBanner(n int) string {
	if n == 0 {
		return ""
	}
	return SelectionBannerStyle.Render(fmt.Sprintf("%d contract(s) selected · c: clear selection", n))
}

// StatsRow renders the headline figures on one line.
func StatsRow(stats []catalog.Stat) string {
	parts := make([]string, 0, len(stats))
	for _, st := range stats {
		parts = append(parts, StatValueStyle.Render(st.Value)+" "+StatLabelStyle.Render(st.Label))
	}
	return strings.Join(parts, DimStyle.Render("  │  "))
}

// Header renders the title row with the wallet indicator on the right. The
// contract count lives in the stats row below it.
func Header(walletAddr string, width int) string {
	left := TitleStyle.Render("Stacks Contract Deployer") + "  " +
		SubtitleStyle.Render("Clarity templates for Stacks")

	var right string
	if walletAddr != "" {
		right = WalletConnectedStyle.Render("● " + walletAddr)
	} else {
		right = WalletDisconnectedStyle.Render("○ Connect wallet")
	}

	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right) - 2
	if gap < 1 {
		gap = 1
	}
	return ContentPaneStyle.Render(left + strings.Repeat(" ", gap) + right)
}
