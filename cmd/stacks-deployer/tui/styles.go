package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/serayd61/stacks-deployer/internal/catalog"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorPeach    = lipgloss.Color(flavor.Peach().Hex)
	colorTeal     = lipgloss.Color(flavor.Teal().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// categoryColors maps catalog color tokens to palette accents.
var categoryColors = map[string]lipgloss.Color{
	"category-nft":     colorMauve,
	"category-token":   colorYellow,
	"category-defi":    colorGreen,
	"category-dao":     colorBlue,
	"category-utility": colorPeach,
}

// accentFor returns the accent color for a category, or Overlay0 if unknown.
func accentFor(c catalog.Category) lipgloss.Color {
	m, ok := catalog.Meta(c)
	if !ok {
		return colorOverlay0
	}
	if col, ok := categoryColors[m.ColorToken]; ok {
		return col
	}
	return colorOverlay0
}

// BadgeStyle renders a category badge in its accent color.
func BadgeStyle(c catalog.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorBase).
		Background(accentFor(c)).
		Padding(0, 1)
}

// Header styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	WalletConnectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	WalletDisconnectedStyle = lipgloss.NewStyle().
				Foreground(colorOverlay0)
)

// Tab bar styles.
var (
	// TabBarStyle is the background strip for the tab bar row.
	TabBarStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Padding(0, 1)

	// InactiveTabStyle is used for non-selected category tabs.
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)
)

// List styles.
var (
	// SelectedStyle is used for checked items.
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// UnselectedStyle is used for unchecked items.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// ContentPaneStyle wraps the main content area.
	ContentPaneStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	// FeatureStyle is used for the feature chips under a record.
	FeatureStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	// DimStyle is used for secondary text.
	DimStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// EmptyTitleStyle is the headline of the empty-result message.
	EmptyTitleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)
)

// Search box styles.
var (
	SearchFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBlue).
				Padding(0, 1)

	SearchBlurredStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSurface1).
				Padding(0, 1)
)

// Banner and stats styles.
var (
	// SelectionBannerStyle highlights the current multi-selection.
	SelectionBannerStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorGreen).
				Padding(0, 1).
				Bold(true)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(colorMauve).
			Bold(true)

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarKeyStyle highlights keyboard shortcuts in the status bar.
	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)

	// StatusErrorStyle is used for transient error notices.
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorSurface0).
				Bold(true)
)

// Overlay styles.
var (
	// OverlayStyle is the border and background for modal overlays.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(1, 2)

	// OverlayTitleStyle is used for the title text in overlays.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	// OverlayButtonActiveStyle is used for the focused button in overlays.
	OverlayButtonActiveStyle = lipgloss.NewStyle().
					Foreground(colorBase).
					Background(colorBlue).
					Padding(0, 2)

	// OverlayButtonInactiveStyle is used for the unfocused button in overlays.
	OverlayButtonInactiveStyle = lipgloss.NewStyle().
					Foreground(colorText).
					Background(colorSurface1).
					Padding(0, 2)

	// CommandStyle renders a shell command inside the detail overlay.
	CommandStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Background(colorBase).
			Padding(0, 1)

	// WarningStyle renders the pre-deploy warning.
	WarningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// CopiedStyle is the transient "Copied!" acknowledgement.
	CopiedStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)
)
