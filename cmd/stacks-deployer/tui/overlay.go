package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/deploy"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayDetail OverlayType = iota // contract detail with deploy command
	OverlayHelp                      // key bindings
)

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	command     string // text copied by c (detail only)
	body        viewport.Model
	copied      bool
	width       int
	height      int
	active      bool
}

// NewDetailOverlay creates the detail view for rec.
func NewDetailOverlay(rec catalog.Record, ins deploy.Instructions) Overlay {
	o := Overlay{
		overlayType: OverlayDetail,
		title:       rec.Name,
		command:     ins.Command,
		body:        viewport.New(OverlayMinWidth(), 12),
		active:      true,
	}
	o.body.SetContent(detailBody(rec, ins, OverlayMinWidth()))
	return o
}

// NewHelpOverlay creates the key binding reference.
func NewHelpOverlay() Overlay {
	o := Overlay{
		overlayType: OverlayHelp,
		title:       "Keyboard shortcuts",
		body:        viewport.New(OverlayMinWidth(), 12),
		active:      true,
	}
	o.body.SetContent(helpBody())
	return o
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Type returns the overlay kind.
func (o Overlay) Type() OverlayType {
	return o.overlayType
}

// Copied reports whether the "Copied!" acknowledgement is showing.
func (o Overlay) Copied() bool {
	return o.copied
}

// SetCopied shows or hides the "Copied!" acknowledgement.
func (o *Overlay) SetCopied(v bool) {
	o.copied = v
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "q", "enter":
			o.active = false
			return o, func() tea.Msg { return OverlayCloseMsg{Confirmed: km.String() == "enter"} }
		case "?":
			if o.overlayType == OverlayHelp {
				o.active = false
				return o, func() tea.Msg { return OverlayCloseMsg{} }
			}
		case "c":
			if o.overlayType == OverlayDetail && o.command != "" {
				text := o.command
				return o, func() tea.Msg { return CopyRequestMsg{Text: text} }
			}
		}
	}
	var cmd tea.Cmd
	o.body, cmd = o.body.Update(msg)
	return o, cmd
}

// View renders the overlay box. It does not composite over a background;
// that is the caller's responsibility using Composite().
func (o Overlay) View() string {
	if !o.active {
		return ""
	}
	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.body.View())
	b.WriteString("\n\n")
	switch o.overlayType {
	case OverlayDetail:
		if o.copied {
			b.WriteString(CopiedStyle.Render("Copied!"))
		} else {
			b.WriteString(DimStyle.Render("c: copy command  ↑/↓: scroll  Esc: close"))
		}
	case OverlayHelp:
		b.WriteString(DimStyle.Render("Esc or ?: close"))
	}
	return OverlayStyle.Render(b.String())
}

// SetWidth sets the overlay box width and reflows the body.
func (o *Overlay) SetWidth(w int) {
	o.width = w
	inner := w - 6 // border + padding
	if inner < 20 {
		inner = 20
	}
	o.body.Width = inner
}

// SetHeight fits the scrollable body into a terminal of height h.
func (o *Overlay) SetHeight(h int) {
	o.height = h
	body := h - 10 // border, padding, title and footer
	if body < 3 {
		body = 3
	}
	o.body.Height = body
}

// Resize applies the terminal size and re-renders content that depends on
// width.
func (o *Overlay) Resize(termWidth, termHeight int, rec catalog.Record, ins deploy.Instructions) {
	o.SetWidth(OverlayMaxWidth(termWidth))
	o.SetHeight(termHeight)
	if o.overlayType == OverlayDetail {
		o.body.SetContent(detailBody(rec, ins, o.body.Width))
	}
}

func detailBody(rec catalog.Record, ins deploy.Instructions, width int) string {
	meta, _ := catalog.Meta(rec.Category)
	wrap := lipgloss.NewStyle().Width(width)

	var b strings.Builder
	b.WriteString(BadgeStyle(rec.Category).Render(meta.Icon + " " + meta.DisplayName))
	b.WriteString("  " + DimStyle.Render(rec.FileName))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(rec.Description))
	b.WriteString("\n\n")
	b.WriteString(OverlayTitleStyle.Render("Features"))
	b.WriteString("\n")
	for _, f := range rec.Features {
		b.WriteString(SelectedStyle.Render("✓ ") + f + "\n")
	}
	b.WriteString("\n")
	b.WriteString(OverlayTitleStyle.Render("Deploy with Clarinet"))
	b.WriteString("\n")
	b.WriteString(CommandStyle.Render(ins.Command))
	b.WriteString("\n\n")
	b.WriteString(wrap.Render(DimStyle.Render("Source: ")+ins.SourceURL) + "\n")
	b.WriteString(wrap.Render(DimStyle.Render("Docs: ")+ins.DocsURL) + "\n")
	b.WriteString(DimStyle.Render("Network: ") + string(ins.Network) + "\n\n")
	b.WriteString(WarningStyle.Render(wrap.Render("⚠ Before deploying: " + ins.Warning)))
	return b.String()
}

var helpKeys = [][2]string{
	{"↑/↓ j/k", "move"},
	{"Tab ←/→", "switch category"},
	{"/", "search"},
	{"Space", "toggle selection"},
	{"Enter", "contract details"},
	{"c", "clear selection (list) / copy command (details)"},
	{"?", "this help"},
	{"q Ctrl+C", "quit"},
}

func helpBody() string {
	var b strings.Builder
	for _, kv := range helpKeys {
		b.WriteString(StatusBarKeyStyle.UnsetBackground().Render(padRight(kv[0], 10)))
		b.WriteString(" " + kv[1] + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, w int) string {
	if n := ansi.StringWidth(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - len(overlayLines)) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}
		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		left := ansi.Truncate(bgLine, startCol, "")
		if pad := startCol - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if end := startCol + ansi.StringWidth(overlayLine); end < bgWidth {
			right = ansi.TruncateLeft(bgLine, end, "")
		}
		bgLines[row] = left + overlayLine + right
	}

	if len(bgLines) > totalHeight && totalHeight > 0 {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}

// OverlayMinWidth returns a reasonable minimum width for the overlay content.
func OverlayMinWidth() int {
	return 40
}

// OverlayMaxWidth returns a reasonable maximum width for the overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 72 {
		w = 72
	}
	return w
}
