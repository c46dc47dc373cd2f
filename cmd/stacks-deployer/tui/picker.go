package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/serayd61/stacks-deployer/internal/catalog"
)

// maxFeatureChips is how many features a list row shows before "+N more".
const maxFeatureChips = 3

// rowHeight is the number of lines each record occupies, including the
// blank separator.
const rowHeight = 4

// PickerItem is one row of the record list.
type PickerItem struct {
	Record   catalog.Record
	Selected bool
}

// Picker is the scrolling multi-select record list. It only displays the
// selection; toggles are emitted as ToggleRequestMsg so the root model can
// apply them to its FilterState.
type Picker struct {
	items   []PickerItem
	cursor  int
	height  int // available lines
	width   int
	offset  int // index of the first visible item
	focused bool
}

// NewPicker creates a Picker over the given items.
func NewPicker(items []PickerItem) Picker {
	return Picker{items: items, height: 20, focused: true}
}

// PickerItems builds rows for the visible records under state.
func PickerItems(rs []catalog.Record, state catalog.FilterState) []PickerItem {
	items := make([]PickerItem, len(rs))
	for i, r := range rs {
		items[i] = PickerItem{Record: r, Selected: state.IsSelected(r.ID)}
	}
	return items
}

// SetItems replaces the rows. The cursor stays on the same record when it is
// still visible, otherwise it resets to the top.
func (p *Picker) SetItems(items []PickerItem) {
	current := p.CurrentID()
	p.items = items
	p.cursor = 0
	for i, it := range items {
		if it.Record.ID == current {
			p.cursor = i
			break
		}
	}
	p.clampScroll()
}

// CurrentID returns the id under the cursor, or "" for an empty list.
func (p Picker) CurrentID() string {
	if p.cursor >= 0 && p.cursor < len(p.items) {
		return p.items[p.cursor].Record.ID
	}
	return ""
}

// Len returns the number of rows.
func (p Picker) Len() int {
	return len(p.items)
}

// SetHeight sets the viewport height in lines.
func (p *Picker) SetHeight(h int) {
	p.height = h
	p.clampScroll()
}

// SetWidth sets the available width.
func (p *Picker) SetWidth(w int) {
	p.width = w
}

// SetFocused sets whether this picker currently has keyboard focus.
func (p *Picker) SetFocused(f bool) {
	p.focused = f
}

// Update handles key messages when the picker has focus.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch km.String() {
	case "up", "k":
		p.moveCursor(-1)
	case "down", "j":
		p.moveCursor(+1)
	case "pgup":
		p.moveCursor(-p.visibleItems())
	case "pgdown":
		p.moveCursor(p.visibleItems())
	case "home", "g":
		p.cursor = 0
		p.clampScroll()
	case "end", "G":
		if len(p.items) > 0 {
			p.cursor = len(p.items) - 1
			p.clampScroll()
		}
	case " ", "x":
		if id := p.CurrentID(); id != "" {
			return p, func() tea.Msg { return ToggleRequestMsg{ID: id} }
		}
	case "enter":
		if id := p.CurrentID(); id != "" {
			return p, func() tea.Msg { return DetailRequestMsg{ID: id} }
		}
	}
	return p, nil
}

// View renders the visible rows.
func (p Picker) View() string {
	if len(p.items) == 0 {
		return ContentPaneStyle.Render(
			EmptyTitleStyle.Render("No contracts found") + "\n" +
				DimStyle.Render("Try adjusting your search or filter criteria"))
	}

	var b strings.Builder
	visible := p.visibleItems()
	if p.offset > 0 {
		b.WriteString(DimStyle.Render("  ↑ more") + "\n")
	}
	end := p.offset + visible
	if end > len(p.items) {
		end = len(p.items)
	}
	for i := p.offset; i < end; i++ {
		b.WriteString(p.renderRow(i))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	if end < len(p.items) {
		b.WriteString("\n" + DimStyle.Render("  ↓ more"))
	}
	return ContentPaneStyle.Render(b.String())
}

func (p Picker) renderRow(i int) string {
	it := p.items[i]
	r := it.Record
	onCursor := p.focused && i == p.cursor

	cursor := "  "
	if onCursor {
		cursor = "> "
	}

	checkbox := UnselectedStyle.Render("[ ]")
	if it.Selected {
		checkbox = SelectedStyle.Render("[x]")
	}

	name := r.Name
	if onCursor {
		name = lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(name)
	} else if !p.focused {
		name = DimStyle.Render(name)
	}

	meta, _ := catalog.Meta(r.Category)
	badge := BadgeStyle(r.Category).Render(meta.Icon + " " + r.Category.String())

	indent := "      "
	descWidth := p.width - len(indent) - 2
	desc := r.Description
	if descWidth > 10 {
		desc = ansi.Truncate(desc, descWidth, "…")
	}

	line1 := cursor + checkbox + " " + name + "  " + badge
	line2 := indent + DimStyle.Render(desc)
	line3 := indent + featureChips(r.Features) + "  " + DimStyle.Render(r.FileName)
	return line1 + "\n" + line2 + "\n" + line3
}

// featureChips renders the first few features followed by "+N more".
func featureChips(features []string) string {
	shown := features
	if len(shown) > maxFeatureChips {
		shown = shown[:maxFeatureChips]
	}
	chips := make([]string, 0, len(shown)+1)
	for _, f := range shown {
		chips = append(chips, FeatureStyle.Render(f))
	}
	if extra := len(features) - len(shown); extra > 0 {
		chips = append(chips, DimStyle.Render(fmt.Sprintf("+%d more", extra)))
	}
	return strings.Join(chips, DimStyle.Render(" · "))
}

// --- Internal helpers ---

// visibleItems is how many rows fit, leaving room for scroll indicators.
func (p Picker) visibleItems() int {
	lines := p.height
	if len(p.items)*rowHeight > p.height {
		lines -= 2
	}
	n := (lines + 1) / rowHeight // the last row has no separator
	if n < 1 {
		n = 1
	}
	return n
}

func (p *Picker) moveCursor(delta int) {
	if len(p.items) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
	p.clampScroll()
}

// clampScroll keeps the cursor inside the visible window.
func (p *Picker) clampScroll() {
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	visible := p.visibleItems()
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+visible {
		p.offset = p.cursor - visible + 1
	}
	maxOffset := len(p.items) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
}
