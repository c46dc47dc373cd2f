package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/serayd61/stacks-deployer/internal/catalog"
)

type tab struct {
	category *catalog.Category // nil for "All"
	label    string
}

// TabBar renders the category tabs along the top of the list.
// The first tab is always "All"; the rest follow catalog display order.
// Counts are global and do not change with the active filter.
type TabBar struct {
	tabs   []tab
	active int
	width  int
}

// NewTabBar builds the tab row from per-category counts.
func NewTabBar(counts map[catalog.Category]int) TabBar {
	keys := catalog.Categories()
	tabs := make([]tab, 0, len(keys)+1)
	tabs = append(tabs, tab{label: fmt.Sprintf("All (%d)", catalog.TotalCount(counts))})
	for _, k := range keys {
		c := k
		meta, _ := catalog.Meta(c)
		tabs = append(tabs, tab{
			category: &c,
			label:    fmt.Sprintf("%s %s (%d)", meta.Icon, meta.DisplayName, counts[c]),
		})
	}
	return TabBar{tabs: tabs}
}

// SetWidth sets the available width for rendering.
func (t *TabBar) SetWidth(w int) {
	t.width = w
}

// ActiveCategory returns the category of the active tab, nil for "All".
func (t TabBar) ActiveCategory() *catalog.Category {
	if t.active >= 0 && t.active < len(t.tabs) {
		return t.tabs[t.active].category
	}
	return nil
}

// ActiveLabel returns the label of the active tab.
func (t TabBar) ActiveLabel() string {
	if t.active >= 0 && t.active < len(t.tabs) {
		return t.tabs[t.active].label
	}
	return ""
}

// CycleNext advances to the next tab, wrapping around.
func (t *TabBar) CycleNext() {
	t.active = (t.active + 1) % len(t.tabs)
}

// CyclePrev moves to the previous tab, wrapping around.
func (t *TabBar) CyclePrev() {
	t.active = (t.active - 1 + len(t.tabs)) % len(t.tabs)
}

// Update handles tab navigation keys and emits TabSwitchMsg on change.
func (t TabBar) Update(msg tea.Msg) (TabBar, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	switch km.String() {
	case "tab", "right", "l":
		t.CycleNext()
	case "shift+tab", "left", "h":
		t.CyclePrev()
	default:
		return t, nil
	}
	c := t.ActiveCategory()
	return t, func() tea.Msg {
		return TabSwitchMsg{Category: c}
	}
}

// View renders the tab bar as a single horizontal line.
func (t TabBar) View() string {
	parts := make([]string, 0, len(t.tabs))
	for i, tb := range t.tabs {
		accent := colorBlue
		if tb.category != nil {
			accent = accentFor(*tb.category)
		}
		if i == t.active {
			style := lipgloss.NewStyle().
				Foreground(colorBase).
				Background(accent).
				Padding(0, 1).
				Bold(true)
			parts = append(parts, style.Render(tb.label))
		} else {
			parts = append(parts, InactiveTabStyle.Render(tb.label))
		}
	}
	row := strings.Join(parts, " ")
	return TabBarStyle.Width(t.width).Render(row)
}
