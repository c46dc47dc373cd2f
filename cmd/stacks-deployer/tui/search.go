package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBox is the single-line search input above the record list.
type SearchBox struct {
	input textinput.Model
	width int
}

// NewSearchBox creates an unfocused, empty search box.
func NewSearchBox() SearchBox {
	ti := textinput.New()
	ti.Placeholder = "Search contracts..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Width = 30
	return SearchBox{input: ti}
}

// Focus gives the input the cursor.
func (s *SearchBox) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes the cursor.
func (s *SearchBox) Blur() {
	s.input.Blur()
}

// Focused reports whether the input has the cursor.
func (s SearchBox) Focused() bool {
	return s.input.Focused()
}

// Value returns the current search text.
func (s SearchBox) Value() string {
	return s.input.Value()
}

// Reset clears the search text.
func (s *SearchBox) Reset() {
	s.input.Reset()
}

// SetWidth sets the available width for rendering.
func (s *SearchBox) SetWidth(w int) {
	s.width = w
	inner := w - 4 - len([]rune(s.input.Prompt)) // border + padding
	if inner < 10 {
		inner = 10
	}
	s.input.Width = inner
}

// Update forwards msg to the text input. The root model compares Value()
// before and after to detect edits.
func (s SearchBox) Update(msg tea.Msg) (SearchBox, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search box.
func (s SearchBox) View() string {
	style := SearchBlurredStyle
	if s.input.Focused() {
		style = SearchFocusedStyle
	}
	if s.width > 0 {
		style = style.Width(s.width - 2)
	}
	return style.Render(s.input.View())
}
