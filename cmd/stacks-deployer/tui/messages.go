package tui

import "github.com/serayd61/stacks-deployer/internal/catalog"

// FocusZone identifies which component currently has keyboard focus.
type FocusZone int

const (
	FocusList   FocusZone = iota
	FocusSearch           // search input captures keystrokes
)

// --- Inter-component messages ---

// TabSwitchMsg is sent when the user switches category tab. A nil Category
// is the "All" tab.
type TabSwitchMsg struct{ Category *catalog.Category }

// ToggleRequestMsg asks the root model to toggle id in the selection set.
type ToggleRequestMsg struct{ ID string }

// DetailRequestMsg asks the root model to open the detail overlay for id.
type DetailRequestMsg struct{ ID string }

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Confirmed bool // true = OK, false = Cancel/Esc
}

// CopyRequestMsg is emitted by the detail overlay when the user presses c.
type CopyRequestMsg struct{ Text string }

// CopiedMsg reports the result of a clipboard write.
type CopiedMsg struct{ Err error }

// copiedResetMsg clears the "Copied!" acknowledgement. Seq guards against a
// stale tick clearing a newer acknowledgement.
type copiedResetMsg struct{ Seq int }
