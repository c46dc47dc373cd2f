package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/deploy"
	"github.com/serayd61/stacks-deployer/internal/logging"
	"github.com/serayd61/stacks-deployer/internal/wallet"
	"go.uber.org/zap"
)

// CopiedDuration is how long the "Copied!" acknowledgement stays visible.
const CopiedDuration = 2 * time.Second

// Options configures a browse session.
type Options struct {
	Config config.Config
	Wallet wallet.Adapter     // may be nil
	Copy   func(string) error // defaults to deploy.Copy
	Logger *zap.Logger        // may be nil
}

// Model is the root bubbletea model that composes the browse screen.
type Model struct {
	records []catalog.Record
	counts  map[catalog.Category]int
	stats   []catalog.Stat
	state   catalog.FilterState

	cfg    config.Config
	copyFn func(string) error
	logger *zap.Logger

	walletAddr string

	tabBar    TabBar
	search    SearchBox
	picker    Picker
	statusBar StatusBar
	overlay   Overlay
	detailRec catalog.Record // record shown by the detail overlay
	focusZone FocusZone
	copySeq   int

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel creates the browse model over the compiled-in catalog.
func NewModel(opts Options) Model {
	records := catalog.Records()
	counts := catalog.CategoryCounts(records, catalog.Categories())
	state := catalog.NewFilterState()

	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = deploy.Copy
	}

	m := Model{
		records:   records,
		counts:    counts,
		stats:     catalog.Summary(records),
		state:     state,
		cfg:       opts.Config,
		copyFn:    copyFn,
		logger:    logging.OrNop(opts.Logger),
		tabBar:    NewTabBar(counts),
		search:    NewSearchBox(),
		picker:    NewPicker(nil),
		statusBar: NewStatusBar(),
		focusZone: FocusList,
	}
	if opts.Wallet != nil {
		if addr, ok := opts.Wallet.Address(); ok {
			m.walletAddr = wallet.TruncateAddress(addr)
		}
	}
	m.refresh()
	return m
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the current filter state.
func (m Model) State() catalog.FilterState {
	return m.state
}

// Result returns the ids selected when the program exited, sorted.
func (m Model) Result() []string {
	return m.state.SelectedIDs()
}

// Counts returns the global per-category badge counts.
func (m Model) Counts() map[catalog.Category]int {
	return m.counts
}

// Visible returns the records currently shown in the list.
func (m Model) Visible() []catalog.Record {
	return catalog.FilteredRecords(m.records, m.state)
}

// Update satisfies tea.Model. Routes messages to the correct child component.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case TabSwitchMsg:
		m.state = catalog.WithCategory(m.state, msg.Category)
		m.refresh()
		return m, nil

	case ToggleRequestMsg:
		m.state = catalog.ToggleSelection(m.state, msg.ID)
		m.refresh()
		return m, nil

	case DetailRequestMsg:
		return m.openDetail(msg.ID), nil

	case CopyRequestMsg:
		return m, m.copyCmd(msg.Text)

	case CopiedMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard copy failed", zap.Error(msg.Err))
			m.statusBar.SetNotice("copy failed: "+msg.Err.Error(), true)
			return m, nil
		}
		m.copySeq++
		m.overlay.SetCopied(true)
		seq := m.copySeq
		return m, tea.Tick(CopiedDuration, func(time.Time) tea.Msg {
			return copiedResetMsg{Seq: seq}
		})

	case copiedResetMsg:
		if msg.Seq == m.copySeq {
			m.overlay.SetCopied(false)
		}
		return m, nil

	case OverlayCloseMsg:
		return m, nil
	}

	km, isKey := msg.(tea.KeyMsg)
	if isKey && km.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	if m.focusZone == FocusSearch {
		return m.updateSearch(msg)
	}

	if isKey {
		switch km.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "/":
			m.focusZone = FocusSearch
			m.picker.SetFocused(false)
			return m, m.search.Focus()
		case "?":
			m.overlay = NewHelpOverlay()
			m.overlay.SetWidth(OverlayMaxWidth(m.width))
			m.overlay.SetHeight(m.height)
			return m, nil
		case "c":
			if m.state.SelectionSize() > 0 {
				m.state = catalog.ClearSelection(m.state)
				m.refresh()
			}
			return m, nil
		case "esc":
			if m.search.Value() != "" {
				m.search.Reset()
				m.state = catalog.WithSearch(m.state, "")
				m.refresh()
			}
			return m, nil
		case "tab", "shift+tab", "left", "right", "h", "l":
			var cmd tea.Cmd
			m.tabBar, cmd = m.tabBar.Update(msg)
			if sw := extractTabSwitch(cmd); sw != nil {
				return m.Update(*sw)
			}
			return m, cmd
		}
	}

	return m.updatePicker(msg)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(Header(m.walletAddr, m.width))
	b.WriteString("\n")
	b.WriteString(ContentPaneStyle.Render(StatsRow(m.stats)))
	b.WriteString("\n")
	b.WriteString(m.tabBar.View())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	if banner := SelectionBanner(m.state.SelectionSize()); banner != "" {
		b.WriteString(ContentPaneStyle.Render(banner))
		b.WriteString("\n")
	}

	top := b.String()
	statusView := m.statusBar.View()
	listHeight := m.height - strings.Count(top, "\n") - 1
	list := clampHeight(m.picker.View(), listHeight)
	if pad := listHeight - strings.Count(list, "\n") - 1; pad > 0 {
		list += strings.Repeat("\n", pad)
	}
	frame := top + list + "\n" + statusView

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// --- Update helpers ---

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)
	if req := extractCopyRequest(cmd); req != nil {
		return m, m.copyCmd(req.Text)
	}
	if !m.overlay.Active() {
		m.statusBar.SetNotice("", false)
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			m.search.Reset()
			m.blurSearch()
			m.state = catalog.WithSearch(m.state, "")
			m.refresh()
			return m, nil
		case "enter", "down", "tab":
			m.blurSearch()
			return m, nil
		}
	}
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.state = catalog.WithSearch(m.state, after)
		m.refresh()
	}
	return m, cmd
}

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if cmd == nil {
		return m, nil
	}
	switch req := cmd().(type) {
	case ToggleRequestMsg:
		return m.Update(req)
	case DetailRequestMsg:
		return m.Update(req)
	}
	return m, nil
}

func (m *Model) blurSearch() {
	m.search.Blur()
	m.focusZone = FocusList
	m.picker.SetFocused(true)
}

func (m Model) openDetail(id string) Model {
	rec, ok := catalog.Lookup(id)
	if !ok {
		return m
	}
	ins := deploy.For(m.cfg, rec)
	m.detailRec = rec
	m.overlay = NewDetailOverlay(rec, ins)
	m.overlay.Resize(m.width, m.height, rec, ins)
	m.logger.Debug("contract detail opened", zap.String("id", id))
	return m
}

func (m Model) copyCmd(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		return CopiedMsg{Err: copyFn(text)}
	}
}

// refresh re-derives the list from the filter state.
func (m *Model) refresh() {
	visible := catalog.FilteredRecords(m.records, m.state)
	m.picker.SetItems(PickerItems(visible, m.state))
	m.statusBar.Update(len(visible), len(m.records), m.tabBar.ActiveLabel())
}

func (m *Model) distributeSize() {
	m.tabBar.SetWidth(m.width)
	m.search.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.picker.SetWidth(m.width)
	// header, stats, tab bar, search box (3 lines), banner, status bar
	m.picker.SetHeight(m.height - 8)
	if m.overlay.Active() && m.overlay.Type() == OverlayDetail {
		m.overlay.Resize(m.width, m.height, m.detailRec, deploy.For(m.cfg, m.detailRec))
	} else {
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		m.overlay.SetHeight(m.height)
	}
}

// clampHeight truncates s to at most maxLines lines, preventing layout overflow.
func clampHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", maxLines+1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// --- Message extraction helpers ---
// These run a tea.Cmd synchronously to extract the message it produces. This
// is safe because the child components only return simple closures.

func extractTabSwitch(cmd tea.Cmd) *TabSwitchMsg {
	if cmd == nil {
		return nil
	}
	if msg, ok := cmd().(TabSwitchMsg); ok {
		return &msg
	}
	return nil
}

func extractCopyRequest(cmd tea.Cmd) *CopyRequestMsg {
	if cmd == nil {
		return nil
	}
	if msg, ok := cmd().(CopyRequestMsg); ok {
		return &msg
	}
	return nil
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
