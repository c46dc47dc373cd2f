package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/serayd61/stacks-deployer/internal/config"
	"github.com/serayd61/stacks-deployer/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestModel(t *testing.T) (Model, *[]string) {
	t.Helper()
	var copied []string
	m := NewModel(Options{
		Config: config.Default(),
		Copy: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})
	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 40})
	return m, &copied
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m = send(m, runes(string(r)))
	}
	return m
}

func visibleIDs(m Model) []string {
	var out []string
	for _, r := range m.Visible() {
		out = append(out, r.ID)
	}
	return out
}

func TestModel_Initial(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Len(t, m.Visible(), 25)
	assert.Empty(t, m.Result())
	assert.Equal(t, 25, catalog.TotalCount(m.Counts()))

	view := m.View()
	assert.Contains(t, view, "All (25)")
	assert.Contains(t, view, "25 Smart Contracts")
	assert.Equal(t, 1, strings.Count(view, "Smart Contracts"), "count shown once, in the stats row")
	assert.Contains(t, view, "Connect wallet")
	assert.Contains(t, view, "Clarity 3.0")
	assert.Contains(t, view, "NFT Marketplace")
}

func TestModel_NotReadyView(t *testing.T) {
	m := NewModel(Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_Search(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("/"))
	require.Equal(t, FocusSearch, m.focusZone)

	m = typeText(m, "staking")
	assert.Equal(t, "staking", m.State().SearchText)
	assert.Equal(t, []string{"nft-staking", "yield-farming", "staking-pool"}, visibleIDs(m))

	// Esc clears the text and returns to the list.
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, FocusList, m.focusZone)
	assert.Equal(t, "", m.State().SearchText)
	assert.Len(t, m.Visible(), 25)
}

func TestModel_SearchEnterKeepsText(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("/"))
	m = typeText(m, "flash")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, FocusList, m.focusZone)
	assert.Equal(t, []string{"flash-loan"}, visibleIDs(m))

	// Esc in the list clears a leftover search.
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.Visible(), 25)
}

func TestModel_QInSearchIsText(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("/"))
	m = send(m, runes("q"))
	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.State().SearchText)
}

func TestModel_NoMatches(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("/"))
	m = typeText(m, "zzz")
	assert.Empty(t, m.Visible())
	view := m.View()
	assert.Contains(t, view, "No contracts found")
	assert.Contains(t, view, "Try adjusting your search or filter criteria")
}

func TestModel_TabsFilterByCategory(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.State().ActiveCategory)
	assert.Equal(t, catalog.CategoryNFT, *m.State().ActiveCategory)
	assert.Len(t, m.Visible(), 5)

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Nil(t, m.State().ActiveCategory)

	// Wraps from All to the last category.
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.NotNil(t, m.State().ActiveCategory)
	assert.Equal(t, catalog.CategoryUtility, *m.State().ActiveCategory)

	// Counts never change with the filter.
	assert.Equal(t, 5, m.Counts()[catalog.CategoryNFT])
}

func TestModel_CategoryAndSearchIntersect(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 4; i++ {
		m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.NotNil(t, m.State().ActiveCategory)
	require.Equal(t, catalog.CategoryDAO, *m.State().ActiveCategory)

	m = send(m, runes("/"))
	m = typeText(m, "quadratic")
	assert.Equal(t, []string{"dao-voting"}, visibleIDs(m))
}

func TestModel_ToggleAndClear(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"nft-marketplace"}, m.Result())
	assert.Contains(t, m.View(), "1 contract(s) selected · c: clear selection")

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"nft-collection", "nft-marketplace"}, m.Result())

	// Toggling again removes.
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, []string{"nft-marketplace"}, m.Result())

	m = send(m, runes("c"))
	assert.Empty(t, m.Result())
	assert.NotContains(t, m.View(), "contract(s) selected")
}

func TestModel_SelectionSurvivesFilterChange(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab}) // utility
	assert.Equal(t, []string{"nft-marketplace"}, m.Result())
	assert.Contains(t, m.View(), "1 contract(s) selected")
}

func TestModel_EnterOpensDetailWithoutSelecting(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.overlay.Active())
	assert.Equal(t, OverlayDetail, m.overlay.Type())
	assert.Empty(t, m.Result())
	assert.Contains(t, m.View(), "clarinet contract deploy nft-marketplace")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.overlay.Active())
}

func TestModel_CopyCommand(t *testing.T) {
	m, copied := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	next, cmd := m.Update(runes("c"))
	m = next.(Model)
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, CopiedMsg{}, msg)
	assert.Equal(t, []string{"clarinet contract deploy nft-marketplace"}, *copied)

	next, tick := m.Update(msg)
	m = next.(Model)
	assert.NotNil(t, tick)
	assert.True(t, m.overlay.Copied())
	assert.Contains(t, m.View(), "Copied!")

	// A stale reset does not clear a newer acknowledgement.
	m = send(m, copiedResetMsg{Seq: m.copySeq - 1})
	assert.True(t, m.overlay.Copied())

	m = send(m, copiedResetMsg{Seq: m.copySeq})
	assert.False(t, m.overlay.Copied())
}

func TestModel_CopyFailureShowsNotice(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, CopiedMsg{Err: errors.New("no clipboard")})
	assert.False(t, m.overlay.Copied())
	assert.Contains(t, m.statusBar.View(), "copy failed: no clipboard")
}

func TestModel_Help(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("?"))
	require.True(t, m.overlay.Active())
	assert.Equal(t, OverlayHelp, m.overlay.Type())
	assert.Contains(t, m.View(), "toggle selection")

	m = send(m, runes("?"))
	assert.False(t, m.overlay.Active())
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m, _ := newTestModel(t)
		next, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, "", next.(Model).View())
	}
}

func TestModel_WalletIndicator(t *testing.T) {
	s := wallet.NewFileSession(filepath.Join(t.TempDir(), "session.yaml"), config.NetworkTestnet, zap.NewNop())
	s.Connect(wallet.Profile{STXAddress: wallet.STXAddress{Testnet: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"}})

	m := NewModel(Options{Config: config.Default(), Wallet: s})
	m = send(m, tea.WindowSizeMsg{Width: 140, Height: 40})
	assert.Contains(t, m.View(), "ST1PQH...GZGM")
	assert.NotContains(t, m.View(), "Connect wallet")
}
