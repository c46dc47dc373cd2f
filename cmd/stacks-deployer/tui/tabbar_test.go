package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullCounts() map[catalog.Category]int {
	return catalog.CategoryCounts(catalog.Records(), catalog.Categories())
}

func TestNewTabBar(t *testing.T) {
	tb := NewTabBar(fullCounts())
	require.Len(t, tb.tabs, 6)
	assert.Nil(t, tb.ActiveCategory())
	assert.Equal(t, "All (25)", tb.ActiveLabel())
	assert.Equal(t, "🖼️ NFT (5)", tb.tabs[1].label)
	assert.Equal(t, "🔧 Utility (5)", tb.tabs[5].label)
}

func TestNewTabBar_ZeroCounts(t *testing.T) {
	tb := NewTabBar(catalog.CategoryCounts(nil, catalog.Categories()))
	assert.Equal(t, "All (0)", tb.ActiveLabel())
	assert.Equal(t, "💰 DeFi (0)", tb.tabs[3].label)
}

func TestTabBar_CycleWraps(t *testing.T) {
	tb := NewTabBar(fullCounts())
	tb.CyclePrev()
	require.NotNil(t, tb.ActiveCategory())
	assert.Equal(t, catalog.CategoryUtility, *tb.ActiveCategory())

	tb.CycleNext()
	assert.Nil(t, tb.ActiveCategory())
}

func TestTabBar_UpdateEmitsSwitch(t *testing.T) {
	tb := NewTabBar(fullCounts())

	tb, cmd := tb.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	msg, ok := cmd().(TabSwitchMsg)
	require.True(t, ok)
	require.NotNil(t, msg.Category)
	assert.Equal(t, catalog.CategoryNFT, *msg.Category)

	_, cmd = tb.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Nil(t, cmd().(TabSwitchMsg).Category)
}

func TestTabBar_IgnoresOtherKeys(t *testing.T) {
	tb := NewTabBar(fullCounts())
	_, cmd := tb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	assert.Nil(t, cmd)
	_, cmd = tb.Update(tea.WindowSizeMsg{})
	assert.Nil(t, cmd)
}

func TestTabBar_View(t *testing.T) {
	tb := NewTabBar(fullCounts())
	tb.SetWidth(160)
	view := tb.View()
	assert.Contains(t, view, "All (25)")
	assert.Contains(t, view, "DAO (5)")
}
