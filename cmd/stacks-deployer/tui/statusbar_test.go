package tui

import (
	"testing"

	"github.com/serayd61/stacks-deployer/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSelectionBanner(t *testing.T) {
	assert.Equal(t, "", SelectionBanner(0))
	assert.Contains(t, SelectionBanner(1), "1 contract(s) selected · c: clear selection")
	assert.Contains(t, SelectionBanner(3), "3 contract(s) selected")
}

func TestStatusBar_View(t *testing.T) {
	sb := NewStatusBar()
	sb.SetWidth(140)
	sb.Update(3, 25, "All (25)")
	view := sb.View()
	assert.Contains(t, view, "3/25 contracts · All (25)")
	assert.Contains(t, view, "search")

	sb.SetNotice("copy failed: boom", true)
	assert.Contains(t, sb.View(), "copy failed: boom")
	sb.SetNotice("", false)
	assert.NotContains(t, sb.View(), "copy failed")
}

func TestStatsRow(t *testing.T) {
	row := StatsRow(catalog.Summary(catalog.Records()))
	assert.Contains(t, row, "25")
	assert.Contains(t, row, "Smart Contracts")
	assert.Contains(t, row, "Clarity 3.0")
	assert.Contains(t, row, "Production")
}

func TestHeader(t *testing.T) {
	assert.Contains(t, Header("", 120), "Connect wallet")
	h := Header("SP2J6Z...9EJ7", 120)
	assert.Contains(t, h, "SP2J6Z...9EJ7")
	assert.NotContains(t, h, "Smart Contracts")
}
