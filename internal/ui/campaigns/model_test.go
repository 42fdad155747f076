package campaigns

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/ui"
	"github.com/nhle/marketing-hub/tests/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.LoadCampaigns()()
	loaded, ok := msg.(CampaignsLoadedMsg)
	require.True(t, ok, "got %T", msg)
	m, _ = m.Update(loaded)
	return m
}

func TestCampaigns_StatusFilterCycle(t *testing.T) {
	m := New(testutil.NewTestStore(t), keys.DefaultKeyMap(), 120, 40)
	m = load(t, m)
	assert.Len(t, m.campaigns, 3)

	want := []struct {
		summary string
		names   []string
	}{
		{"status: Active", []string{"Q4 Product Launch"}},
		{"status: Draft", []string{"Holiday Email Campaign"}},
		{"status: Completed", []string{"Brand Awareness Initiative"}},
		{"status: all", []string{"Q4 Product Launch", "Holiday Email Campaign", "Brand Awareness Initiative"}},
	}
	for _, w := range want {
		var cmd tea.Cmd
		m, cmd = m.Update(runes("f"))
		require.NotNil(t, cmd)
		loaded, ok := cmd().(CampaignsLoadedMsg)
		require.True(t, ok)
		m, _ = m.Update(loaded)

		assert.Equal(t, w.summary, m.FilterSummary())
		var names []string
		for _, c := range m.campaigns {
			names = append(names, c.Name)
		}
		assert.Equal(t, w.names, names)
	}
}

func TestCampaigns_GridNavigationAndOpen(t *testing.T) {
	m := New(testutil.NewTestStore(t), keys.DefaultKeyMap(), 80, 40)
	m = load(t, m)
	require.Equal(t, 2, m.columns())

	m, _ = m.Update(runes("l"))
	m, _ = m.Update(runes("j"))
	c, _ := m.Selected()
	assert.Equal(t, "Holiday Email Campaign", c.Name, "down from the last column has no card")

	m, _ = m.Update(runes("h"))
	m, _ = m.Update(runes("j"))
	c, _ = m.Selected()
	assert.Equal(t, "Brand Awareness Initiative", c.Name)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	open, ok := cmd().(ui.OpenCampaignMsg)
	require.True(t, ok)
	assert.Equal(t, 3, open.Campaign.ID)
}

func TestCampaigns_View(t *testing.T) {
	m := New(testutil.NewTestStore(t), keys.DefaultKeyMap(), 120, 40)
	m = load(t, m)

	view := m.View()
	assert.Contains(t, view, "Q4 Product Launch")
	assert.Contains(t, view, "9/12 tasks")
	assert.Contains(t, view, "+1", "fourth team member collapses into a counter")
}
