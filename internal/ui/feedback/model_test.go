package feedback

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/tests/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T) Model {
	t.Helper()
	m := New(testutil.NewTestStore(t), keys.DefaultKeyMap(), 120, 40)
	return reload(t, m, m.LoadFeedback())
}

func reload(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	data, ok := msg.(FeedbackLoadedMsg)
	require.True(t, ok, "got %T", msg)
	m, _ = m.Update(data)
	return m
}

func TestFeedback_Load(t *testing.T) {
	m := loaded(t)
	assert.Len(t, m.requests, 3)
	assert.Len(t, m.activity, 4)

	counts := m.Counts()
	assert.Equal(t, 1, counts[model.FeedbackPending])
	assert.Equal(t, 1, counts[model.FeedbackApproved])
	assert.Equal(t, 1, counts[model.FeedbackNeedsChanges])

	view := m.View()
	assert.Contains(t, view, "Product Demo Video Review")
	assert.Contains(t, view, "Video approved")
}

func TestFeedback_ApprovePending(t *testing.T) {
	m := loaded(t)

	m, cmd := m.Update(runes("a"))
	require.NotNil(t, cmd)
	decision, ok := cmd().(DecisionMsg)
	require.True(t, ok)
	assert.Equal(t, DecisionMsg{ID: 1, Status: model.FeedbackApproved}, decision)

	m, cmd = m.Update(decision)
	m = reload(t, m, cmd)

	req, _ := m.Selected()
	assert.Equal(t, model.FeedbackApproved, req.Status)
	assert.Equal(t, 2, m.Counts()[model.FeedbackApproved])
	assert.Zero(t, m.Counts()[model.FeedbackPending])
}

func TestFeedback_RejectPending(t *testing.T) {
	m := loaded(t)

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	decision, ok := cmd().(DecisionMsg)
	require.True(t, ok)
	assert.Equal(t, model.FeedbackRejected, decision.Status)
}

func TestFeedback_DecidedRequestsAreLocked(t *testing.T) {
	m := loaded(t)
	m, _ = m.Update(runes("j"))

	req, _ := m.Selected()
	require.Equal(t, model.FeedbackApproved, req.Status)

	_, cmd := m.Update(runes("a"))
	assert.Nil(t, cmd)
	_, cmd = m.Update(runes("r"))
	assert.Nil(t, cmd)
}
