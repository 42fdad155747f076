package taskdetail

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/keys"
	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/internal/ui"
	"github.com/nhle/marketing-hub/tests/testutil"
)

func openTask(t *testing.T, s store.Store, id int) Model {
	t.Helper()
	task, err := s.GetTaskByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, task)

	m := New(s, keys.DefaultKeyMap(), "John Doe", 100, 40)
	cmd := m.Open(*task, false)
	require.NotNil(t, cmd)
	loaded, ok := cmd().(CommentsLoadedMsg)
	require.True(t, ok)
	m, _ = m.Update(loaded)
	return m
}

func TestTaskDetail_LoadsComments(t *testing.T) {
	m := openTask(t, testutil.NewTestStore(t), 1)
	require.Len(t, m.comments, 3)
	assert.Equal(t, "Sarah J.", m.comments[0].Author)

	view := m.View()
	assert.Contains(t, view, "Create product demo video")
	assert.Contains(t, view, "Comments (3)")
}

func TestTaskDetail_StaleCommentsIgnored(t *testing.T) {
	m := openTask(t, testutil.NewTestStore(t), 1)
	m, _ = m.Update(CommentsLoadedMsg{TaskID: 2})
	assert.Len(t, m.comments, 3)
}

func TestTaskDetail_CommentKeyStartsForm(t *testing.T) {
	m := openTask(t, testutil.NewTestStore(t), 2)
	assert.False(t, m.Composing())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.True(t, m.Composing())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Add a comment")
}

func TestTaskDetail_AddComment(t *testing.T) {
	s := testutil.NewTestStore(t)
	m := openTask(t, s, 2)

	cmd := m.addComment("  Looks good  ")
	require.NotNil(t, cmd)
	added, ok := cmd().(CommentAddedMsg)
	require.True(t, ok)
	assert.Equal(t, "John Doe", added.Comment.Author)
	assert.Equal(t, "Looks good", added.Comment.Body)
	assert.NotEmpty(t, added.Comment.ID)

	m, cmd = m.Update(added)
	require.Len(t, m.comments, 1)
	assert.False(t, m.Composing())

	require.NotNil(t, cmd)
	reloaded, ok := cmd().(TaskReloadedMsg)
	require.True(t, ok)
	m, _ = m.Update(reloaded)
	task, _ := m.Task()
	assert.Equal(t, 2, task.CommentCount)
	assert.Contains(t, m.View(), "Comments (2)")

	stored, err := s.GetComments(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestTaskDetail_AddEmptyCommentFails(t *testing.T) {
	m := openTask(t, testutil.NewTestStore(t), 2)
	msg := m.addComment("   ")()
	errMsg, ok := msg.(ui.ErrorMsg)
	require.True(t, ok)
	assert.Equal(t, "adding comment", errMsg.Op)
}

func TestTaskDetail_CommentForOtherTaskIgnored(t *testing.T) {
	m := openTask(t, testutil.NewTestStore(t), 2)
	m, _ = m.Update(CommentAddedMsg{Comment: model.Comment{TaskID: 1, Body: "x"}})
	assert.Empty(t, m.comments)

	m, _ = m.Update(TaskReloadedMsg{Task: model.Task{ID: 1, Title: "Other"}})
	task, _ := m.Task()
	assert.Equal(t, 2, task.ID)
}
