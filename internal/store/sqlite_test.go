package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/marketing-hub/internal/model"
	"github.com/nhle/marketing-hub/internal/store"
	"github.com/nhle/marketing-hub/tests/testutil"
)

func TestNewSQLiteStore_MigrationsAreIdempotent(t *testing.T) {
	s, err := store.NewSQLiteStore(store.MemoryDSN)
	require.NoError(t, err)
	defer s.Close()

	campaigns, err := s.GetCampaigns(context.Background(), store.CampaignFilter{})
	require.NoError(t, err)
	assert.Empty(t, campaigns)
}

func TestSeed_NilSeed(t *testing.T) {
	s, err := store.NewSQLiteStore(store.MemoryDSN)
	require.NoError(t, err)
	defer s.Close()

	assert.Error(t, s.Seed(context.Background(), nil))
}

func TestGetCampaigns(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	all, err := s.GetCampaigns(ctx, store.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Q4 Product Launch", all[0].Name)
	assert.Equal(t, model.StringList{"Email", "Social Media", "SEO"}, all[0].Channels)

	drafts, err := s.GetCampaigns(ctx, store.CampaignFilter{Status: store.StrPtr(model.CampaignStatusDraft)})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Holiday Email Campaign", drafts[0].Name)
}

func TestGetTaskByID(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	task, err := s.GetTaskByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, 3, task.ID)

	missing, err := s.GetTaskByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetTasks_FiltersByEquality(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter store.TaskFilter
		want   []int
	}{
		{"no filter", store.TaskFilter{}, []int{1, 2, 3, 4}},
		{"status", store.TaskFilter{Status: store.StrPtr(model.TaskStatusReview)}, []int{3}},
		{"campaign", store.TaskFilter{Campaign: store.StrPtr("Q4 Product Launch")}, []int{1, 3}},
		{"assignee", store.TaskFilter{Assignee: store.StrPtr("Anna K.")}, []int{2}},
		{
			"campaign and status",
			store.TaskFilter{
				Campaign: store.StrPtr("Holiday Email Campaign"),
				Status:   store.StrPtr(model.TaskStatusDone),
			},
			[]int{4},
		},
		{"no match", store.TaskFilter{Assignee: store.StrPtr("Nobody")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := s.GetTasks(ctx, tt.filter)
			require.NoError(t, err)
			var ids []int
			for _, task := range tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestGetAssigneesAndCampaignNames(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	assignees, err := s.GetAssignees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mike R.", "Anna K.", "Sarah J.", "Lisa P."}, assignees)

	names, err := s.GetCampaignNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q4 Product Launch", "Holiday Email Campaign", "Brand Awareness Initiative"}, names)
}

func TestAddComment(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	before, err := s.GetComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, before, 3)

	added, err := s.AddComment(ctx, model.Comment{TaskID: 1, Author: "Sarah J.", Body: "Ship it"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "just now", added.TimeLabel)

	after, err := s.GetComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, after, 4)
	assert.Equal(t, "Ship it", after[3].Body)

	task, err := s.GetTaskByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, task.CommentCount)
}

func TestAddComment_Rejects(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.AddComment(ctx, model.Comment{TaskID: 1, Author: "x", Body: "   "})
	assert.Error(t, err)

	_, err = s.AddComment(ctx, model.Comment{TaskID: 404, Author: "x", Body: "orphan"})
	assert.Error(t, err, "foreign key to tasks is enforced")
}

func TestSetFeedbackStatus(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetFeedbackStatus(ctx, 1, model.FeedbackApproved))

	reqs, err := s.GetFeedback(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.FeedbackApproved, reqs[0].Status)

	err = s.SetFeedbackStatus(ctx, 42, model.FeedbackApproved)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCatalogQueries(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	team, err := s.GetTeam(ctx)
	require.NoError(t, err)
	require.Len(t, team, 6)
	assert.Equal(t, model.PresenceAway, team[2].Presence)

	folders, err := s.GetFolders(ctx)
	require.NoError(t, err)
	assert.Len(t, folders, 5)

	files, err := s.GetFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 6)
	assert.Equal(t, model.FileTypeArchive, files[5].Type)

	dash, err := s.GetMetrics(ctx, model.MetricGroupDashboard)
	require.NoError(t, err)
	assert.Len(t, dash, 4)

	analytics, err := s.GetMetrics(ctx, model.MetricGroupAnalytics)
	require.NoError(t, err)
	require.Len(t, analytics, 4)
	assert.Equal(t, "Campaign ROI", analytics[0].Title)

	perf, err := s.GetPerformance(ctx)
	require.NoError(t, err)
	assert.Len(t, perf, 3)

	activity, err := s.GetFeedbackActivity(ctx)
	require.NoError(t, err)
	require.Len(t, activity, 4)
	assert.Equal(t, "CEO", activity[0].User)

	items, err := s.GetPaletteItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, model.PaletteFile, items[3].Kind)
}
