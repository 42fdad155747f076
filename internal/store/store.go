package store

import (
	"context"
	"errors"

	"github.com/nhle/marketing-hub/internal/fixtures"
	"github.com/nhle/marketing-hub/internal/model"
)

// ErrNotFound is returned by updates that target a missing record.
var ErrNotFound = errors.New("not found")

// CampaignFilter restricts campaign queries by field equality.
type CampaignFilter struct {
	Status *string
}

// TaskFilter restricts task queries by field equality. Nil fields match all.
type TaskFilter struct {
	Status   *string
	Campaign *string
	Assignee *string
}

// Store defines read access to the session's reference data plus the few
// in-session edits the UI allows. Nothing outlives the process.
type Store interface {
	Seed(ctx context.Context, seed *fixtures.Seed) error

	// === Campaigns ===

	GetCampaigns(ctx context.Context, filter CampaignFilter) ([]model.Campaign, error)
	GetCampaignNames(ctx context.Context) ([]string, error)

	// === Tasks & comments ===

	GetTasks(ctx context.Context, filter TaskFilter) ([]model.Task, error)
	GetTaskByID(ctx context.Context, id int) (*model.Task, error)
	GetAssignees(ctx context.Context) ([]string, error)
	GetComments(ctx context.Context, taskID int) ([]model.Comment, error)
	AddComment(ctx context.Context, c model.Comment) (model.Comment, error)

	// === Team & content ===

	GetTeam(ctx context.Context) ([]model.TeamMember, error)
	GetFolders(ctx context.Context) ([]model.Folder, error)
	GetFiles(ctx context.Context) ([]model.File, error)

	// === Approvals ===

	GetFeedback(ctx context.Context) ([]model.FeedbackRequest, error)
	SetFeedbackStatus(ctx context.Context, id int, status string) error
	GetFeedbackActivity(ctx context.Context) ([]model.Activity, error)

	// === Analytics & palette ===

	GetMetrics(ctx context.Context, group string) ([]model.Metric, error)
	GetPerformance(ctx context.Context) ([]model.Performance, error)
	GetPaletteItems(ctx context.Context) ([]model.PaletteItem, error)
}

// StrPtr returns a pointer to s, for building filters inline.
func StrPtr(s string) *string {
	return &s
}
