package model

// Campaign status labels.
const (
	CampaignStatusActive    = "Active"
	CampaignStatusDraft     = "Draft"
	CampaignStatusCompleted = "Completed"
)

// CampaignStatuses lists campaign statuses in filter-cycle order.
var CampaignStatuses = []string{
	CampaignStatusActive,
	CampaignStatusDraft,
	CampaignStatusCompleted,
}

// Campaign is a marketing initiative grouping tasks, people and channels.
type Campaign struct {
	ID             int        `json:"id" db:"id" yaml:"id"`
	Name           string     `json:"name" db:"name" yaml:"name"`
	Status         string     `json:"status" db:"status" yaml:"status"`
	Progress       int        `json:"progress" db:"progress" yaml:"progress"`
	StartDate      string     `json:"start_date" db:"start_date" yaml:"start_date"`
	EndDate        string     `json:"end_date" db:"end_date" yaml:"end_date"`
	Team           StringList `json:"team" db:"team" yaml:"team"`
	TaskCount      int        `json:"task_count" db:"task_count" yaml:"tasks"`
	CompletedTasks int        `json:"completed_tasks" db:"completed_tasks" yaml:"completed_tasks"`
	Channels       StringList `json:"channels" db:"channels" yaml:"channels"`
	Tags           StringList `json:"tags" db:"tags" yaml:"tags"`

	// Brief is a markdown summary shown in the campaign detail overlay.
	Brief string `json:"brief" db:"brief" yaml:"brief"`
}

// Percent returns the progress as a fraction in [0, 1].
func (c Campaign) Percent() float64 {
	switch {
	case c.Progress <= 0:
		return 0
	case c.Progress >= 100:
		return 1
	default:
		return float64(c.Progress) / 100
	}
}
