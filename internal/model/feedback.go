package model

// Approval request statuses.
const (
	FeedbackPending      = "Pending"
	FeedbackApproved     = "Approved"
	FeedbackNeedsChanges = "Needs Changes"
	FeedbackRejected     = "Rejected"
)

// FeedbackRequest is a review or approval request on campaign material.
type FeedbackRequest struct {
	ID        int    `json:"id" db:"id" yaml:"id"`
	Title     string `json:"title" db:"title" yaml:"title"`
	Campaign  string `json:"campaign" db:"campaign" yaml:"campaign"`
	Status    string `json:"status" db:"status" yaml:"status"`
	Requester string `json:"requester" db:"requester" yaml:"requester"`
	Created   string `json:"created" db:"created" yaml:"created"`
	Priority  string `json:"priority" db:"priority" yaml:"priority"`
	Comments  int    `json:"comments" db:"comments" yaml:"comments"`
}

// IsPending reports whether the request still awaits a decision.
func (f FeedbackRequest) IsPending() bool {
	return f.Status == FeedbackPending
}

// Activity is a line in the approvals activity feed.
type Activity struct {
	ID        int    `json:"id" db:"id" yaml:"id"`
	Action    string `json:"action" db:"activity" yaml:"action"`
	User      string `json:"user" db:"actor" yaml:"user"`
	TimeLabel string `json:"time_label" db:"time_label" yaml:"time"`
}
