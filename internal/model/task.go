package model

// Task status labels as shown on the kanban board.
const (
	TaskStatusTodo       = "Todo"
	TaskStatusInProgress = "In Progress"
	TaskStatusReview     = "Review"
	TaskStatusDone       = "Done"
)

// Priority labels shared by tasks and approval requests.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// TaskStatuses is the kanban column order.
var TaskStatuses = []string{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusDone,
}

// Task is a unit of campaign work assigned to a team member.
type Task struct {
	ID          int        `json:"id" db:"id" yaml:"id"`
	Title       string     `json:"title" db:"title" yaml:"title"`
	Description string     `json:"description" db:"description" yaml:"description"`
	Status      string     `json:"status" db:"status" yaml:"status"`
	Priority    string     `json:"priority" db:"priority" yaml:"priority"`
	Assignee    string     `json:"assignee" db:"assignee" yaml:"assignee"`
	Campaign    string     `json:"campaign" db:"campaign" yaml:"campaign"`
	DueDate     string     `json:"due_date" db:"due_date" yaml:"due_date"`
	Tags        StringList `json:"tags" db:"tags" yaml:"tags"`

	// CommentCount is the number of comments attached to the task.
	CommentCount int `json:"comment_count" db:"comment_count" yaml:"comments"`
}

// Comment is a single discussion entry on a task.
type Comment struct {
	ID        string `json:"id" db:"id" yaml:"id"`
	TaskID    int    `json:"task_id" db:"task_id" yaml:"task_id"`
	Author    string `json:"author" db:"author" yaml:"author"`
	Body      string `json:"body" db:"body" yaml:"body"`
	TimeLabel string `json:"time_label" db:"time_label" yaml:"time"`
}
