package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/marketing-hub/internal/model"
)

const taskColumns = `id, title, description, status, priority, assignee,
	campaign, due_date, tags, comment_count`

// GetTasks retrieves tasks matching the provided filter in id order.
func (s *SQLiteStore) GetTasks(
	ctx context.Context,
	filter TaskFilter,
) ([]model.Task, error) {
	var conditions []string
	var args []any

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Campaign != nil {
		conditions = append(conditions, "campaign = ?")
		args = append(args, *filter.Campaign)
	}
	if filter.Assignee != nil {
		conditions = append(conditions, "assignee = ?")
		args = append(args, *filter.Assignee)
	}

	query := "SELECT " + taskColumns + " FROM tasks"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var tasks []model.Task
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a single task. Returns nil if not found.
func (s *SQLiteStore) GetTaskByID(ctx context.Context, id int) (*model.Task, error) {
	var t model.Task
	found, err := s.getOne(ctx, &t,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id,
	)
	if err != nil {
		return nil, fmt.Errorf("getting task %d: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

// GetAssignees returns the distinct task assignees in first-seen order.
func (s *SQLiteStore) GetAssignees(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `
		SELECT assignee FROM tasks
		WHERE assignee != ''
		GROUP BY assignee
		ORDER BY MIN(id)`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying assignees: %w", err)
	}
	return names, nil
}

// GetComments returns the comments on a task in the order they were added.
func (s *SQLiteStore) GetComments(ctx context.Context, taskID int) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.SelectContext(ctx, &comments, `
		SELECT id, task_id, author, body, time_label
		FROM comments
		WHERE task_id = ?
		ORDER BY seq`, taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying comments for task %d: %w", taskID, err)
	}
	return comments, nil
}

// AddComment appends a comment to a task and bumps its comment count.
// A missing ID is filled with a new UUID.
func (s *SQLiteStore) AddComment(ctx context.Context, c model.Comment) (model.Comment, error) {
	if strings.TrimSpace(c.Body) == "" {
		return model.Comment{}, fmt.Errorf("adding comment to task %d: empty body", c.TaskID)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.TimeLabel == "" {
		c.TimeLabel = "just now"
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Comment{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO comments (id, task_id, author, body, time_label)
		VALUES (:id, :task_id, :author, :body, :time_label)`, c,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("adding comment to task %d: %w", c.TaskID, err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE tasks SET comment_count = comment_count + 1 WHERE id = ?", c.TaskID,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("updating comment count for task %d: %w", c.TaskID, err)
	}

	if err := tx.Commit(); err != nil {
		return model.Comment{}, fmt.Errorf("committing comment: %w", err)
	}
	return c, nil
}
