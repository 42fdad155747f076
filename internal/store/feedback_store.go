package store

import (
	"context"
	"fmt"

	"github.com/nhle/marketing-hub/internal/model"
)

// GetFeedback returns approval requests in id order.
func (s *SQLiteStore) GetFeedback(ctx context.Context) ([]model.FeedbackRequest, error) {
	var reqs []model.FeedbackRequest
	err := s.db.SelectContext(ctx, &reqs, `
		SELECT id, title, campaign, status, requester, created, priority, comments
		FROM feedback_requests
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying feedback requests: %w", err)
	}
	return reqs, nil
}

// SetFeedbackStatus records an approval decision for the session.
func (s *SQLiteStore) SetFeedbackStatus(ctx context.Context, id int, status string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE feedback_requests SET status = ? WHERE id = ?", status, id,
	)
	if err != nil {
		return fmt.Errorf("setting feedback %d status: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting feedback %d status: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("setting feedback %d status: %w", id, ErrNotFound)
	}
	return nil
}

// GetFeedbackActivity returns the approvals activity feed, newest first as seeded.
func (s *SQLiteStore) GetFeedbackActivity(ctx context.Context) ([]model.Activity, error) {
	var items []model.Activity
	err := s.db.SelectContext(ctx, &items,
		"SELECT id, activity, actor, time_label FROM feedback_activity ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying feedback activity: %w", err)
	}
	return items, nil
}
