package store

import (
	"context"
	"fmt"

	"github.com/nhle/marketing-hub/internal/model"
)

const campaignColumns = `id, name, status, progress, start_date, end_date, team,
	task_count, completed_tasks, channels, tags, brief`

// GetCampaigns retrieves campaigns matching the filter in id order.
func (s *SQLiteStore) GetCampaigns(
	ctx context.Context,
	filter CampaignFilter,
) ([]model.Campaign, error) {
	query := "SELECT " + campaignColumns + " FROM campaigns"
	var args []any
	if filter.Status != nil {
		query += " WHERE status = ?"
		args = append(args, *filter.Status)
	}
	query += " ORDER BY id"

	var campaigns []model.Campaign
	if err := s.db.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, fmt.Errorf("querying campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaignNames returns every campaign name in id order, for filter pickers.
func (s *SQLiteStore) GetCampaignNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, "SELECT name FROM campaigns ORDER BY id"); err != nil {
		return nil, fmt.Errorf("querying campaign names: %w", err)
	}
	return names, nil
}
