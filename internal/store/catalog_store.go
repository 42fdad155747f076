package store

import (
	"context"
	"fmt"

	"github.com/nhle/marketing-hub/internal/model"
)

// GetTeam returns the team roster in id order.
func (s *SQLiteStore) GetTeam(ctx context.Context) ([]model.TeamMember, error) {
	var team []model.TeamMember
	err := s.db.SelectContext(ctx, &team,
		"SELECT id, name, role, email, presence, tasks FROM team_members ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}
	return team, nil
}

// GetFolders returns the content hub folders in id order.
func (s *SQLiteStore) GetFolders(ctx context.Context) ([]model.Folder, error) {
	var folders []model.Folder
	if err := s.db.SelectContext(ctx, &folders, "SELECT id, name FROM folders ORDER BY id"); err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	return folders, nil
}

// GetFiles returns recently modified files in id order.
func (s *SQLiteStore) GetFiles(ctx context.Context) ([]model.File, error) {
	var files []model.File
	err := s.db.SelectContext(ctx, &files,
		"SELECT id, name, type, size, modified FROM files ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	return files, nil
}

// GetMetrics returns the stat cards belonging to group.
func (s *SQLiteStore) GetMetrics(ctx context.Context, group string) ([]model.Metric, error) {
	var metrics []model.Metric
	err := s.db.SelectContext(ctx, &metrics, `
		SELECT id, metric_group, title, value, change, color
		FROM metrics
		WHERE metric_group = ?
		ORDER BY id`, group,
	)
	if err != nil {
		return nil, fmt.Errorf("querying %s metrics: %w", group, err)
	}
	return metrics, nil
}

// GetPerformance returns the campaign performance table rows.
func (s *SQLiteStore) GetPerformance(ctx context.Context) ([]model.Performance, error) {
	var rows []model.Performance
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, campaign, impressions, clicks, conversions, roi, status
		FROM performance
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying performance: %w", err)
	}
	return rows, nil
}

// GetPaletteItems returns the command palette's fixed result list.
func (s *SQLiteStore) GetPaletteItems(ctx context.Context) ([]model.PaletteItem, error) {
	var items []model.PaletteItem
	if err := s.db.SelectContext(ctx, &items, "SELECT id, kind, name FROM palette_items ORDER BY id"); err != nil {
		return nil, fmt.Errorf("querying palette items: %w", err)
	}
	return items, nil
}
