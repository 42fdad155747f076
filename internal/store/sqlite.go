package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/marketing-hub/internal/fixtures"
)

// MemoryDSN opens a private in-memory database that disappears with the process.
const MemoryDSN = ":memory:"

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens a SQLite database at dsn and runs any pending
// schema migrations. An in-memory database is pinned to one connection,
// since every new connection to ":memory:" would see an empty database.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if dsn == MemoryDSN {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// NewMemoryStore opens an in-memory store and loads seed into it.
func NewMemoryStore(ctx context.Context, seed *fixtures.Seed) (*SQLiteStore, error) {
	s, err := NewSQLiteStore(MemoryDSN)
	if err != nil {
		return nil, err
	}
	if err := s.Seed(ctx, seed); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// seedStatements pairs each fixture collection with its insert statement.
var seedStatements = []struct {
	name  string
	query string
	rows  func(*fixtures.Seed) any
}{
	{"campaigns", `INSERT INTO campaigns (
		id, name, status, progress, start_date, end_date, team,
		task_count, completed_tasks, channels, tags, brief
	) VALUES (
		:id, :name, :status, :progress, :start_date, :end_date, :team,
		:task_count, :completed_tasks, :channels, :tags, :brief
	)`, func(s *fixtures.Seed) any { return s.Campaigns }},
	{"tasks", `INSERT INTO tasks (
		id, title, description, status, priority, assignee,
		campaign, due_date, tags, comment_count
	) VALUES (
		:id, :title, :description, :status, :priority, :assignee,
		:campaign, :due_date, :tags, :comment_count
	)`, func(s *fixtures.Seed) any { return s.Tasks }},
	{"comments", `INSERT INTO comments (id, task_id, author, body, time_label)
		VALUES (:id, :task_id, :author, :body, :time_label)`,
		func(s *fixtures.Seed) any { return s.Comments }},
	{"team", `INSERT INTO team_members (id, name, role, email, presence, tasks)
		VALUES (:id, :name, :role, :email, :presence, :tasks)`,
		func(s *fixtures.Seed) any { return s.Team }},
	{"folders", `INSERT INTO folders (id, name) VALUES (:id, :name)`,
		func(s *fixtures.Seed) any { return s.Folders }},
	{"files", `INSERT INTO files (id, name, type, size, modified)
		VALUES (:id, :name, :type, :size, :modified)`,
		func(s *fixtures.Seed) any { return s.Files }},
	{"feedback", `INSERT INTO feedback_requests (
		id, title, campaign, status, requester, created, priority, comments
	) VALUES (
		:id, :title, :campaign, :status, :requester, :created, :priority, :comments
	)`, func(s *fixtures.Seed) any { return s.Feedback }},
	{"feedback activity", `INSERT INTO feedback_activity (id, activity, actor, time_label)
		VALUES (:id, :activity, :actor, :time_label)`,
		func(s *fixtures.Seed) any { return s.FeedbackActivity }},
	{"metrics", `INSERT INTO metrics (id, metric_group, title, value, change, color)
		VALUES (:id, :metric_group, :title, :value, :change, :color)`,
		func(s *fixtures.Seed) any { return s.Metrics }},
	{"performance", `INSERT INTO performance (
		id, campaign, impressions, clicks, conversions, roi, status
	) VALUES (
		:id, :campaign, :impressions, :clicks, :conversions, :roi, :status
	)`, func(s *fixtures.Seed) any { return s.Performance }},
	{"palette", `INSERT INTO palette_items (id, kind, name) VALUES (:id, :kind, :name)`,
		func(s *fixtures.Seed) any { return s.Palette }},
}

// Seed loads every fixture collection in a single transaction.
func (s *SQLiteStore) Seed(ctx context.Context, seed *fixtures.Seed) error {
	if seed == nil {
		return errors.New("seeding store: nil seed")
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, st := range seedStatements {
		rows := st.rows(seed)
		if isEmpty(rows) {
			continue
		}
		if _, err := tx.NamedExecContext(ctx, st.query, rows); err != nil {
			return fmt.Errorf("seeding %s: %w", st.name, err)
		}
	}

	return tx.Commit()
}

// isEmpty reports whether a fixture collection has no rows; sqlx rejects
// a batch insert of an empty slice.
func isEmpty(rows any) bool {
	v := reflect.ValueOf(rows)
	return v.Kind() == reflect.Slice && v.Len() == 0
}

// getOne runs a single-row query into dest, mapping sql.ErrNoRows to found=false.
func (s *SQLiteStore) getOne(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	err := s.db.GetContext(ctx, dest, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
