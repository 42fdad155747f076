package testutil

import (
	"context"
	"testing"

	"github.com/nhle/marketing-hub/internal/fixtures"
	"github.com/nhle/marketing-hub/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations applied
// and the embedded fixtures loaded. It automatically closes the store when
// the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("loading fixtures: %v", err)
	}

	s, err := store.NewMemoryStore(context.Background(), seed)
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
