// Package testutil provides shared test doubles for the storage and
// classifier seams of the sentiment service.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/tastemood/internal/storage"
)

// SetupTestDB creates a new in-memory test database with the schema applied.
// It is closed automatically when the test finishes.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
