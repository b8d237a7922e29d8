package testutil

import (
	"path/filepath"
	"testing"

	"github.com/nairaflow/nairaflow/internal/storage"
)

// SetupTestStore creates a throwaway SQLite store under the test's temp
// directory. Migrations run on open, and cleanup closes the store when
// the test finishes.
func SetupTestStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.New(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return store
}
