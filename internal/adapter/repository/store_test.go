package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"

	"github.com/eslsoft/toeicprep/internal/infrastructure/database"
)

// newTestDriver opens a migrated, file-backed SQLite database private to the test.
func newTestDriver(t *testing.T) dialect.Driver {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", filepath.Join(t.TempDir(), "toeic.db"))
	drv, err := database.OpenSQLite("sqlite", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = drv.Close() })
	if err := database.Migrate(context.Background(), drv); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return drv
}
