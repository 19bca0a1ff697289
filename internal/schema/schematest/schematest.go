// Package schematest opens migrated SQLite databases for repository tests.
package schematest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/unmask/internal/schema"
	"github.com/JaimeStill/unmask/pkg/database"
)

// Open returns a SQLite pool in a per-test temp directory with every
// migration applied. The pool is closed during test cleanup.
func Open(t testing.TB) *sql.DB {
	t.Helper()

	cfg := &database.Config{
		Driver: database.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "unmask.db"),
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("database config: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := schema.Up(db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}
