// Package schema embeds the database migrations for each supported driver
// and applies them with golang-migrate.
package schema

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Source returns the migration source for driver ("postgres" or "sqlite").
func Source(driver string) (source.Driver, error) {
	switch driver {
	case "postgres", "sqlite":
		return iofs.New(migrations, "migrations/"+driver)
	}
	return nil, fmt.Errorf("no migrations for driver %q", driver)
}

// New builds a migrator bound to an open connection pool.
func New(db *sql.DB, driver string) (*migrate.Migrate, error) {
	src, err := Source(driver)
	if err != nil {
		return nil, err
	}

	var (
		target database.Driver
		name   string
	)

	switch driver {
	case "postgres":
		target, err = postgres.WithInstance(db, &postgres.Config{})
		name = "postgres"
	case "sqlite":
		target, err = sqlite3.WithInstance(db, &sqlite3.Config{})
		name = "sqlite3"
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, name, target)
}

// Up applies all pending migrations. An up-to-date schema is not an error.
func Up(db *sql.DB, driver string) error {
	m, err := New(db, driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
