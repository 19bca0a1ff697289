package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/JaimeStill/unmask/pkg/repository"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate")
)

func TestMapError(t *testing.T) {
	other := errors.New("other")
	pgFK := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, errNotFound},
		{"wrapped no rows", fmt.Errorf("find: %w", sql.ErrNoRows), errNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505"}, errDuplicate},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, errDuplicate},
		{"sqlite primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, errDuplicate},
		{"pg foreign key passthrough", pgFK, pgFK},
		{"other passthrough", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, errNotFound, errDuplicate)
			if !errors.Is(got, tt.want) && got != tt.want {
				t.Errorf("MapError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"pg", &pgconn.PgError{Code: "23503"}, true},
		{"sqlite", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, true},
		{"pg unique", &pgconn.PgError{Code: "23505"}, false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repository.IsForeignKeyViolation(tt.err); got != tt.want {
				t.Errorf("IsForeignKeyViolation() = %v, want %v", got, tt.want)
			}
		})
	}
}

type item struct {
	ID   int
	Name string
}

func scanItem(s repository.Scanner) (item, error) {
	var it item
	err := s.Scan(&it.ID, &it.Name)
	return it, err
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "repo.db")+"?_foreign_keys=1")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`); err != nil {
		t.Fatalf("create: %v", err)
	}
	return db
}

func TestHelpersAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	created, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (item, error) {
		return repository.QueryOne(ctx, tx, `INSERT INTO items (id, name) VALUES ($1, $2) RETURNING id, name`, []any{1, "alpha"}, scanItem)
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if created.Name != "alpha" {
		t.Errorf("created: %+v", created)
	}

	_, err = db.Exec(`INSERT INTO items (id, name) VALUES ($1, $2)`, 2, "alpha")
	if !errors.Is(repository.MapError(err, errNotFound, errDuplicate), errDuplicate) {
		t.Errorf("expected duplicate, got %v", err)
	}

	_, err = repository.WithTx(ctx, db, func(tx *sql.Tx) (item, error) {
		if _, err := tx.Exec(`INSERT INTO items (id, name) VALUES (3, 'beta')`); err != nil {
			return item{}, err
		}
		return item{}, errors.New("abort")
	})
	if err == nil {
		t.Fatal("expected rollback error")
	}

	n, err := repository.Count(ctx, db, `SELECT COUNT(*) FROM items`, nil)
	if err != nil || n != 1 {
		t.Errorf("count after rollback: got %d, %v", n, err)
	}

	items, err := repository.QueryMany(ctx, db, `SELECT id, name FROM items WHERE name = $1`, []any{"missing"}, scanItem)
	if err != nil {
		t.Fatalf("query many: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}

	if err := repository.ExecExpectOne(ctx, db, `DELETE FROM items WHERE id = $1`, 42); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("ExecExpectOne missing row: got %v", err)
	}
	if err := repository.ExecExpectOne(ctx, db, `DELETE FROM items WHERE id = $1`, 1); err != nil {
		t.Errorf("ExecExpectOne existing row: got %v", err)
	}
}
