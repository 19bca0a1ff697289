package sessions_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/schema/schematest"
	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/pkg/pagination"
	"github.com/JaimeStill/unmask/pkg/query"
)

func newSystem(t *testing.T) sessions.System {
	t.Helper()
	return sessions.New(
		schematest.Open(t),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func ptr(s string) *string { return &s }

func TestCreateAndFind(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	created, err := sys.Create(ctx, sessions.CreateCommand{ModelUsed: ptr("gpt-4o-mini"), Domain: ptr("politics")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("id not generated")
	}
	if created.CreatedAt.IsZero() || created.CreatedAt.Location().String() != "UTC" {
		t.Errorf("created_at = %v, want UTC timestamp", created.CreatedAt)
	}

	found, err := sys.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ModelUsed == nil || *found.ModelUsed != "gpt-4o-mini" {
		t.Errorf("model_used = %v", found.ModelUsed)
	}
	if !found.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at = %v, want %v", found.CreatedAt, created.CreatedAt)
	}
}

func TestCreateWithoutLabels(t *testing.T) {
	sys := newSystem(t)

	s, err := sys.Create(context.Background(), sessions.CreateCommand{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ModelUsed != nil || s.Domain != nil {
		t.Errorf("labels = %v/%v, want nil", s.ModelUsed, s.Domain)
	}
}

func TestFindMissing(t *testing.T) {
	sys := newSystem(t)

	_, err := sys.Find(context.Background(), uuid.New())
	if !errors.Is(err, sessions.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	s, err := sys.Create(ctx, sessions.CreateCommand{})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := sys.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sys.Find(ctx, s.ID); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("find after delete: err = %v, want ErrNotFound", err)
	}
	if err := sys.Delete(ctx, s.ID); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	sys := newSystem(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, d := range []string{"politics", "health", "political economy"} {
		s, err := sys.Create(ctx, sessions.CreateCommand{Domain: ptr(d)})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, s.ID)
	}

	t.Run("newest first by default", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, sessions.Filters{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.Total != 3 || len(result.Data) != 3 {
			t.Fatalf("total = %d, len = %d, want 3", result.Total, len(result.Data))
		}
		if result.Data[0].ID != ids[2] {
			t.Errorf("first = %v, want %v", result.Data[0].ID, ids[2])
		}
	})

	t.Run("domain filter", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, sessions.Filters{Domain: ptr("POLITIC")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("total = %d, want 2", result.Total)
		}
	})

	t.Run("paging and sort", func(t *testing.T) {
		page := pagination.PageRequest{
			Page:     2,
			PageSize: 2,
			Sort:     []query.SortField{{Field: "CreatedAt"}, {Field: "ID"}},
		}
		result, err := sys.List(ctx, page, sessions.Filters{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.TotalPages != 2 || len(result.Data) != 1 {
			t.Fatalf("total_pages = %d, len = %d", result.TotalPages, len(result.Data))
		}
		if result.Data[0].ID != ids[2] {
			t.Errorf("page 2 = %v, want %v", result.Data[0].ID, ids[2])
		}
	})

	t.Run("empty result", func(t *testing.T) {
		result, err := sys.List(ctx, pagination.PageRequest{}, sessions.Filters{ModelUsed: ptr("none")})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if result.Data == nil || len(result.Data) != 0 {
			t.Errorf("data = %v, want empty slice", result.Data)
		}
	})
}
