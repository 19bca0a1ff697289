package pagination_test

import (
	"net/url"
	"testing"

	"github.com/JaimeStill/unmask/pkg/pagination"
)

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "50")

	cfg := pagination.Config{}
	if err := cfg.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.DefaultPageSize != 50 {
		t.Errorf("DefaultPageSize = %d, want 50", cfg.DefaultPageSize)
	}
	if cfg.MaxPageSize != 100 {
		t.Errorf("MaxPageSize = %d, want 100", cfg.MaxPageSize)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

func TestPageRequestFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	tests := []struct {
		name     string
		query    string
		page     int
		pageSize int
		search   string
		sorts    int
	}{
		{"empty", "", 1, 20, "", 0},
		{"explicit", "page=3&page_size=5&search=bias&sort=-created_at,title", 3, 5, "bias", 2},
		{"clamped", "page=-1&page_size=1000", 1, 100, "", 0},
		{"garbage", "page=x&page_size=y", 1, 20, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.page {
				t.Errorf("Page = %d, want %d", req.Page, tt.page)
			}
			if req.PageSize != tt.pageSize {
				t.Errorf("PageSize = %d, want %d", req.PageSize, tt.pageSize)
			}
			if tt.search == "" && req.Search != nil {
				t.Errorf("Search = %q, want nil", *req.Search)
			}
			if tt.search != "" && (req.Search == nil || *req.Search != tt.search) {
				t.Errorf("Search mismatch, want %q", tt.search)
			}
			if len(req.Sort) != tt.sorts {
				t.Errorf("Sort len = %d, want %d", len(req.Sort), tt.sorts)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantPages int
	}{
		{"empty", 0, 10, 1},
		{"exact", 20, 10, 2},
		{"remainder", 21, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := pagination.NewPageResult[string](nil, tt.total, 1, tt.pageSize)
			if result.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", result.TotalPages, tt.wantPages)
			}
			if result.Data == nil {
				t.Error("Data should be non-nil")
			}
		})
	}
}
