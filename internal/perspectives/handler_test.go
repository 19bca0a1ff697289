package perspectives_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/perspectives"
	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/internal/workflow/workflowtest"
	"github.com/JaimeStill/unmask/pkg/routes"
)

type mockSystem struct {
	reframeFn      func(ctx context.Context, cmd perspectives.ReframeCommand) (*perspectives.PerspectiveRewrite, error)
	findFn         func(ctx context.Context, id uuid.UUID) (*perspectives.PerspectiveRewrite, error)
	listByPromptFn func(ctx context.Context, promptID uuid.UUID) ([]perspectives.PerspectiveRewrite, error)
}

func (m *mockSystem) Handler() *perspectives.Handler {
	return perspectives.NewHandler(m, workflowtest.Logger())
}

func (m *mockSystem) Reframe(ctx context.Context, cmd perspectives.ReframeCommand) (*perspectives.PerspectiveRewrite, error) {
	return m.reframeFn(ctx, cmd)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*perspectives.PerspectiveRewrite, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) ListByPrompt(ctx context.Context, promptID uuid.UUID) ([]perspectives.PerspectiveRewrite, error) {
	return m.listByPromptFn(ctx, promptID)
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, "", nil, sys.Handler().Routes())
	return mux
}

func TestHandlerReframe(t *testing.T) {
	promptID := uuid.New()
	body := fmt.Sprintf(`{"prompt_id":%q,"perspective":"Conservative"}`, promptID)

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"created", body, nil, http.StatusCreated},
		{"missing perspective", fmt.Sprintf(`{"prompt_id":%q}`, promptID), nil, http.StatusUnprocessableEntity},
		{"malformed json", `{"prompt_id":`, nil, http.StatusBadRequest},
		{"unknown prompt", body, prompts.ErrNotFound, http.StatusNotFound},
		{"upstream", body, fmt.Errorf("reframe: %w", workflow.ErrUpstream), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				reframeFn: func(_ context.Context, cmd perspectives.ReframeCommand) (*perspectives.PerspectiveRewrite, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &perspectives.PerspectiveRewrite{
						ID:                uuid.New(),
						PromptID:          cmd.PromptID,
						Perspective:       cmd.Perspective,
						AIRephrasedOutput: "rewritten",
					}, nil
				},
			}

			rec := httptest.NewRecorder()
			setupMux(sys).ServeHTTP(rec, httptest.NewRequest("POST", "/perspectives", strings.NewReader(tt.body)))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if tt.want == http.StatusCreated && !strings.Contains(rec.Body.String(), `"ai_rephrased_output":"rewritten"`) {
				t.Errorf("body = %s", rec.Body)
			}
		})
	}
}

func TestHandlerListByPrompt(t *testing.T) {
	sys := &mockSystem{
		listByPromptFn: func(context.Context, uuid.UUID) ([]perspectives.PerspectiveRewrite, error) {
			return []perspectives.PerspectiveRewrite{}, nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/perspectives?prompt_id="+uuid.NewString(), nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/perspectives?prompt_id=nope", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad prompt_id: status = %d, want 400", rec.Code)
	}
}

func TestHandlerFind(t *testing.T) {
	sys := &mockSystem{
		findFn: func(context.Context, uuid.UUID) (*perspectives.PerspectiveRewrite, error) {
			return nil, perspectives.ErrNotFound
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("GET", "/perspectives/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerFindInvalidID(t *testing.T) {
	sys := &mockSystem{
		findFn: func(context.Context, uuid.UUID) (*perspectives.PerspectiveRewrite, error) {
			t.Fatal("Find called with a malformed id")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, httptest.NewRequest("GET", "/perspectives/not-a-uuid", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != perspectives.ErrInvalidID.Error() {
		t.Errorf("error = %q, want %q", body["error"], perspectives.ErrInvalidID)
	}
	if got := perspectives.MapHTTPStatus(perspectives.ErrInvalidID); got != http.StatusBadRequest {
		t.Errorf("MapHTTPStatus(ErrInvalidID) = %d, want 400", got)
	}
}
