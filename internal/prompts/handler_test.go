package prompts_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/internal/workflow"
	"github.com/JaimeStill/unmask/internal/workflow/workflowtest"
	"github.com/JaimeStill/unmask/pkg/routes"
)

type mockSystem struct {
	analyzeFn       func(ctx context.Context, cmd prompts.AnalyzeCommand) (*prompts.Prompt, error)
	findFn          func(ctx context.Context, id uuid.UUID) (*prompts.Prompt, error)
	listBySessionFn func(ctx context.Context, sessionID uuid.UUID) ([]prompts.Prompt, error)
}

func (m *mockSystem) Handler() *prompts.Handler {
	return prompts.NewHandler(m, workflowtest.Logger())
}

func (m *mockSystem) Analyze(ctx context.Context, cmd prompts.AnalyzeCommand) (*prompts.Prompt, error) {
	return m.analyzeFn(ctx, cmd)
}

func (m *mockSystem) Find(ctx context.Context, id uuid.UUID) (*prompts.Prompt, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]prompts.Prompt, error) {
	return m.listBySessionFn(ctx, sessionID)
}

func setupMux(sys *mockSystem) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, "", nil, sys.Handler().Routes())
	return mux
}

func TestHandlerAnalyze(t *testing.T) {
	sessionID := uuid.New()
	answer := "Yes, somewhat."

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"created", fmt.Sprintf(`{"session_id":%q,"prompt_text":"Is X biased?"}`, sessionID), nil, http.StatusCreated},
		{"malformed json", `{"session_id":`, nil, http.StatusBadRequest},
		{"bad uuid", `{"session_id":"nope","prompt_text":"x"}`, nil, http.StatusBadRequest},
		{"missing text", fmt.Sprintf(`{"session_id":%q}`, sessionID), nil, http.StatusUnprocessableEntity},
		{"missing session id", `{"prompt_text":"x"}`, nil, http.StatusUnprocessableEntity},
		{"unknown session", fmt.Sprintf(`{"session_id":%q,"prompt_text":"x"}`, sessionID), sessions.ErrNotFound, http.StatusNotFound},
		{"upstream failure", fmt.Sprintf(`{"session_id":%q,"prompt_text":"x"}`, sessionID), fmt.Errorf("analyze: %w", workflow.ErrUpstream), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{
				analyzeFn: func(_ context.Context, cmd prompts.AnalyzeCommand) (*prompts.Prompt, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &prompts.Prompt{ID: uuid.New(), SessionID: cmd.SessionID, PromptText: cmd.PromptText, AIResponse: &answer}, nil
				},
			}

			rec := httptest.NewRecorder()
			setupMux(sys).ServeHTTP(rec, httptest.NewRequest("POST", "/prompts", strings.NewReader(tt.body)))

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body)
			}
			if tt.want == http.StatusCreated {
				var got prompts.Prompt
				if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if got.AIResponse == nil || *got.AIResponse != answer {
					t.Errorf("ai_response = %v", got.AIResponse)
				}
			}
		})
	}
}

func TestHandlerListBySession(t *testing.T) {
	sessionID := uuid.New()
	sys := &mockSystem{
		listBySessionFn: func(_ context.Context, id uuid.UUID) ([]prompts.Prompt, error) {
			if id != sessionID {
				return nil, sessions.ErrNotFound
			}
			return []prompts.Prompt{{ID: uuid.New(), SessionID: id, PromptText: "a"}}, nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+sessionID.String()+"/prompts", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got []prompts.Prompt
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil || len(got) != 1 {
		t.Fatalf("decode: %v, len = %d", err, len(got))
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/"+uuid.NewString()+"/prompts", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandlerFind(t *testing.T) {
	sys := &mockSystem{
		findFn: func(context.Context, uuid.UUID) (*prompts.Prompt, error) {
			return nil, prompts.ErrNotFound
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/prompts/bad", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != prompts.ErrInvalidID.Error() {
		t.Errorf("error = %q, want %q", got, prompts.ErrInvalidID)
	}
}

func TestHandlerListBySessionInvalidID(t *testing.T) {
	mux := setupMux(&mockSystem{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/sessions/bad/prompts", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != sessions.ErrInvalidID.Error() {
		t.Errorf("error = %q, want %q", got, sessions.ErrInvalidID)
	}
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body["error"]
}
