package collaborator_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/unmask/internal/collaborator"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model          string    `json:"model"`
	Messages       []message `json:"messages"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

// fakeServer answers chat completion requests with content and records
// the last request body.
func fakeServer(t *testing.T, status int, content string, last *request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if last != nil {
			json.NewDecoder(r.Body).Decode(last)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			io.WriteString(w, `{"error":{"message":"boom","type":"server_error"}}`)
			return
		}

		choices := []map[string]any{}
		if content != "" {
			choices = append(choices, map[string]any{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"model":   "test-model",
			"choices": choices,
			"usage":   map[string]int{"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, baseURL string) collaborator.Collaborator {
	t.Helper()
	cfg := &collaborator.Config{Provider: "openai", APIKey: "sk-test", BaseURL: baseURL, Model: "test-model"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	c, err := collaborator.New(cfg, discard())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return c
}

func TestConfigFinalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     collaborator.Config
		wantErr bool
	}{
		{"default mock", collaborator.Config{}, false},
		{"openai without key", collaborator.Config{Provider: "openai"}, true},
		{"azure without base url", collaborator.Config{Provider: "azure", APIKey: "k"}, true},
		{"ollama defaults", collaborator.Config{Provider: "ollama"}, false},
		{"unknown", collaborator.Config{Provider: "bard"}, true},
		{"bad timeout", collaborator.Config{Timeout: "never"}, true},
		{"bad temperature", collaborator.Config{Temperature: 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigEnvProviderDefaults(t *testing.T) {
	t.Setenv("TEST_COLLAB_PROVIDER", "ollama")

	cfg := collaborator.Config{}
	if err := cfg.Finalize(&collaborator.Env{Provider: "TEST_COLLAB_PROVIDER"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("base url: got %s", cfg.BaseURL)
	}
	if cfg.Model != "llama3.1" {
		t.Errorf("model: got %s", cfg.Model)
	}
}

func TestComplete(t *testing.T) {
	var last request
	srv := fakeServer(t, http.StatusOK, "Paris.", &last)
	c := newClient(t, srv.URL)

	got, err := c.Complete(context.Background(), "Capital of France?")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got != "Paris." {
		t.Errorf("got %q", got)
	}
	if last.Model != "test-model" {
		t.Errorf("model: got %s", last.Model)
	}
	if n := len(last.Messages); n != 2 || last.Messages[1].Content != "Capital of France?" {
		t.Errorf("messages: %+v", last.Messages)
	}
}

func TestScoreBias(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantItems int
		wantErr   error
	}{
		{
			name:      "items",
			content:   `{"biases":[{"category":"Gender","score":0.7,"summary":"s"},{"category":"Political","score":0.2}],"highlighted_terms":["he"],"error":null}`,
			wantItems: 2,
		},
		{
			name:      "out of range passes through",
			content:   `{"biases":[{"category":"Gender","score":1.5}]}`,
			wantItems: 1,
		},
		{
			name:    "reported error",
			content: `{"biases":[],"error":"text too short"}`,
			wantErr: collaborator.ErrReported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var last request
			srv := fakeServer(t, http.StatusOK, tt.content, &last)
			c := newClient(t, srv.URL)

			items, err := c.ScoreBias(context.Background(), "He is a natural leader.")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("score: %v", err)
			}
			if len(items) != tt.wantItems {
				t.Errorf("items: got %d, want %d", len(items), tt.wantItems)
			}
			if last.ResponseFormat == nil || last.ResponseFormat.Type != "json_object" {
				t.Error("bias scoring should request a JSON object response")
			}
		})
	}
}

func TestCrossExamineTranscriptOrder(t *testing.T) {
	var last request
	srv := fakeServer(t, http.StatusOK, "Yes, that was an assumption.", &last)
	c := newClient(t, srv.URL)

	_, err := c.CrossExamine(context.Background(), collaborator.Context{
		PromptText:      "P",
		InitialResponse: "R",
		Turns: []collaborator.Turn{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
		},
		Question: "Q3",
	})
	if err != nil {
		t.Fatalf("cross examine: %v", err)
	}

	var got []string
	for _, m := range last.Messages[1:] {
		got = append(got, m.Role+":"+m.Content)
	}
	want := "user:P,assistant:R,user:Q1,assistant:A1,user:Q2,assistant:A2,user:Q3"
	if strings.Join(got, ",") != want {
		t.Errorf("transcript:\n got  %s\n want %s", strings.Join(got, ","), want)
	}
}

func TestUpstreamFailures(t *testing.T) {
	t.Run("http error", func(t *testing.T) {
		c := newClient(t, fakeServer(t, http.StatusInternalServerError, "", nil).URL)
		if _, err := c.Rewrite(context.Background(), "text", "Conservative"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no choices", func(t *testing.T) {
		c := newClient(t, fakeServer(t, http.StatusOK, "", nil).URL)
		if _, err := c.Complete(context.Background(), "x"); !errors.Is(err, collaborator.ErrEmptyCompletion) {
			t.Errorf("err = %v, want ErrEmptyCompletion", err)
		}
	})
}

func TestMock(t *testing.T) {
	cfg := &collaborator.Config{Provider: "mock"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	c, err := collaborator.New(cfg, discard())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	items, err := c.ScoreBias(context.Background(), "text")
	if err != nil || len(items) != 1 {
		t.Fatalf("score bias: %v, %v", items, err)
	}
	if items[0].Score < 0 || items[0].Score > 1 {
		t.Errorf("mock score out of range: %v", items[0].Score)
	}

	out, _ := c.Rewrite(context.Background(), "answer", "Progressive")
	if out != "[Progressive] answer" {
		t.Errorf("rewrite: %q", out)
	}
}
