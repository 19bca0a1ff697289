package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/unmask/pkg/openapi"
	"github.com/JaimeStill/unmask/pkg/routes"
)

func ok(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test", "1.0.0")

	routes.Register(mux, "/api", spec, routes.Group{
		Prefix: "/sessions",
		Tags:   []string{"Sessions"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: ok("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "GET", Pattern: "/{id}", Handler: ok("find"), OpenAPI: &openapi.Operation{Summary: "Find"}},
			{Method: "DELETE", Pattern: "/{id}", Handler: ok("delete")},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/prompts",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: ok("prompts"), OpenAPI: &openapi.Operation{Summary: "Prompts"}},
				},
			},
		},
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/sessions", "list"},
		{"GET", "/sessions/abc", "find"},
		{"DELETE", "/sessions/abc", "delete"},
		{"GET", "/sessions/abc/prompts", "prompts"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Body.String() != tt.want {
				t.Errorf("body: got %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}

	item, ok := spec.Paths["/api/sessions/{id}"]
	if !ok || item.Get == nil {
		t.Fatal("expected GET /api/sessions/{id} in spec")
	}
	if item.Delete != nil {
		t.Error("routes without metadata should not be documented")
	}
	if len(item.Get.Tags) != 1 || item.Get.Tags[0] != "Sessions" {
		t.Errorf("tags: got %v", item.Get.Tags)
	}

	child, ok := spec.Paths["/api/sessions/{id}/prompts"]
	if !ok || child.Get == nil {
		t.Fatal("expected child path in spec")
	}
	if len(child.Get.Tags) != 1 || child.Get.Tags[0] != "Sessions" {
		t.Errorf("child tags should inherit parent: got %v", child.Get.Tags)
	}
}

func TestRegisterNilSpec(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, routes.Group{
		Prefix: "/ping",
		Routes: []routes.Route{{Method: "GET", Pattern: "", Handler: ok("pong"), OpenAPI: &openapi.Operation{}}},
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Body.String() != "pong" {
		t.Errorf("body: got %q", rec.Body.String())
	}
}
