package openapi_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/unmask/pkg/openapi"
)

func TestFromConfig(t *testing.T) {
	cfg := &openapi.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	spec := openapi.FromConfig(cfg, "0.1.0")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s", spec.OpenAPI)
	}
	if spec.Info.Title != "UnmaskAI API" {
		t.Errorf("title: got %s", spec.Info.Title)
	}
	if spec.Info.Description == "" {
		t.Error("description should default")
	}
	for _, name := range []string{"BadRequest", "NotFound", "Conflict", "UnprocessableEntity", "InternalError"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing component response %s", name)
		}
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Override")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.Title != "Override" {
		t.Errorf("title: got %s, want Override", cfg.Title)
	}
}

func TestAddOperation(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	spec.AddOperation("/sessions", "get", &openapi.Operation{Summary: "list"})
	spec.AddOperation("/sessions", "POST", &openapi.Operation{Summary: "create"})
	spec.AddOperation("/sessions", "PATCH", &openapi.Operation{Summary: "ignored"})

	item := spec.Paths["/sessions"]
	if item == nil {
		t.Fatal("path not added")
	}
	if item.Get == nil || item.Get.Summary != "list" {
		t.Error("GET operation not set")
	}
	if item.Post == nil || item.Post.Summary != "create" {
		t.Error("POST operation not set")
	}
}

func TestServeSpec(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	spec.AddServer("http://localhost:8080")
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest("GET", "/api/openapi.json", nil))

	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type: got %s", ct)
	}

	var decoded map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", decoded["openapi"])
	}
}

func TestRefs(t *testing.T) {
	if got := openapi.SchemaRef("Session").Ref; got != "#/components/schemas/Session" {
		t.Errorf("schema ref: got %s", got)
	}
	if got := openapi.ResponseRef("NotFound").Ref; got != "#/components/responses/NotFound" {
		t.Errorf("response ref: got %s", got)
	}
	arr := openapi.ResponseArray("list", "Insight")
	if arr.Content["application/json"].Schema.Items.Ref != "#/components/schemas/Insight" {
		t.Error("array response should reference item schema")
	}
}
