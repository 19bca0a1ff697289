package sessions

import "github.com/JaimeStill/unmask/pkg/openapi"

var ops = struct {
	List, Create, Find, Delete *openapi.Operation
}{
	List: &openapi.Operation{
		Summary: "List sessions",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Match model or domain", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields, - prefix for descending", false),
			openapi.QueryParam("model_used", "string", "Exact model filter", false),
			openapi.QueryParam("domain", "string", "Domain substring filter", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of sessions", "SessionPage"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create a session",
		RequestBody: openapi.RequestBodyJSON("SessionCreate"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a session",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Session ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete a session",
		Description: "Removes the session with every prompt, insight, cross-exam turn, rewrite, and override beneath it.",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Session ID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Deleted"},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by session operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Session": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"model_used": {Type: "string"},
				"domain":     {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"SessionCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"model_used": {Type: "string", Example: "gpt-4o-mini"},
				"domain":     {Type: "string", Example: "politics"},
			},
		},
		"SessionPage": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Session")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
