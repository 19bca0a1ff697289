package perspectives

import "github.com/JaimeStill/unmask/pkg/openapi"

var ops = struct {
	Reframe, ListByPrompt, Find *openapi.Operation
}{
	Reframe: &openapi.Operation{
		Summary:     "Reframe a prompt",
		RequestBody: openapi.RequestBodyJSON("PerspectiveCreate"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored rewrite", "PerspectiveRewrite"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	ListByPrompt: &openapi.Operation{
		Summary:    "List a prompt's rewrites",
		Parameters: []*openapi.Parameter{openapi.QueryParam("prompt_id", "string", "Prompt ID", true)},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Rewrites in insertion order", "PerspectiveRewrite"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a rewrite",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Rewrite ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Rewrite", "PerspectiveRewrite"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by perspective operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"PerspectiveRewrite": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                  {Type: "string", Format: "uuid"},
				"prompt_id":           {Type: "string", Format: "uuid"},
				"perspective":         {Type: "string"},
				"ai_rephrased_output": {Type: "string"},
				"created_at":          {Type: "string", Format: "date-time"},
			},
		},
		"PerspectiveCreate": {
			Type:     "object",
			Required: []string{"prompt_id", "perspective"},
			Properties: map[string]*openapi.Schema{
				"prompt_id":   {Type: "string", Format: "uuid"},
				"perspective": {Type: "string", Example: "Conservative"},
			},
		},
	}
}
