package insights

import "github.com/JaimeStill/unmask/pkg/openapi"

var zero, one = 0.0, 1.0

var ops = struct {
	Detect, ListByPrompt, Find *openapi.Operation
}{
	Detect: &openapi.Operation{
		Summary:     "Detect bias",
		Description: "Scores the response text by bias category and stores every validated score. Empty or out-of-range output stores nothing.",
		RequestBody: openapi.RequestBodyJSON("BiasInput"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseArray("Stored insights", "BiasInsight"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	ListByPrompt: &openapi.Operation{
		Summary:    "List a prompt's bias insights",
		Parameters: []*openapi.Parameter{openapi.QueryParam("prompt_id", "string", "Prompt ID", true)},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Insights in insertion order", "BiasInsight"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a bias insight",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Insight ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Insight", "BiasInsight"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by insight operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"BiasInsight": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Format: "uuid"},
				"prompt_id":       {Type: "string", Format: "uuid"},
				"category":        {Type: "string", Example: "Political"},
				"score":           {Type: "number", Minimum: &zero, Maximum: &one},
				"insight_summary": {Type: "string"},
				"created_at":      {Type: "string", Format: "date-time"},
			},
		},
		"BiasInput": {
			Type:     "object",
			Required: []string{"prompt_id", "ai_response"},
			Properties: map[string]*openapi.Schema{
				"prompt_id":   {Type: "string", Format: "uuid"},
				"ai_response": {Type: "string", Example: "Yes, somewhat."},
			},
		},
	}
}
