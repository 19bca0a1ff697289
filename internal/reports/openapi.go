package reports

import "github.com/JaimeStill/unmask/pkg/openapi"

var (
	sessionParam = openapi.QueryParam("session_id", "string", "Session ID", true)
	formatParam  = openapi.QueryParam("format", "string", "json (default) or pdf", false)
)

var ops = struct {
	Generate, Snapshot, FindSnapshot *openapi.Operation
}{
	Generate: &openapi.Operation{
		Summary:     "Generate a session report",
		Description: "Assembles the session's prompts with their insights, cross-examinations, rewrites, and override.",
		Parameters:  []*openapi.Parameter{sessionParam, formatParam},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Rendered report",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: openapi.SchemaRef("Report")},
					"application/pdf":  {Schema: &openapi.Schema{Type: "string", Format: "binary"}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Snapshot: &openapi.Operation{
		Summary:     "Snapshot a session report",
		Description: "Stores the assembled report and archives the rendered document (pdf by default) when blob storage is enabled.",
		Parameters:  []*openapi.Parameter{sessionParam, formatParam},
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored snapshot", "ReportSnapshot"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	FindSnapshot: &openapi.Operation{
		Summary:    "Find a session's report snapshot",
		Parameters: []*openapi.Parameter{sessionParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Snapshot", "ReportSnapshot"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by report operations.
func Schemas() map[string]*openapi.Schema {
	array := func(items *openapi.Schema) *openapi.Schema {
		return &openapi.Schema{Type: "array", Items: items}
	}

	return map[string]*openapi.Schema{
		"Report": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"session_id": {Type: "string", Format: "uuid"},
				"model_used": {Type: "string", Description: "null when absent"},
				"domain":     {Type: "string", Description: "null when absent"},
				"created_at": {Type: "string", Format: "date-time"},
				"prompts":    array(openapi.SchemaRef("PromptReport")),
			},
		},
		"PromptReport": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"prompt_text": {Type: "string"},
				"ai_response": {Type: "string", Description: "null when absent"},
				"bias_insights": array(&openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"category": {Type: "string"},
						"score":    {Type: "number"},
						"summary":  {Type: "string", Description: "null when absent"},
					},
				}),
				"cross_exams": array(&openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"user_question": {Type: "string"},
						"ai_response":   {Type: "string"},
					},
				}),
				"perspectives": array(&openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"perspective":         {Type: "string"},
						"ai_rephrased_output": {Type: "string"},
					},
				}),
				"human_override": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"human_response": {Type: "string"},
						"justification":  {Type: "string", Description: "null when absent"},
						"tags":           array(&openapi.Schema{Type: "string"}),
					},
				},
			},
		},
		"ReportSnapshot": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"session_id":   {Type: "string", Format: "uuid"},
				"report":       openapi.SchemaRef("Report"),
				"archive_key":  {Type: "string", Description: "null when absent"},
				"generated_at": {Type: "string", Format: "date-time"},
			},
		},
	}
}
