package crossexams

import "github.com/JaimeStill/unmask/pkg/openapi"

var ops = struct {
	Examine, Find, History *openapi.Operation
}{
	Examine: &openapi.Operation{
		Summary:     "Cross-examine a prompt's answer",
		Description: "Answers the question with the prompt, its answer, and the five most recent turns as context, then appends the turn.",
		RequestBody: openapi.RequestBodyJSON("CrossExamCreate"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored turn", "CrossExamTurn"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a cross-exam turn",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Turn ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Turn", "CrossExamTurn"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	History: &openapi.Operation{
		Summary:    "List a prompt's cross-exam thread",
		Parameters: []*openapi.Parameter{openapi.QueryParam("prompt_id", "string", "Prompt ID", true)},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Turns, oldest first", "CrossExamTurn"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas referenced by cross-examination operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"CrossExamTurn": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", Format: "uuid"},
				"prompt_id":     {Type: "string", Format: "uuid"},
				"user_question": {Type: "string"},
				"ai_response":   {Type: "string"},
				"created_at":    {Type: "string", Format: "date-time"},
			},
		},
		"CrossExamCreate": {
			Type:     "object",
			Required: []string{"prompt_id", "user_question"},
			Properties: map[string]*openapi.Schema{
				"prompt_id":     {Type: "string", Format: "uuid"},
				"user_question": {Type: "string", Example: "Why?"},
			},
		},
	}
}
