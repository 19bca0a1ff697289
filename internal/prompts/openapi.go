package prompts

import "github.com/JaimeStill/unmask/pkg/openapi"

var ops = struct {
	Analyze, Find, ListBySession *openapi.Operation
}{
	Analyze: &openapi.Operation{
		Summary:     "Analyze a prompt",
		Description: "Sends the prompt to the collaborator and stores it with the answer.",
		RequestBody: openapi.RequestBodyJSON("PromptCreate"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Stored prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("UnprocessableEntity"),
			500: openapi.ResponseRef("InternalError"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find a prompt",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Prompt ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	ListBySession: &openapi.Operation{
		Summary:    "List a session's prompts",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Session ID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Prompts in creation order", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by prompt operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"session_id":  {Type: "string", Format: "uuid"},
				"prompt_text": {Type: "string"},
				"ai_response": {Type: "string"},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"PromptCreate": {
			Type:     "object",
			Required: []string{"session_id", "prompt_text"},
			Properties: map[string]*openapi.Schema{
				"session_id":  {Type: "string", Format: "uuid"},
				"prompt_text": {Type: "string", Example: "Is X biased?"},
			},
		},
	}
}
