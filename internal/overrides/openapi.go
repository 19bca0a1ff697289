package overrides

import "github.com/JaimeStill/unmask/pkg/openapi"

var ops = struct {
	Record, FindByPrompt *openapi.Operation
}{
	Record: &openapi.Operation{
		Summary:     "Record a human override",
		Description: "Each prompt accepts one override. Tags are trimmed and de-duplicated in order.",
		RequestBody: openapi.RequestBodyJSON("HumanOverrideCreate"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Recorded override", "HumanOverride"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			422: openapi.ResponseRef("UnprocessableEntity"),
		},
	},
	FindByPrompt: &openapi.Operation{
		Summary:    "Find a prompt's human override",
		Parameters: []*openapi.Parameter{openapi.QueryParam("prompt_id", "string", "Prompt ID", true)},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Override", "HumanOverride"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by override operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"HumanOverride": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":             {Type: "string", Format: "uuid"},
				"prompt_id":      {Type: "string", Format: "uuid"},
				"human_response": {Type: "string"},
				"justification":  {Type: "string"},
				"tags":           {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"created_at":     {Type: "string", Format: "date-time"},
			},
		},
		"HumanOverrideCreate": {
			Type:     "object",
			Required: []string{"prompt_id", "human_response"},
			Properties: map[string]*openapi.Schema{
				"prompt_id":      {Type: "string", Format: "uuid"},
				"human_response": {Type: "string"},
				"justification":  {Type: "string"},
				"tags":           {Type: "array", Items: &openapi.Schema{Type: "string"}, Example: []string{"factual", "tone"}},
			},
		},
	}
}
