package openapi

import "maps"

func errorResponse(description string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {
				Schema: &Schema{
					Type: "object",
					Properties: map[string]*Schema{
						"error": {Type: "string", Description: "Error message"},
					},
				},
			},
		},
	}
}

// NewComponents creates Components with the shared page request schema and
// the error responses every handler may return.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)", Example: 1},
					"page_size": {Type: "integer", Description: "Results per page", Example: 20},
					"search":    {Type: "string", Description: "Search query"},
					"sort":      {Type: "string", Description: "Comma-separated sort fields, - prefix for descending"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":          errorResponse("Invalid request"),
			"NotFound":            errorResponse("Resource not found"),
			"Conflict":            errorResponse("Resource conflict"),
			"UnprocessableEntity": errorResponse("Collaborator output failed validation"),
			"InternalError":       errorResponse("Upstream or internal failure"),
		},
	}
}

// AddSchemas merges schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}
