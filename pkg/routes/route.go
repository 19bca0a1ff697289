// Package routes declares HTTP routes as data so that domain handlers can be
// registered on a ServeMux and described in the OpenAPI document together.
package routes

import (
	"net/http"

	"github.com/JaimeStill/unmask/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler, with optional
// OpenAPI metadata.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
