package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/unmask/pkg/openapi"
)

// Group organizes routes under a common prefix with shared tags.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from groups to mux. When spec is non-nil, every
// route carrying OpenAPI metadata is added to it under basePath.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, basePath, spec, "", nil, group)
	}
}

func registerGroup(mux *http.ServeMux, basePath string, spec *openapi.Spec, parentPrefix string, parentTags []string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	tags := group.Tags
	if len(tags) == 0 {
		tags = parentTags
	}

	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+fullPrefix+route.Pattern, route.Handler)

		if spec != nil && route.OpenAPI != nil {
			op := *route.OpenAPI
			if len(op.Tags) == 0 {
				op.Tags = tags
			}
			spec.AddOperation(openAPIPath(basePath+fullPrefix+route.Pattern), route.Method, &op)
		}
	}

	for _, child := range group.Children {
		registerGroup(mux, basePath, spec, fullPrefix, tags, child)
	}
}

// openAPIPath strips ServeMux-only pattern syntax such as {$} and {rest...}.
func openAPIPath(pattern string) string {
	pattern = strings.ReplaceAll(pattern, "{$}", "")
	pattern = strings.ReplaceAll(pattern, "...}", "}")
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}
	return pattern
}
