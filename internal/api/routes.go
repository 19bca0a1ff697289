package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/unmask/internal/config"
	"github.com/JaimeStill/unmask/internal/crossexams"
	"github.com/JaimeStill/unmask/internal/insights"
	"github.com/JaimeStill/unmask/internal/overrides"
	"github.com/JaimeStill/unmask/internal/perspectives"
	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/reports"
	"github.com/JaimeStill/unmask/internal/sessions"
	"github.com/JaimeStill/unmask/pkg/openapi"
	"github.com/JaimeStill/unmask/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) error {
	doc := openapi.FromConfig(&cfg.API.OpenAPI, cfg.Version)
	doc.AddServer(cfg.API.BasePath)

	for _, schemas := range []map[string]*openapi.Schema{
		sessions.Schemas(),
		prompts.Schemas(),
		insights.Schemas(),
		crossexams.Schemas(),
		perspectives.Schemas(),
		overrides.Schemas(),
		reports.Schemas(),
	} {
		doc.Components.AddSchemas(schemas)
	}

	routes.Register(
		mux,
		cfg.API.BasePath,
		doc,
		domain.Sessions.Handler().Routes(),
		domain.Prompts.Handler().Routes(),
		domain.Insights.Handler().Routes(),
		domain.CrossExams.Handler().Routes(),
		domain.Perspectives.Handler().Routes(),
		domain.Overrides.Handler().Routes(),
		domain.Reports.Handler().Routes(),
	)

	data, err := openapi.MarshalJSON(doc)
	if err != nil {
		return fmt.Errorf("marshal openapi document: %w", err)
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(data))

	return nil
}
