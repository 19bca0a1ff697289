package api

import (
	"github.com/JaimeStill/unmask/internal/crossexams"
	"github.com/JaimeStill/unmask/internal/insights"
	"github.com/JaimeStill/unmask/internal/overrides"
	"github.com/JaimeStill/unmask/internal/perspectives"
	"github.com/JaimeStill/unmask/internal/prompts"
	"github.com/JaimeStill/unmask/internal/reports"
	"github.com/JaimeStill/unmask/internal/sessions"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Sessions     sessions.System
	Prompts      prompts.System
	Insights     insights.System
	CrossExams   crossexams.System
	Perspectives perspectives.System
	Overrides    overrides.System
	Reports      reports.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	sessionsSystem := sessions.New(db, runtime.Logger, runtime.Pagination)
	promptsSystem := prompts.New(db, runtime.Runtime, sessionsSystem, runtime.Logger)

	d := &Domain{
		Sessions:     sessionsSystem,
		Prompts:      promptsSystem,
		Insights:     insights.New(db, runtime.Runtime, promptsSystem, runtime.Logger),
		CrossExams:   crossexams.New(db, runtime.Runtime, promptsSystem, runtime.Logger),
		Perspectives: perspectives.New(db, runtime.Runtime, promptsSystem, runtime.Logger),
		Overrides:    overrides.New(db, promptsSystem, runtime.Logger),
	}

	d.Reports = reports.New(
		db,
		&reports.Sources{
			Sessions:     d.Sessions,
			Prompts:      d.Prompts,
			Insights:     d.Insights,
			CrossExams:   d.CrossExams,
			Perspectives: d.Perspectives,
			Overrides:    d.Overrides,
		},
		runtime.Storage,
		runtime.Logger,
	)

	return d
}
