package sessions

import (
	"net/url"

	"github.com/JaimeStill/unmask/pkg/query"
	"github.com/JaimeStill/unmask/pkg/repository"
)

var projection = query.
	NewProjectionMap("", "sessions", "s").
	Project("id", "ID").
	Project("model_used", "ModelUsed").
	Project("domain", "Domain").
	Project("created_at", "CreatedAt")

var defaultSort = []query.SortField{
	{Field: "CreatedAt", Descending: true},
	{Field: "ID", Descending: true},
}

// Filters contains optional filtering criteria for session queries.
// Nil fields are ignored.
type Filters struct {
	ModelUsed *string `json:"model_used,omitempty"`
	Domain    *string `json:"domain,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ModelUsed", f.ModelUsed).
		WhereContains("Domain", f.Domain)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if m := values.Get("model_used"); m != "" {
		f.ModelUsed = &m
	}

	if d := values.Get("domain"); d != "" {
		f.Domain = &d
	}

	return f
}

func scanSession(s repository.Scanner) (Session, error) {
	var sess Session
	err := s.Scan(
		&sess.ID,
		&sess.ModelUsed,
		&sess.Domain,
		&sess.CreatedAt,
	)
	sess.CreatedAt = sess.CreatedAt.UTC()
	return sess, err
}
