// Package query builds portable SELECT statements from projection maps.
// Generated SQL uses $N placeholders, which both PostgreSQL (pgx) and
// SQLite (go-sqlite3) accept.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view property names to alias-qualified columns for one table.
type ProjectionMap struct {
	schema     string
	table      string
	alias      string
	columns    map[string]string
	columnList []string
}

// NewProjectionMap creates a ProjectionMap. An empty schema leaves the table
// unqualified so the same SQL runs against SQLite.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema:  schema,
		table:   table,
		alias:   alias,
		columns: make(map[string]string),
	}
}

// Project maps column to viewName.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	qualified := p.alias + "." + column
	p.columns[viewName] = qualified
	p.columnList = append(p.columnList, qualified)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// From returns the table reference with alias for a FROM clause.
func (p *ProjectionMap) From() string {
	if p.schema == "" {
		return fmt.Sprintf("%s %s", p.table, p.alias)
	}
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}

// Column returns the qualified column for viewName, or viewName when unmapped.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.columns[viewName]; ok {
		return col
	}
	return viewName
}

// Has reports whether viewName is mapped.
func (p *ProjectionMap) Has(viewName string) bool {
	_, ok := p.columns[viewName]
	return ok
}

// Columns returns all mapped columns as a comma-separated list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columnList, ", ")
}
