package query

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// condition holds a WHERE fragment with ? markers, numbered at build time.
type condition struct {
	clause string
	args   []any
}

// SortField is one ORDER BY entry keyed by logical field name.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// Builder assembles SELECT statements with automatic $N numbering.
type Builder struct {
	projection  *ProjectionMap
	conditions  []condition
	orderBy     []SortField
	defaultSort []SortField
}

// NewBuilder creates a Builder over projection with optional default ordering.
func NewBuilder(projection *ProjectionMap, defaultSort ...SortField) *Builder {
	return &Builder{
		projection:  projection,
		defaultSort: defaultSort,
	}
}

// ParseSortFields parses "name,-created_at" into sort fields. A leading "-"
// means descending.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, desc := strings.CutPrefix(part, "-")
		fields = append(fields, SortField{Field: name, Descending: desc})
	}
	return fields
}

// Build returns the SELECT with current conditions and ordering.
func (b *Builder) Build() (string, []any) {
	where, args := b.where()
	return "SELECT " + b.projection.Columns() + " FROM " + b.projection.From() + where + b.order(), args
}

// BuildCount returns a COUNT(*) over the current conditions.
func (b *Builder) BuildCount() (string, []any) {
	where, args := b.where()
	return "SELECT COUNT(*) FROM " + b.projection.From() + where, args
}

// BuildPage returns the ordered SELECT restricted to one page.
func (b *Builder) BuildPage(page, pageSize int) (string, []any) {
	sql, args := b.Build()
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", sql, pageSize, (page-1)*pageSize), args
}

// BuildSingle returns a SELECT for the row whose idField equals id.
func (b *Builder) BuildSingle(idField string, id any) (string, []any) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = $1",
		b.projection.Columns(),
		b.projection.From(),
		b.projection.Column(idField),
	)
	return sql, []any{id}
}

// OrderByFields overrides the default ordering. Unmapped fields are dropped
// so client-supplied sort keys never reach the SQL text.
func (b *Builder) OrderByFields(fields []SortField) *Builder {
	b.orderBy = b.orderBy[:0]
	for _, f := range fields {
		if b.projection.Has(f.Field) {
			b.orderBy = append(b.orderBy, f)
		}
	}
	return b
}

// WhereEquals adds col = value. No-op for nil values.
func (b *Builder) WhereEquals(field string, value any) *Builder {
	if isNil(value) {
		return b
	}
	return b.add(b.projection.Column(field)+" = ?", value)
}

// WhereContains adds a case-insensitive substring match. No-op for nil or empty values.
func (b *Builder) WhereContains(field string, value *string) *Builder {
	if value == nil || *value == "" {
		return b
	}
	return b.add(like(b.projection.Column(field)), "%"+*value+"%")
}

// WhereSearch adds a case-insensitive substring match OR'd across fields.
func (b *Builder) WhereSearch(search *string, fields ...string) *Builder {
	if search == nil || *search == "" || len(fields) == 0 {
		return b
	}

	clauses := make([]string, len(fields))
	args := make([]any, len(fields))
	for i, field := range fields {
		clauses[i] = like(b.projection.Column(field))
		args[i] = "%" + *search + "%"
	}
	return b.add("("+strings.Join(clauses, " OR ")+")", args...)
}

// like is portable across PostgreSQL and SQLite, which lacks ILIKE.
func like(col string) string {
	return "LOWER(" + col + ") LIKE LOWER(?)"
}

func (b *Builder) add(clause string, args ...any) *Builder {
	b.conditions = append(b.conditions, condition{clause: clause, args: args})
	return b
}

func (b *Builder) order() string {
	fields := b.orderBy
	if len(fields) == 0 {
		fields = b.defaultSort
	}
	if len(fields) == 0 {
		return ""
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		dir := " ASC"
		if f.Descending {
			dir = " DESC"
		}
		parts[i] = b.projection.Column(f.Field) + dir
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func (b *Builder) where() (string, []any) {
	if len(b.conditions) == 0 {
		return "", nil
	}

	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(" WHERE ")

	for i, cond := range b.conditions {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		n := 0
		for _, r := range cond.clause {
			if r == '?' && n < len(cond.args) {
				args = append(args, cond.args[n])
				sb.WriteString("$" + strconv.Itoa(len(args)))
				n++
				continue
			}
			sb.WriteRune(r)
		}
	}

	return sb.String(), args
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
