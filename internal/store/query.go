package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
)

// ErrInvalidField marks a query that names a field outside the identifier
// grammar. Field names reach Build from callers, so they are validated
// here; values always travel as bound parameters.
var ErrInvalidField = errors.New("invalid field name")

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Query describes a single-container read: equality/range predicates ANDed
// together, an optional ORDER BY (scalar or vector distance) and an optional
// TOP N truncation. The store evaluates everything server-side.
type Query struct {
	// Projection is the SELECT list without the "c." prefix applied, e.g.
	// []string{"title", "doc_type", "content"}. Empty means SELECT *.
	Projection []string

	Filters []Filter

	OrderBy    string
	Desc       bool
	Top        int
	VectorRank *VectorRank
}

// Filter is one predicate on a document field. Op is a raw comparison
// operator ("=", ">=", "<=", "!=").
type Filter struct {
	Field string
	Op    string
	Value any
}

// VectorRank orders results by ascending distance between the named vector
// field and the supplied query vector. Mutually exclusive with OrderBy.
type VectorRank struct {
	Field  string
	Vector []float32
}

// Eq is shorthand for an equality filter.
func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: "=", Value: value}
}

// Gte is shorthand for a greater-or-equal filter.
func Gte(field string, value any) Filter {
	return Filter{Field: field, Op: ">=", Value: value}
}

// Lte is shorthand for a less-or-equal filter.
func Lte(field string, value any) Filter {
	return Filter{Field: field, Op: "<=", Value: value}
}

// Neq is shorthand for an inequality filter.
func Neq(field string, value any) Filter {
	return Filter{Field: field, Op: "!=", Value: value}
}

func checkField(field string) error {
	if !fieldNamePattern.MatchString(field) {
		return fmt.Errorf("store: %w: %q", ErrInvalidField, field)
	}
	return nil
}

// Build renders the query into Cosmos SQL plus bound parameters. Every
// field name is checked against the identifier grammar so caller-supplied
// names cannot smuggle predicate text into the statement.
func (q Query) Build() (string, []azcosmos.QueryParameter, error) {
	var sb strings.Builder
	var params []azcosmos.QueryParameter

	sb.WriteString("SELECT ")
	if q.Top > 0 {
		sb.WriteString("TOP @top ")
		params = append(params, azcosmos.QueryParameter{Name: "@top", Value: q.Top})
	}
	if len(q.Projection) == 0 {
		sb.WriteString("*")
	} else {
		for i, field := range q.Projection {
			if err := checkField(field); err != nil {
				return "", nil, err
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("c." + field)
		}
	}
	sb.WriteString(" FROM c")

	for i, f := range q.Filters {
		if err := checkField(f.Field); err != nil {
			return "", nil, err
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		name := fmt.Sprintf("@p%d", i)
		sb.WriteString("c." + f.Field + " " + f.Op + " " + name)
		params = append(params, azcosmos.QueryParameter{Name: name, Value: f.Value})
	}

	switch {
	case q.VectorRank != nil:
		if err := checkField(q.VectorRank.Field); err != nil {
			return "", nil, err
		}
		sb.WriteString(" ORDER BY VectorDistance(c." + q.VectorRank.Field + ", @embedding)")
		params = append(params, azcosmos.QueryParameter{Name: "@embedding", Value: q.VectorRank.Vector})
	case q.OrderBy != "":
		if err := checkField(q.OrderBy); err != nil {
			return "", nil, err
		}
		sb.WriteString(" ORDER BY c." + q.OrderBy)
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}

	return sb.String(), params, nil
}
