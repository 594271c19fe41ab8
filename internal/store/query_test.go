package store

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSelectStar(t *testing.T) {
	sql, params, err := Query{}.Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM c", sql)
	assert.Empty(t, params)
}

func TestBuildProjectionAndFilters(t *testing.T) {
	q := Query{
		Projection: []string{"invoice_id", "amount", "status"},
		Filters: []Filter{
			Eq("subscription_id", int64(802)),
			Neq("status", "paid"),
		},
		OrderBy: "invoice_date",
		Desc:    true,
	}

	sql, params, err := q.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT c.invoice_id, c.amount, c.status FROM c"+
			" WHERE c.subscription_id = @p0 AND c.status != @p1"+
			" ORDER BY c.invoice_date DESC",
		sql)
	require.Len(t, params, 2)
	assert.Equal(t, azcosmos.QueryParameter{Name: "@p0", Value: int64(802)}, params[0])
	assert.Equal(t, azcosmos.QueryParameter{Name: "@p1", Value: "paid"}, params[1])
}

func TestBuildTopBindsFirstParameter(t *testing.T) {
	q := Query{
		Filters: []Filter{Gte("usage_date", "2024-01-01"), Lte("usage_date", "2024-01-31")},
		OrderBy: "usage_date",
		Top:     10,
	}

	sql, params, err := q.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT TOP @top * FROM c"+
			" WHERE c.usage_date >= @p0 AND c.usage_date <= @p1"+
			" ORDER BY c.usage_date",
		sql)
	require.Len(t, params, 3)
	assert.Equal(t, "@top", params[0].Name)
	assert.Equal(t, 10, params[0].Value)
}

func TestBuildVectorRank(t *testing.T) {
	vector := []float32{0.5, 0.25}
	q := Query{
		Projection: []string{"title", "content"},
		Top:        3,
		VectorRank: &VectorRank{Field: "content_vector", Vector: vector},
	}

	sql, params, err := q.Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT TOP @top c.title, c.content FROM c"+
			" ORDER BY VectorDistance(c.content_vector, @embedding)",
		sql)
	require.Len(t, params, 2)
	assert.Equal(t, "@embedding", params[1].Name)
	assert.Equal(t, vector, params[1].Value)
}

// Field names may come from request bodies, so Build must refuse any name
// that is not a bare identifier instead of splicing it into the SQL.
func TestBuildRejectsNonIdentifierFields(t *testing.T) {
	cases := []struct {
		name string
		q    Query
	}{
		{"filter with predicate text", Query{
			Filters: []Filter{Eq("doc_type = @p0 OR 1=1 OR c.x", "faq")},
		}},
		{"filter with quote", Query{
			Filters: []Filter{Eq("doc_type'", "faq")},
		}},
		{"projection", Query{
			Projection: []string{"title, c.secret"},
		}},
		{"order by", Query{
			OrderBy: "usage_date; DROP",
		}},
		{"vector field", Query{
			VectorRank: &VectorRank{Field: "content_vector)", Vector: []float32{1}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, params, err := tc.q.Build()
			assert.ErrorIs(t, err, ErrInvalidField)
			assert.Empty(t, sql)
			assert.Empty(t, params)
		})
	}
}
