package repository

import (
	"context"
	"sort"

	"github.com/meridianmobile/careline/internal/knowledge/domain"
	"github.com/meridianmobile/careline/internal/store"
)

const vectorField = "content_vector"

type repository struct {
	store *store.Client
}

// Provide returns the Cosmos-backed knowledge repository. Ranking relies
// on the container's vector index; there is no client-side fallback.
func Provide(client *store.Client) domain.Repository {
	return &repository{store: client}
}

func (r *repository) Search(ctx context.Context, vector []float32, topK int, filters map[string]string) ([]domain.Document, error) {
	q := store.Query{
		Projection: []string{"title", "doc_type", "content"},
		Top:        topK,
		VectorRank: &store.VectorRank{Field: vectorField, Vector: vector},
	}

	// Deterministic predicate order keeps the generated SQL stable.
	fields := make([]string, 0, len(filters))
	for field := range filters {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		q.Filters = append(q.Filters, store.Eq(field, filters[field]))
	}

	return store.QueryItems[domain.Document](ctx, r.store, store.ContainerKnowledgeDocuments, q)
}
