// Package domain contains the knowledge-base retrieval models.
package domain

import "context"

// DefaultTopK bounds a search when the caller does not say how many
// results they want.
const DefaultTopK = 3

// Document is the projected view of a knowledge article returned to
// callers. Raw distance scores stay server-side.
type Document struct {
	Title   string `json:"title"`
	DocType string `json:"doc_type"`
	Content string `json:"content"`
}

// SearchRequest ranks knowledge documents against a free-text query.
// Filters are ANDed equality predicates applied before ranking.
type SearchRequest struct {
	Query   string
	TopK    int
	Filters map[string]string
}

// Repository runs vector-ranked reads against the KnowledgeDocuments
// container.
type Repository interface {
	// Search returns at most topK documents ordered by ascending
	// distance between content_vector and the query vector.
	Search(ctx context.Context, vector []float32, topK int, filters map[string]string) ([]Document, error)
}

// Service exposes knowledge-base search.
type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]Document, error)
}
