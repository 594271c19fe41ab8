package service

import (
	"context"
	"errors"
	"testing"

	"github.com/meridianmobile/careline/internal/knowledge/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	text   string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.text = text
	return f.vector, f.err
}

func (f *fakeEmbedder) Dimensions() int { return 4 }

type fakeRepo struct {
	docs    []domain.Document
	vector  []float32
	topK    int
	filters map[string]string
}

func (f *fakeRepo) Search(_ context.Context, vector []float32, topK int, filters map[string]string) ([]domain.Document, error) {
	f.vector = vector
	f.topK = topK
	f.filters = filters
	return f.docs, nil
}

func newService(embedder *fakeEmbedder, repo *fakeRepo) domain.Service {
	return New(Params{Log: zap.NewNop(), Embedder: embedder, Repo: repo})
}

func TestSearchPassesEmbeddingAndFilters(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2, 0.3, 0.4}}
	repo := &fakeRepo{docs: []domain.Document{{Title: "Roaming guide", DocType: "faq"}}}
	svc := newService(embedder, repo)

	docs, err := svc.Search(context.Background(), domain.SearchRequest{
		Query:   "how do I enable roaming",
		TopK:    5,
		Filters: map[string]string{"doc_type": "faq"},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Roaming guide", docs[0].Title)
	assert.Equal(t, embedder.vector, repo.vector)
	assert.Equal(t, 5, repo.topK)
	assert.Equal(t, map[string]string{"doc_type": "faq"}, repo.filters)
}

func TestSearchDefaultsTopK(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{1, 0, 0, 0}}
	repo := &fakeRepo{}
	svc := newService(embedder, repo)

	_, err := svc.Search(context.Background(), domain.SearchRequest{Query: "billing"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTopK, repo.topK)
}

func TestSearchStripsNewlinesBeforeEmbedding(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{1, 0, 0, 0}}
	repo := &fakeRepo{}
	svc := newService(embedder, repo)

	_, err := svc.Search(context.Background(), domain.SearchRequest{Query: "line one\nline two"})
	require.NoError(t, err)
	assert.Equal(t, "line one line two", embedder.text)
}

func TestSearchFallsBackToZeroVector(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("upstream timeout")}
	repo := &fakeRepo{}
	svc := newService(embedder, repo)

	_, err := svc.Search(context.Background(), domain.SearchRequest{Query: "outage"})
	require.NoError(t, err)
	assert.Equal(t, make([]float32, 4), repo.vector)
}
