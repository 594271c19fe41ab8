package service

import (
	"context"
	"strings"

	"github.com/meridianmobile/careline/internal/embedding"
	"github.com/meridianmobile/careline/internal/knowledge/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	Embedder embedding.Provider
	Repo     domain.Repository
}

type Service struct {
	log      *zap.Logger
	embedder embedding.Provider
	repo     domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("knowledge.service"),
		embedder: p.Embedder,
		repo:     p.Repo,
	}
}

// Search embeds the query text and asks the store for the closest
// documents. When the embedding collaborator fails, the zero vector stands
// in so the search degrades instead of erroring out.
func (s *Service) Search(ctx context.Context, req domain.SearchRequest) ([]domain.Document, error) {
	topK := req.TopK
	if topK <= 0 {
		topK = domain.DefaultTopK
	}

	query := strings.ReplaceAll(req.Query, "\n", " ")
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.log.Warn("embedding failed, searching with zero vector", zap.Error(err))
		vector = make([]float32, s.embedder.Dimensions())
	}

	return s.repo.Search(ctx, vector, topK, req.Filters)
}
