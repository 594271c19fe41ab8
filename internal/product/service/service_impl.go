package service

import (
	"context"
	"strings"

	"github.com/meridianmobile/careline/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("product.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.List(ctx, strings.TrimSpace(category))
}

func (s *Service) GetByID(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}
	if product == nil {
		return domain.Product{}, domain.ErrNotFound
	}
	return *product, nil
}
