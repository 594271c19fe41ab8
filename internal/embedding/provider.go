// Package embedding wraps the external embedding service. The engine only
// consumes a vector given a text; when no provider is configured the zero
// vector stands in so retrieval keeps working instead of failing.
package embedding

import (
	"context"
	"fmt"

	"github.com/meridianmobile/careline/internal/config"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the embedding provider.
var Module = fx.Module("embedding", fx.Provide(NewProvider))

// Provider converts free text into a fixed-length vector.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
}

// NewProvider returns an OpenAI-backed provider when an API key is
// configured, otherwise a provider that always yields the zero vector.
func NewProvider(cfg config.Config, log *zap.Logger) Provider {
	dims := cfg.EmbeddingDimensions
	if dims <= 0 {
		dims = 1536
	}

	if cfg.OpenAIAPIKey == "" {
		log.Named("embedding").Warn("no embedding credentials configured, falling back to zero vectors")
		return &zeroProvider{dims: dims}
	}

	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  openai.EmbeddingModel(cfg.OpenAIEmbeddingModel),
		dims:   dims,
	}
}

type openAIProvider struct {
	client *openai.Client
	model  openai.EmbeddingModel
	dims   int
}

func (p *openAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: p.model,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding: empty response for model %s", p.model)
	}
	return resp.Data[0].Embedding, nil
}

func (p *openAIProvider) Dimensions() int { return p.dims }

type zeroProvider struct {
	dims int
}

func (p *zeroProvider) Embed(_ context.Context, _ string) ([]float32, error) {
	return make([]float32, p.dims), nil
}

func (p *zeroProvider) Dimensions() int { return p.dims }
