package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

// Module provides application configuration.
var Module = fx.Module("config", fx.Provide(Load))

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string

	HTTPAddr string

	CosmosEndpoint string
	CosmosKey      string
	CosmosDatabase string

	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIEmbeddingModel string
	EmbeddingDimensions  int
}

// Load reads configuration from environment variables and an optional .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_SERVICE", "careline"),
		AppVersion:  getenv("APP_VERSION", "0.1.0"),
		Environment: getenv("ENVIRONMENT", "development"),

		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		CosmosEndpoint: strings.TrimSpace(getenv("COSMOS_ENDPOINT", "")),
		CosmosKey:      strings.TrimSpace(getenv("COSMOS_KEY", "")),
		CosmosDatabase: getenv("COSMOS_DATABASE", "careline"),

		OpenAIAPIKey:         strings.TrimSpace(getenv("OPENAI_API_KEY", "")),
		OpenAIBaseURL:        strings.TrimSpace(getenv("OPENAI_BASE_URL", "")),
		OpenAIEmbeddingModel: getenv("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002"),
		EmbeddingDimensions:  getenvInt("EMBEDDING_DIMENSIONS", 1536),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
