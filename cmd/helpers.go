package cmd

import (
	"fmt"
	"os"

	"paperdesk/internal/config"
	"paperdesk/internal/embeddings"
	"paperdesk/internal/llm"
	"paperdesk/internal/search"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `paperdesk init` to create a config file", err)
	}
	return cfg, nil
}

// createProvider creates an LLM provider based on config settings.
func createProvider(cfg *config.Config) (llm.Provider, error) {
	return llm.NewProvider(string(cfg.Provider), cfg.Model)
}

// createEmbedder creates an embeddings.Embedder based on config.
func createEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}
	model := cfg.EmbeddingModel
	if model == "" {
		model = config.GetPreset(provider).EmbeddingModel
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	case config.ProviderMock:
		return embeddings.NewMockEmbedder(256), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", provider)
	}
}

// buildSearchService wires the search stack from config. A nil embedder
// drops semantic scoring but keeps lexical ranking.
func buildSearchService(cfg *config.Config, embedder embeddings.Embedder) *search.Service {
	var source search.Source
	if cfg.Search.Offline || cfg.Provider == config.ProviderMock {
		source = search.MockSource{}
	} else {
		source = search.NewArxivSource()
	}

	var index *search.SemanticIndex
	if embedder != nil {
		index = search.NewSemanticIndex(embedder)
	}

	return search.NewService(source, search.NewRanker(index), cfg.Search.MaxResults)
}
