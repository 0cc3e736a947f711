package config

// ProviderPreset describes the models to use for a given provider.
type ProviderPreset struct {
	Model          string
	EmbeddingModel string
}

// providerPresets maps each provider to its default model choices.
var providerPresets = map[ProviderType]ProviderPreset{
	ProviderOpenAI: {Model: "gpt-4o-mini", EmbeddingModel: "text-embedding-3-small"},
	ProviderOllama: {Model: "llama3", EmbeddingModel: "nomic-embed-text"},
	ProviderMock:   {Model: "mock-llm", EmbeddingModel: "mock-embed"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderOpenAI,
		Model:             "gpt-4o-mini",
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		DataDir:           ".paperdesk",
		Author:            "",
		Institution:       "",
		CitationStyle:     "apa",
		Search: SearchConfig{
			MaxResults: 10,
			Offline:    false,
		},
	}
}

// GetPreset returns the model preset for the given provider.
// Returns the OpenAI preset if the provider is not recognized.
func GetPreset(provider ProviderType) ProviderPreset {
	if preset, ok := providerPresets[provider]; ok {
		return preset
	}
	return providerPresets[ProviderOpenAI]
}
