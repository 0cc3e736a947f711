package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
	ProviderMock   ProviderType = "mock"
)

// Config is the top-level paperdesk configuration, corresponding to .paperdesk.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	DataDir           string       `yaml:"data_dir" koanf:"data_dir"`
	Author            string       `yaml:"author" koanf:"author"`
	Institution       string       `yaml:"institution" koanf:"institution"`
	CitationStyle     string       `yaml:"citation_style" koanf:"citation_style"`
	Search            SearchConfig `yaml:"search" koanf:"search"`
}

// SearchConfig holds literature-search settings.
type SearchConfig struct {
	MaxResults int  `yaml:"max_results" koanf:"max_results"`
	Offline    bool `yaml:"offline" koanf:"offline"`
}
