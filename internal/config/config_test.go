package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("Search.MaxResults = %d, want 10", cfg.Search.MaxResults)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".paperdesk.yml")
	content := `provider: ollama
model: llama3
author: Ada Lovelace
citation_style: ieee
search:
  max_results: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOllama {
		t.Errorf("Provider = %q, want ollama", cfg.Provider)
	}
	if cfg.Author != "Ada Lovelace" {
		t.Errorf("Author = %q, want Ada Lovelace", cfg.Author)
	}
	if cfg.CitationStyle != "ieee" {
		t.Errorf("CitationStyle = %q, want ieee", cfg.CitationStyle)
	}
	if cfg.Search.MaxResults != 3 {
		t.Errorf("Search.MaxResults = %d, want 3", cfg.Search.MaxResults)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PAPERDESK_PROVIDER", "mock")
	t.Setenv("PAPERDESK_MODEL", "mock-llm")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderMock {
		t.Errorf("Provider = %q, want mock", cfg.Provider)
	}
	if cfg.Model != "mock-llm" {
		t.Errorf("Model = %q, want mock-llm", cfg.Model)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"empty data dir", func(c *Config) { c.DataDir = "" }},
		{"unknown citation style", func(c *Config) { c.CitationStyle = "harvard" }},
		{"negative max results", func(c *Config) { c.Search.MaxResults = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".paperdesk.yml")

	cfg := DefaultConfig()
	cfg.Author = "Grace Hopper"
	cfg.Provider = ProviderOllama
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Author != "Grace Hopper" {
		t.Errorf("Author = %q, want Grace Hopper", loaded.Author)
	}
	if loaded.Provider != ProviderOllama {
		t.Errorf("Provider = %q, want ollama", loaded.Provider)
	}
}
