package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to paperdesk! Let's configure your workspace.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"openai", "ollama", "mock (offline fallbacks only)"},
	}
	providerIdx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	providers := []ProviderType{ProviderOpenAI, ProviderOllama, ProviderMock}
	cfg.Provider = providers[providerIdx]
	cfg.EmbeddingProvider = cfg.Provider

	preset := GetPreset(cfg.Provider)
	cfg.Model = preset.Model
	cfg.EmbeddingModel = preset.EmbeddingModel

	// 2. Author details for the LaTeX preamble.
	authorPrompt := promptui.Prompt{
		Label:   "Author name",
		Default: "",
	}
	author, err := authorPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("author prompt: %w", err)
	}
	cfg.Author = author

	institutionPrompt := promptui.Prompt{
		Label:   "Institution",
		Default: "",
	}
	institution, err := institutionPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("institution prompt: %w", err)
	}
	cfg.Institution = institution

	// 3. Citation style.
	stylePrompt := promptui.Select{
		Label: "Citation style",
		Items: []string{"apa", "mla", "chicago", "ieee"},
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("citation style selection: %w", err)
	}
	cfg.CitationStyle = style

	if err := cfg.Save(path); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" {
		fmt.Printf("Remember to set %s before running serve or draft.\n", envVar)
	}

	return cfg, nil
}
