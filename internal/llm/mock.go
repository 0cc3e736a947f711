package llm

import (
	"context"
	"strings"
)

// MockProvider is a deterministic offline provider. It produces plausible
// placeholder completions keyed off the prompt content, so the drafting
// pipeline stays usable with no network and no API keys.
type MockProvider struct{}

// NewMockProvider creates a deterministic mock provider.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Name() string {
	return "mock"
}

func (p *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	_ = ctx

	var prompt string
	for _, msg := range req.Messages {
		if msg.Role == RoleUser {
			prompt = msg.Content
		}
	}

	content := "Deterministic mock completion."
	lower := strings.ToLower(prompt)
	switch {
	case req.JSONMode:
		content = `{"titles": ["Mock Title One", "Mock Title Two", "Mock Title Three", "Mock Title Four", "Mock Title Five"]}`
	case strings.Contains(lower, "outline"):
		content = "# Mock Outline\n\n## Introduction\n- Deterministic bullet\n- Another bullet\n"
	case strings.Contains(lower, "section"):
		content = "This is deterministic mock section text produced without a model."
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  len(prompt) / 4,
		OutputTokens: len(content) / 4,
		Model:        "mock-llm",
		FinishReason: "stop",
	}, nil
}
