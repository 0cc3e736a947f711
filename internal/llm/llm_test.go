package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFactoryUnsupportedProvider(t *testing.T) {
	_, err := NewProvider("bard", "some-model")
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestFactoryMock(t *testing.T) {
	p, err := NewProvider("mock", "")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "mock" {
		t.Errorf("Name = %q, want mock", p.Name())
	}
}

func TestMockProviderJSONMode(t *testing.T) {
	p := NewMockProvider()

	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "suggest titles"}},
		JSONMode: true,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var payload struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &payload); err != nil {
		t.Fatalf("JSON mode content is not valid JSON: %v", err)
	}
	if len(payload.Titles) != 5 {
		t.Errorf("titles = %d, want 5", len(payload.Titles))
	}
}

func TestMockProviderIsDeterministic(t *testing.T) {
	p := NewMockProvider()
	req := CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "write an outline for quantum computing"}},
	}

	a, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	b, err := p.Complete(context.Background(), req)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if a.Content != b.Content {
		t.Error("mock provider returned different content for identical requests")
	}
	if !strings.Contains(a.Content, "Outline") {
		t.Errorf("outline prompt should produce outline content, got %q", a.Content)
	}
}

func TestOllamaProviderComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		var req ollamaChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Stream {
			t.Error("stream should be false")
		}
		json.NewEncoder(w).Encode(ollamaChatResponse{
			Message:         ollamaMessage{Role: "assistant", Content: "generated text"},
			Model:           req.Model,
			Done:            true,
			DoneReason:      "stop",
			PromptEvalCount: 12,
			EvalCount:       34,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	resp, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "generated text" {
		t.Errorf("Content = %q, want generated text", resp.Content)
	}
	if resp.InputTokens != 12 || resp.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", resp.InputTokens, resp.OutputTokens)
	}
	if resp.Model != "llama3" {
		t.Errorf("Model = %q, want llama3", resp.Model)
	}
}

func TestOllamaProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3")
	_, err := p.Complete(context.Background(), CompletionRequest{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
