package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"paperdesk/internal/llm"
)

// Generator produces research paper content through an LLM provider, falling
// back to deterministic templates whenever the provider fails or returns an
// unusable payload. Every method resolves to a usable artifact; provider
// errors are logged, never propagated.
type Generator struct {
	provider llm.Provider
	model    string
}

// NewGenerator creates a Generator. provider may be nil, in which case every
// call takes the fallback path.
func NewGenerator(provider llm.Provider, model string) *Generator {
	return &Generator{provider: provider, model: model}
}

const systemPrompt = `You are an expert academic writer creating formal research paper content.
Write in a formal academic style with proper citations. Maintain objectivity
and precise language throughout. Use appropriate academic terminology while
ensuring clarity.`

// SuggestTitles returns five title suggestions for the topic. The provider is
// asked for a JSON payload; on any failure the template titles are returned.
func (g *Generator) SuggestTitles(ctx context.Context, topic string) []string {
	if g.provider == nil {
		return FallbackTitles(topic)
	}

	prompt := fmt.Sprintf(`Suggest five academic paper titles for a research paper on: %s.
Respond with a JSON object of the form {"titles": ["...", "...", "...", "...", "..."]}.`, topic)

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    g.messages(prompt),
		Temperature: 0.7,
		JSONMode:    true,
	})
	if err != nil {
		log.Printf("draft: title suggestion failed, using fallback: %v", err)
		return FallbackTitles(topic)
	}

	var payload struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &payload); err != nil || len(payload.Titles) == 0 {
		log.Printf("draft: malformed title payload, using fallback: %v", err)
		return FallbackTitles(topic)
	}
	if len(payload.Titles) > 5 {
		payload.Titles = payload.Titles[:5]
	}
	return payload.Titles
}

// GenerateOutline returns a markdown outline for the topic and paper type.
func (g *Generator) GenerateOutline(ctx context.Context, topic string, paperType PaperType) string {
	if g.provider == nil {
		return FallbackOutline(topic, paperType)
	}

	sections := make([]string, 0)
	for _, s := range PaperStructure(paperType) {
		sections = append(sections, SectionDisplayName(s))
	}

	prompt := fmt.Sprintf(`Create a markdown outline for a %s research paper on: %s.
Use "## " headings for exactly these sections, in order: %s.
Under each heading list 3-5 "- " bullet prompts describing what the section should cover.`,
		paperType, topic, strings.Join(sections, ", "))

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    g.messages(prompt),
		Temperature: 0.5,
	})
	if err != nil {
		log.Printf("draft: outline generation failed, using fallback: %v", err)
		return FallbackOutline(topic, paperType)
	}
	if strings.TrimSpace(resp.Content) == "" {
		log.Printf("draft: empty outline payload, using fallback")
		return FallbackOutline(topic, paperType)
	}
	return resp.Content
}

// GenerateSection returns the body text for one section of a paper.
func (g *Generator) GenerateSection(ctx context.Context, topic, section string, literature []LiteratureItem) string {
	if g.provider == nil {
		return fallbackSectionText(topic, section)
	}

	guideline := SectionGuidelines(section)
	prompt := fmt.Sprintf(`Write the %s section of a formal research paper on: %s.
Target length: %s words. Style: %s.
Cover: %s.%s`,
		SectionDisplayName(section), topic,
		guideline.WordCount, guideline.Style,
		strings.Join(guideline.Components, "; "),
		formatLiteratureForPrompt(literature))

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    g.messages(prompt),
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("draft: %s generation failed, using fallback: %v", section, err)
		return fallbackSectionText(topic, section)
	}
	if strings.TrimSpace(resp.Content) == "" {
		log.Printf("draft: empty %s payload, using fallback", section)
		return fallbackSectionText(topic, section)
	}
	return resp.Content
}

// ProgressFunc reports per-section progress during full-paper generation.
type ProgressFunc func(current, total int, section string)

// GeneratePaper generates every section of a paper in structure order.
// progress may be nil.
func (g *Generator) GeneratePaper(ctx context.Context, topic string, paperType PaperType, literature []LiteratureItem, progress ProgressFunc) *Paper {
	order := PaperStructure(paperType)
	sections := make(map[string]string, len(order))

	for i, section := range order {
		if progress != nil {
			progress(i+1, len(order), section)
		}
		sections[section] = g.GenerateSection(ctx, topic, section, literature)
	}

	return &Paper{
		Type:     paperType,
		Topic:    topic,
		Sections: sections,
		Order:    order,
	}
}

// RefineSection revises section text based on feedback. On provider failure
// the original text comes back unchanged.
func (g *Generator) RefineSection(ctx context.Context, text, feedback string) string {
	if g.provider == nil {
		log.Printf("draft: no provider configured, refine returns original text")
		return text
	}

	prompt := fmt.Sprintf(`You are an expert academic editor. Revise the following research paper
section based on this specific feedback:

FEEDBACK:
%s

ORIGINAL TEXT:
%s

Provide a revised version that addresses the feedback while maintaining
academic style and improving overall quality.`, feedback, text)

	resp, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Model:       g.model,
		Messages:    g.messages(prompt),
		Temperature: 0.4,
	})
	if err != nil {
		log.Printf("draft: refine failed, returning original text: %v", err)
		return text
	}
	if strings.TrimSpace(resp.Content) == "" {
		log.Printf("draft: empty refine payload, returning original text")
		return text
	}
	return resp.Content
}

func (g *Generator) messages(prompt string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: prompt},
	}
}

// formatLiteratureForPrompt renders up to ten literature items for inclusion
// in a prompt.
func formatLiteratureForPrompt(literature []LiteratureItem) string {
	if len(literature) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nKey literature:\n")
	for i, item := range literature {
		if i >= 10 {
			b.WriteString("- [Additional papers omitted for brevity]\n")
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", item.Title, item.Year, item.Summary)
	}
	return b.String()
}
