// Package prdgen turns a product description into an ordered list of PRD
// sections using a text-generation backend, with a static template fallback.
package prdgen

import (
	"context"
	"encoding/json"
	"fmt"

	"pocket-pm-be/internal/pkg/logger"
	"pocket-pm-be/pkg/llm"
)

// Section is one titled block of a PRD. Order is assigned by the generator
// and preserved verbatim by storage.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

const systemPrompt = "You are a product management expert that creates detailed PRD templates. Always respond with valid JSON."

type Generator struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewGenerator(provider llm.LLMProvider, log logger.ILogger) *Generator {
	return &Generator{
		provider: provider,
		logger:   log,
	}
}

// Generate makes exactly one upstream call. On any upstream failure
// (transport, quota, malformed output) it substitutes the static template so
// the caller is never blocked; usedFallback reports which path was taken.
func (g *Generator) Generate(ctx context.Context, description, industry string) (sections []Section, usedFallback bool) {
	prompt := buildPrompt(description, industry)

	raw, err := g.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		llm.WithTemperature(0.7),
		llm.WithJSONOutput(),
	)
	if err != nil {
		g.logger.Warn("prdgen", "upstream call failed, using fallback template", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackSections(), true
	}

	parsed, err := parseSections(raw)
	if err != nil {
		g.logger.Warn("prdgen", "could not parse upstream response, using fallback template", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackSections(), true
	}

	return parsed, false
}

func buildPrompt(description, industry string) string {
	prompt := fmt.Sprintf(`Create a detailed PRD template for the following product description:
%s
`, description)
	if industry != "" {
		prompt += fmt.Sprintf("Industry context: %s\n", industry)
	}
	prompt += `
Generate a structured PRD with sections. Include modern product management best practices.
Format the response as a JSON object with a "sections" array, each section having title, content (with placeholder content), and order fields.
Keep the content concise but meaningful.`
	return prompt
}

func parseSections(raw string) ([]Section, error) {
	jsonStr, err := llm.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Sections []Section `json:"sections"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal sections: %w", err)
	}
	if len(payload.Sections) == 0 {
		return nil, fmt.Errorf("response contains no sections")
	}
	for i, s := range payload.Sections {
		if s.Title == "" {
			return nil, fmt.Errorf("section %d has an empty title", i)
		}
	}

	return payload.Sections, nil
}

// FallbackSections is the static template returned when generation fails.
// Orders are 0..n-1 so the fallback satisfies the same ordering contract as
// a generated result.
func FallbackSections() []Section {
	return []Section{
		{Title: "Executive Summary", Content: "Summarize the product vision, the target audience, and the expected business outcome.", Order: 0},
		{Title: "Problem Statement", Content: "Describe the user problem this product solves and why existing solutions fall short.", Order: 1},
		{Title: "Market Analysis", Content: "Outline the market size, key competitors, and differentiation.", Order: 2},
		{Title: "Goals & Success Metrics", Content: "List measurable goals and the metrics that will track them.", Order: 3},
		{Title: "Key Features", Content: "Enumerate the core capabilities required for the first release.", Order: 4},
		{Title: "Timeline & Milestones", Content: "Sketch the major delivery phases and their target dates.", Order: 5},
	}
}
