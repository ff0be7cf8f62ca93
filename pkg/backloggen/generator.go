// Package backloggen turns product text (raw description or a flattened PRD)
// into draft backlog features with initial RICE inputs.
package backloggen

import (
	"context"
	"encoding/json"
	"fmt"

	"pocket-pm-be/internal/pkg/logger"
	"pocket-pm-be/pkg/llm"
)

// Draft is a feature candidate before id, score, and order are assigned.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Reach       int    `json:"reach"`
	Impact      int    `json:"impact"`
	Confidence  int    `json:"confidence"`
	Effort      int    `json:"effort"`
}

const systemPrompt = "You are a product management expert that creates detailed, actionable backlog items. Always respond with valid JSON that matches the specified format."

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

// Generate makes exactly one upstream call. On failure it substitutes a
// single placeholder draft so the pipeline never yields zero items;
// usedFallback reports which path was taken.
func (g *Generator) Generate(ctx context.Context, sourceText string) (drafts []Draft, usedFallback bool) {
	prompt := buildPrompt(sourceText)

	raw, err := g.provider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		llm.WithTemperature(0.7),
		llm.WithJSONOutput(),
	)
	if err != nil {
		g.logger.Warn("backloggen", "upstream call failed, using fallback draft", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackDrafts(), true
	}

	parsed, err := parseDrafts(raw)
	if err != nil {
		g.logger.Warn("backloggen", "could not parse upstream response, using fallback draft", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackDrafts(), true
	}

	return parsed, false
}

func buildPrompt(sourceText string) string {
	return fmt.Sprintf(`Based on the following product description, generate a list of specific, actionable backlog items. Each item should include a title, description, and initial RICE scoring parameters (reach, impact, confidence, effort on a scale of 1-10).

Product Description:
%s

Generate features that cover both core functionality and important supporting features. Format your response as a JSON object with an array of features, where each feature has:
- title: Short, clear feature name
- description: Detailed feature description
- reach: Estimated number of users affected (1-10)
- impact: Potential impact on users (1-10)
- confidence: Confidence in estimates (1-10)
- effort: Development effort required (1-10)

Example format:
{
  "features": [
    {
      "title": "User Authentication",
      "description": "Implement secure login and registration system with email verification",
      "reach": 9,
      "impact": 8,
      "confidence": 9,
      "effort": 6
    }
  ]
}`, sourceText)
}

func parseDrafts(raw string) ([]Draft, error) {
	jsonStr, err := llm.ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Features []Draft `json:"features"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal features: %w", err)
	}
	if len(payload.Features) == 0 {
		return nil, fmt.Errorf("response contains no features")
	}

	return payload.Features, nil
}

// FallbackDrafts is the single generic draft returned when generation fails.
// All RICE inputs are mid-scale so the draft always passes range validation.
func FallbackDrafts() []Draft {
	return []Draft{
		{
			Title:       "Basic Feature",
			Description: "A basic feature implementation (AI generation failed)",
			Reach:       5,
			Impact:      5,
			Confidence:  5,
			Effort:      5,
		},
	}
}
