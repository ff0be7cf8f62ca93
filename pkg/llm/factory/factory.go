package factory

import (
	"fmt"

	"pocket-pm-be/pkg/llm"
	"pocket-pm-be/pkg/llm/ollama"
	"pocket-pm-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, ollamaBaseURL, openAIKey, openAIBaseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "ollama":
		if ollamaBaseURL == "" {
			ollamaBaseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(ollamaBaseURL, modelName), nil
	case "openai":
		if openAIKey == "" {
			return nil, fmt.Errorf("openai provider requires OPENAI_API_KEY")
		}
		return openai.NewOpenAIProvider(openAIKey, modelName, openAIBaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
