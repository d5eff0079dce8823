package factory

import (
	"fmt"

	"nailaide-be/pkg/llm"
	"nailaide-be/pkg/llm/ollama"
	"nailaide-be/pkg/llm/openai"
)

// NewLLMProvider builds the configured completion backend. "none"
// returns a nil provider, which callers treat as simulated mode.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "openai":
		if modelName == "" {
			modelName = "gpt-3.5-turbo" // Default
		}
		return openai.NewOpenAIProvider(apiKey, baseURL, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
