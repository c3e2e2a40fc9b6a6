package factory

import (
	"fmt"

	"margadarsaka-be/pkg/llm"
	"margadarsaka-be/pkg/llm/gemini"
	"margadarsaka-be/pkg/llm/ollama"
)

// NewProvider builds the configured LLM backend. A missing Gemini API key is
// a configuration error and must fail startup, not first use.
func NewProvider(providerType, modelName, apiKey, baseURL string) (llm.Provider, error) {
	switch providerType {
	case "gemini":
		if apiKey == "" {
			return nil, fmt.Errorf("gemini provider selected but GEMINI_API_KEY is not set")
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
