package factory

import (
	"fmt"

	"guru-ai-be/pkg/llm"
	"guru-ai-be/pkg/llm/gemini"
)

func NewLLMProvider(providerType, apiKey, modelName string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if modelName == "" {
			modelName = "gemini-2.0-flash" // Default
		}
		return gemini.NewGeminiProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
