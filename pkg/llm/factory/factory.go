package factory

import (
	"fmt"

	"github.com/sajjad006/ardine-backend/pkg/llm"
	"github.com/sajjad006/ardine-backend/pkg/llm/groq"
	"github.com/sajjad006/ardine-backend/pkg/llm/ollama"
)

// NewLLMProvider selects a provider implementation by name.
func NewLLMProvider(provider, model, ollamaBaseURL, groqApiKey string) (llm.LLMProvider, error) {
	switch provider {
	case "groq":
		if groqApiKey == "" {
			return nil, fmt.Errorf("GROQ_API_KEY is required for the groq provider")
		}
		return groq.NewGroqProvider(groqApiKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
