package llm

import "errors"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes chat completions through OpenRouter. Model
// names are passed through unchanged, e.g. "google/gemini-2.0-flash-exp".
type OpenRouterProvider struct {
	*OpenAIProvider
}

func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = openRouterBaseURL
	}
	return &OpenRouterProvider{OpenAIProvider: newChatCompletionsProvider(cfg.APIKey, base, cfg.Model)}, nil
}
