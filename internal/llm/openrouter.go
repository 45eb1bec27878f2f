package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider wraps OpenAIProvider with OpenRouter defaults.
// OpenRouter speaks the OpenAI chat API, so the same client is reused.
// Many routed models lack structured outputs, so replies are requested as
// plain JSON and checked against the schema locally.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider targeting the OpenRouter API.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultConfig().OpenRouter.Model
	}

	inner, err := newOpenAIProviderRaw(OpenAIConfig{
		APIKey:    cfg.APIKey,
		Model:     model,
		BaseURL:   baseURL,
		PlainJSON: true,
	})
	if err != nil {
		return nil, err
	}

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
