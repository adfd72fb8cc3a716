package llm

import "fmt"

const (
	openrouterBaseURL      = "https://openrouter.ai/api/v1"
	openrouterDefaultModel = "google/gemini-2.5-flash"
)

// OpenRouterProvider targets the OpenRouter API. The wire protocol is
// OpenAI-compatible, so it rides on OpenAIProvider with its own base
// URL and model namespace (vendor-prefixed IDs, no aliases).
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider builds a provider against openrouter.ai (or
// cfg.BaseURL when set).
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openrouterBaseURL
	}

	inner := newOpenAICompatible(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}, "openrouter", nil, openrouterDefaultModel)

	return &OpenRouterProvider{OpenAIProvider: inner}, nil
}
