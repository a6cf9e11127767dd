package llm

import "errors"

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider builds a Chat Completions provider pointed at
// OpenRouter. Model IDs are passed through untouched.
func NewOpenRouterProvider(s Settings) (*OpenAIProvider, error) {
	if s.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = openRouterBaseURL
	}
	return newChatCompletionsProvider(s.APIKey, baseURL, s.Model), nil
}
