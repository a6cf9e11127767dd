package llm

import (
	"context"
	"fmt"
	"log"
)

// NewProvider builds the configured provider wrapped as
// timeout → retry → logging → vendor.
func NewProvider(ctx context.Context, cfg Config, logger *log.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	s := cfg.Selected()
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(s)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(s)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, s)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(s)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithTimeout(WithRetry(WithLogging(base, logger), cfg.Retry), cfg.Timeout), nil
}

// NewProviderFromEnv uses ConfigFromEnv, falling back to DiscoverConfig
// when COURSEFIT_LLM_PROVIDER is unset. It returns ErrNotConfigured when
// neither yields a provider.
func NewProviderFromEnv(ctx context.Context, logger *log.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if cfg.Provider == "" {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, ErrNotConfigured
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, logger)
}
