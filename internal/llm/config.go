package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted by Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Settings configures one vendor.
type Settings struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Config selects a provider and carries the settings for every vendor.
type Config struct {
	Provider string

	Anthropic  Settings
	OpenAI     Settings
	Gemini     Settings
	OpenRouter Settings

	Retry RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// RetryConfig tunes the backoff used by WithRetry.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// vendor ties a provider name to its env vars and default model.
type vendor struct {
	name     string
	envKey   string
	stdKey   string
	defModel string
}

// vendors is ordered by discovery priority.
var vendors = []vendor{
	{ProviderGemini, "COURSEFIT_GEMINI_API_KEY", "GEMINI_API_KEY", "gemini-flash"},
	{ProviderOpenAI, "COURSEFIT_OPENAI_API_KEY", "OPENAI_API_KEY", "gpt-4o-mini"},
	{ProviderAnthropic, "COURSEFIT_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY", "claude-haiku"},
	{ProviderOpenRouter, "COURSEFIT_OPENROUTER_API_KEY", "OPENROUTER_API_KEY", "google/gemini-2.0-flash-001"},
}

// DefaultConfig has no provider selected and every vendor on its
// default model.
func DefaultConfig() Config {
	cfg := Config{
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 45 * time.Second,
	}
	for _, v := range vendors {
		cfg.settings(v.name).Model = v.defModel
	}
	return cfg
}

// settings returns a pointer to the named vendor's settings, or nil.
func (c *Config) settings(provider string) *Settings {
	switch provider {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	}
	return nil
}

// Selected returns the settings of the chosen provider. Mock and unknown
// providers get the zero value.
func (c Config) Selected() Settings {
	if s := c.settings(c.Provider); s != nil {
		return *s
	}
	return Settings{}
}

// ConfigFromEnv reads the COURSEFIT_LLM_* and COURSEFIT_<VENDOR>_API_KEY
// variables on top of DefaultConfig.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.Provider = os.Getenv("COURSEFIT_LLM_PROVIDER")

	for _, v := range vendors {
		if k := os.Getenv(v.envKey); k != "" {
			cfg.settings(v.name).APIKey = k
		}
	}
	if u := os.Getenv("COURSEFIT_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if m := os.Getenv("COURSEFIT_LLM_MODEL"); m != "" {
		if s := cfg.settings(cfg.Provider); s != nil {
			s.Model = m
		}
	}
	if d, err := time.ParseDuration(os.Getenv("COURSEFIT_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	return cfg
}

// DiscoverConfig picks the first vendor whose standard API key variable
// is set (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OPENROUTER_API_KEY). It reports false when none is.
func DiscoverConfig() (Config, bool) {
	for _, v := range vendors {
		if k := os.Getenv(v.stdKey); k != "" {
			cfg := DefaultConfig()
			cfg.Provider = v.name
			cfg.settings(v.name).APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	for _, v := range vendors {
		if v.name != c.Provider {
			continue
		}
		if c.Selected().APIKey == "" {
			return fmt.Errorf("%s is required for the %s provider", v.envKey, v.name)
		}
		return nil
	}
	if c.Provider == "" {
		return ErrNotConfigured
	}
	return fmt.Errorf("unknown LLM provider: %q", c.Provider)
}
