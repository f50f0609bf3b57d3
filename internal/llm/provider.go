// Package llm talks to chat-completion providers and wraps the calls with
// per-attempt timeouts and bounded retries.
package llm

import (
	"context"
	"fmt"
)

// Provider performs one completion call.
type Provider interface {
	// Complete sends a single user prompt and returns the reply text.
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
}

// providerSpec describes a provider's endpoint shape. Selecting a provider
// is a configuration concern; nothing switches providers per request.
type providerSpec struct {
	endpoint           string
	defaultModel       string
	defaultTemperature float64
	// rate-limit header names on a 429 response
	limitHeader     string
	remainingHeader string
	resetHeader     string
	// openrouter wants attribution headers
	attribution bool
}

var providerSpecs = map[string]providerSpec{
	"groq": {
		endpoint:           "https://api.groq.com/openai/v1/chat/completions",
		defaultModel:       "llama-3.3-70b-versatile",
		defaultTemperature: 0.7,
		limitHeader:        "x-ratelimit-limit-requests",
		remainingHeader:    "x-ratelimit-remaining-requests",
		resetHeader:        "x-ratelimit-reset-requests",
	},
	"openrouter": {
		endpoint:           "https://openrouter.ai/api/v1/chat/completions",
		defaultModel:       "google/gemini-2.0-flash-001",
		defaultTemperature: 0.7,
		limitHeader:        "x-ratelimit-limit",
		remainingHeader:    "x-ratelimit-remaining",
		resetHeader:        "x-ratelimit-reset",
		attribution:        true,
	},
}

// ProviderConfig holds configuration for building a provider.
type ProviderConfig struct {
	Provider    string // "groq" or "openrouter"
	APIKey      string
	Model       string  // empty means provider default
	Temperature float64 // negative means provider default
	AppURL      string  // HTTP-Referer attribution for openrouter
	BaseURL     string  // overrides the endpoint, for tests
}

// NewProvider builds a chat-completions provider from configuration.
func NewProvider(cfg ProviderConfig) (Provider, error) {
	spec, ok := providerSpecs[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s API key is not set", cfg.Provider)
	}
	return newChatClient(cfg.Provider, spec, cfg), nil
}
