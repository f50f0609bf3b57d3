package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Refinement modes for the second-pass quality step.
const (
	RefinementOff      = "off"
	RefinementRewrite  = "rewrite"
	RefinementValidate = "validate"
)

// Fallback policies for total generation failure.
const (
	FallbackPolicyFallback = "fallback"
	FallbackPolicyError    = "error"
)

// Config holds all application configuration.
type Config struct {
	// LLM provider
	Provider         string // "groq" or "openrouter"
	GroqAPIKey       string
	OpenRouterAPIKey string
	Model            string  // empty means provider default
	Temperature      float64 // negative means provider default
	AppURL           string  // sent as HTTP-Referer to openrouter

	// Generation pipeline
	GenerationTimeout time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	WordLimitMin      int
	WordLimitMax      int
	RefinementMode    string
	FallbackPolicy    string

	// HTTP server
	Port            int
	CORSOrigin      string
	RateLimitWindow time.Duration
	RateLimitMax    int

	// Collaborators
	ImageRendererURL string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Provider:         getEnv("PROVIDER", "openrouter"),
		GroqAPIKey:       getEnv("GROQ_API_KEY", ""),
		OpenRouterAPIKey: getEnv("OPENROUTER_API_KEY", ""),
		Model:            getEnv("MODEL", ""),
		AppURL:           getEnv("APP_URL", "https://cozyconnect.vercel.app"),
		RefinementMode:   getEnv("REFINEMENT_MODE", RefinementRewrite),
		FallbackPolicy:   getEnv("FALLBACK_POLICY", FallbackPolicyFallback),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:3001"),
		ImageRendererURL: getEnv("IMAGE_RENDERER_URL", ""),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}

	var err error
	cfg.Temperature, err = getEnvFloat("TEMPERATURE", -1)
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPERATURE: %w", err)
	}

	cfg.GenerationTimeout, err = getEnvDuration("GENERATION_TIMEOUT", "6s")
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}

	cfg.RetryDelay, err = getEnvDuration("RETRY_DELAY", "200ms")
	if err != nil {
		return nil, fmt.Errorf("invalid RETRY_DELAY: %w", err)
	}

	cfg.RateLimitWindow, err = getEnvDuration("RATE_LIMIT_WINDOW", "10m")
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW: %w", err)
	}

	cfg.MaxRetries, err = getEnvInt("GENERATION_MAX_RETRIES", 1)
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_MAX_RETRIES: %w", err)
	}

	cfg.WordLimitMin, err = getEnvInt("WORD_LIMIT_MIN", 12)
	if err != nil {
		return nil, fmt.Errorf("invalid WORD_LIMIT_MIN: %w", err)
	}

	cfg.WordLimitMax, err = getEnvInt("WORD_LIMIT_MAX", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid WORD_LIMIT_MAX: %w", err)
	}

	cfg.Port, err = getEnvInt("PORT", 5000)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg.RateLimitMax, err = getEnvInt("RATE_LIMIT_MAX", 5)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_MAX: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are coherent.
func (c *Config) Validate() error {
	switch c.Provider {
	case "groq", "openrouter":
	default:
		return fmt.Errorf("invalid PROVIDER: %s (must be 'groq' or 'openrouter')", c.Provider)
	}

	switch c.RefinementMode {
	case RefinementOff, RefinementRewrite, RefinementValidate:
	default:
		return fmt.Errorf("invalid REFINEMENT_MODE: %s (must be 'off', 'rewrite' or 'validate')", c.RefinementMode)
	}

	switch c.FallbackPolicy {
	case FallbackPolicyFallback, FallbackPolicyError:
	default:
		return fmt.Errorf("invalid FALLBACK_POLICY: %s (must be 'fallback' or 'error')", c.FallbackPolicy)
	}

	if c.MaxRetries < 1 || c.MaxRetries > 3 {
		return fmt.Errorf("GENERATION_MAX_RETRIES must be between 1 and 3, got %d", c.MaxRetries)
	}

	if c.WordLimitMin <= 0 || c.WordLimitMax < c.WordLimitMin {
		return fmt.Errorf("invalid word limit range [%d,%d]", c.WordLimitMin, c.WordLimitMax)
	}

	return nil
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case "groq":
		return c.GroqAPIKey
	case "openrouter":
		return c.OpenRouterAPIKey
	}
	return ""
}

// ValidateForGenerate checks configuration needed to run the pipeline.
func (c *Config) ValidateForGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APIKey() == "" {
		if c.Provider == "groq" {
			return fmt.Errorf("GROQ_API_KEY is required when PROVIDER is groq")
		}
		return fmt.Errorf("OPENROUTER_API_KEY is required when PROVIDER is openrouter")
	}
	return nil
}

// ValidateForServe checks all configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.ValidateForGenerate(); err != nil {
		return err
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Port)
	}
	if c.RateLimitMax < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX must be at least 1, got %d", c.RateLimitMax)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}

func getEnvDuration(key, defaultVal string) (time.Duration, error) {
	return time.ParseDuration(getEnv(key, defaultVal))
}
