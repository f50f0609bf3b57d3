package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "openrouter", cfg.Provider)
		assert.Equal(t, RefinementRewrite, cfg.RefinementMode)
		assert.Equal(t, FallbackPolicyFallback, cfg.FallbackPolicy)
		assert.Equal(t, 6*time.Second, cfg.GenerationTimeout)
		assert.Equal(t, 200*time.Millisecond, cfg.RetryDelay)
		assert.Equal(t, 1, cfg.MaxRetries)
		assert.Equal(t, 12, cfg.WordLimitMin)
		assert.Equal(t, 20, cfg.WordLimitMax)
		assert.Equal(t, 5000, cfg.Port)
		assert.Equal(t, 10*time.Minute, cfg.RateLimitWindow)
		assert.Equal(t, 5, cfg.RateLimitMax)
		assert.Equal(t, "http://localhost:3001", cfg.CORSOrigin)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("PROVIDER", "groq")
		os.Setenv("GROQ_API_KEY", "gsk-test")
		os.Setenv("GENERATION_TIMEOUT", "8s")
		os.Setenv("GENERATION_MAX_RETRIES", "3")
		os.Setenv("WORD_LIMIT_MIN", "20")
		os.Setenv("WORD_LIMIT_MAX", "30")
		os.Setenv("RATE_LIMIT_MAX", "7")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "groq", cfg.Provider)
		assert.Equal(t, "gsk-test", cfg.APIKey())
		assert.Equal(t, 8*time.Second, cfg.GenerationTimeout)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 20, cfg.WordLimitMin)
		assert.Equal(t, 30, cfg.WordLimitMax)
		assert.Equal(t, 7, cfg.RateLimitMax)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("GENERATION_TIMEOUT", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GENERATION_TIMEOUT")
	})

	t.Run("invalid integer", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("RATE_LIMIT_MAX", "lots")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RATE_LIMIT_MAX")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Provider:       "openrouter",
			RefinementMode: RefinementOff,
			FallbackPolicy: FallbackPolicyError,
			MaxRetries:     1,
			WordLimitMin:   12,
			WordLimitMax:   20,
		}
	}

	t.Run("ok", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad provider", func(t *testing.T) {
		cfg := valid()
		cfg.Provider = "mistral"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad refinement mode", func(t *testing.T) {
		cfg := valid()
		cfg.RefinementMode = "maybe"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad fallback policy", func(t *testing.T) {
		cfg := valid()
		cfg.FallbackPolicy = "retry"
		assert.Error(t, cfg.Validate())
	})

	t.Run("retries out of range", func(t *testing.T) {
		cfg := valid()
		cfg.MaxRetries = 5
		assert.Error(t, cfg.Validate())
	})

	t.Run("inverted word limits", func(t *testing.T) {
		cfg := valid()
		cfg.WordLimitMin = 30
		cfg.WordLimitMax = 20
		assert.Error(t, cfg.Validate())
	})
}

func TestValidateForGenerate(t *testing.T) {
	cfg := &Config{
		Provider:       "groq",
		RefinementMode: RefinementOff,
		FallbackPolicy: FallbackPolicyFallback,
		MaxRetries:     1,
		WordLimitMin:   12,
		WordLimitMax:   20,
	}

	err := cfg.ValidateForGenerate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GROQ_API_KEY")

	cfg.GroqAPIKey = "gsk-test"
	assert.NoError(t, cfg.ValidateForGenerate())
}

func TestValidateForServe(t *testing.T) {
	cfg := &Config{
		Provider:         "openrouter",
		OpenRouterAPIKey: "sk-or-test",
		RefinementMode:   RefinementValidate,
		FallbackPolicy:   FallbackPolicyFallback,
		MaxRetries:       2,
		WordLimitMin:     12,
		WordLimitMax:     20,
		Port:             5000,
		RateLimitMax:     5,
	}
	assert.NoError(t, cfg.ValidateForServe())

	cfg.Port = 0
	assert.Error(t, cfg.ValidateForServe())

	cfg.Port = 5000
	cfg.RateLimitMax = 0
	assert.Error(t, cfg.ValidateForServe())
}
