package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Client wraps a Provider with a per-attempt timeout and a bounded retry
// loop with a fixed inter-attempt delay. Retries are strictly sequential.
type Client struct {
	provider   Provider
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

// ClientConfig holds configuration for the completion client.
type ClientConfig struct {
	Provider   Provider
	Timeout    time.Duration // per attempt, default 6s
	MaxRetries int           // total attempts, default 1
	RetryDelay time.Duration // fixed delay between attempts, default 200ms
}

// NewClient creates a completion client.
func NewClient(cfg ClientConfig) *Client {
	c := &Client{
		provider:   cfg.Provider,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
	if c.timeout <= 0 {
		c.timeout = 6 * time.Second
	}
	if c.maxRetries < 1 {
		c.maxRetries = 1
	}
	if c.retryDelay <= 0 {
		c.retryDelay = 200 * time.Millisecond
	}
	return c
}

// Complete runs the provider call, racing each attempt against the timeout.
// Transient failures (timeout, provider 5xx, transport errors) are retried
// up to the configured attempt count; anything else propagates immediately.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		result, err := c.provider.Complete(attemptCtx, prompt)
		timedOut := attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil
		cancel()

		if err == nil {
			return result, nil
		}

		if timedOut || errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}

		if !retryable(err) {
			return "", err
		}

		lastErr = err
		slog.Warn("completion attempt failed",
			"provider", c.provider.Name(),
			"attempt", attempt,
			"max_retries", c.maxRetries,
			"error", err,
		)
	}

	return "", lastErr
}

func retryable(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable()
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	// Transport-level failures (connection refused, resets) are transient.
	return true
}
