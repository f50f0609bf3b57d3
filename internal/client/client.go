// Package client is the caller-side layer over the generation API. It
// retries transient failures with exponential backoff but never retries a
// rate-limited response.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/abdulachik/cozyconnect/internal/generator"
)

// ErrNetworkUnavailable reports that the server could not be reached at all.
var ErrNetworkUnavailable = errors.New("network unavailable")

// RateLimitedError is a 429 from the service; it must not be retried.
type RateLimitedError struct {
	Message string
	Reset   int64 // seconds until the window resets
}

func (e *RateLimitedError) Error() string {
	if e.Reset > 0 {
		return fmt.Sprintf("rate limited: %s (resets in %ds)", e.Message, e.Reset)
	}
	return "rate limited: " + e.Message
}

// APIError is any other non-2xx response from the service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d, code %s): %s", e.Status, e.Code, e.Message)
}

// backoff delays before the second and third attempt.
var backoffDelays = []time.Duration{1 * time.Second, 2 * time.Second}

// Config holds client configuration.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client // optional
}

// Client calls the generation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: cfg.BaseURL, httpClient: httpClient}
}

// Generate requests one question, retrying transient failures with
// exponential backoff. Rate-limited and other caller errors surface
// immediately.
func (c *Client) Generate(ctx context.Context) (*generator.Result, error) {
	var lastErr error

	for attempt := 0; attempt <= len(backoffDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoffDelays[attempt-1]):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := c.generateOnce(ctx)
		if err == nil {
			return result, nil
		}

		var rle *RateLimitedError
		if errors.As(err, &rle) {
			return nil, err
		}
		if errors.Is(err, ErrNetworkUnavailable) && attempt == 0 {
			// Connectivity is down; retrying immediately would be noise.
			return nil, err
		}
		var ae *APIError
		if errors.As(err, &ae) && ae.Status < 500 {
			return nil, err
		}

		lastErr = err
	}

	return nil, lastErr
}

func (c *Client) generateOnce(ctx context.Context) (*generator.Result, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/api/generate", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		var netErr net.Error
		if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
		}
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Message string `json:"message"`
			Code    string `json:"code"`
			Reset   int64  `json:"reset"`
		}
		_ = json.Unmarshal(body, &errBody)

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, &RateLimitedError{Message: errBody.Message, Reset: errBody.Reset}
		}
		return nil, &APIError{Status: resp.StatusCode, Code: errBody.Code, Message: errBody.Message}
	}

	var result generator.Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &result, nil
}
