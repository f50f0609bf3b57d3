package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// ChatClient is an OpenAI-style chat-completions client. Both supported
// providers speak this wire format; only endpoint, auth and header names
// differ, and those live in the provider spec.
type ChatClient struct {
	name        string
	spec        providerSpec
	apiKey      string
	model       string
	temperature float64
	appURL      string
	endpoint    string
	httpClient  *http.Client
}

func newChatClient(name string, spec providerSpec, cfg ProviderConfig) *ChatClient {
	model := cfg.Model
	if model == "" {
		model = spec.defaultModel
	}
	temperature := cfg.Temperature
	if temperature < 0 {
		temperature = spec.defaultTemperature
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = spec.endpoint
	}

	return &ChatClient{
		name:        name,
		spec:        spec,
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: temperature,
		appURL:      cfg.AppURL,
		endpoint:    endpoint,
		// Per-attempt deadlines come from the caller's context.
		httpClient: &http.Client{},
	}
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the chat-completions endpoint.
type chatRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
}

// chatResponse is the response from the chat-completions endpoint.
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Name returns the provider name.
func (c *ChatClient) Name() string {
	return c.name
}

// Complete sends one completion request.
func (c *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Messages:    []Message{{Role: "user", Content: prompt}},
		Model:       c.model,
		Temperature: c.temperature,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.spec.attribution {
		httpReq.Header.Set("HTTP-Referer", c.appURL)
		httpReq.Header.Set("X-Title", "CozyConnect")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.providerError(resp, respBody)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("API error: %s - %s", chatResp.Error.Type, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return chatResp.Choices[0].Message.Content, nil
}

func (c *ChatClient) providerError(resp *http.Response, body []byte) *ProviderError {
	pe := &ProviderError{
		Provider: c.name,
		Status:   resp.StatusCode,
		Body:     string(body),
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		pe.RateLimit = &RateLimitInfo{
			Limit:     headerInt(resp, c.spec.limitHeader),
			Remaining: headerInt(resp, c.spec.remainingHeader),
			Reset:     resp.Header.Get(c.spec.resetHeader),
		}
	}
	return pe
}

func headerInt(resp *http.Response, name string) int {
	n, err := strconv.Atoi(resp.Header.Get(name))
	if err != nil {
		return 0
	}
	return n
}
