package llm

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that a completion attempt exceeded its deadline.
var ErrTimeout = errors.New("completion request timed out")

// RateLimitInfo carries provider rate-limit metadata extracted from
// response headers on a 429.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     string // provider-specific format, e.g. "2m59s" or epoch seconds
}

// ProviderError is a non-2xx response from the completion provider.
type ProviderError struct {
	Provider  string
	Status    int
	Body      string
	RateLimit *RateLimitInfo // non-nil only for 429
}

func (e *ProviderError) Error() string {
	if e.RateLimit != nil {
		return fmt.Sprintf("%s API error (status %d): rate limited, reset in %s", e.Provider, e.Status, e.RateLimit.Reset)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Provider, e.Status, e.Body)
}

// Retryable reports whether the error is transient. Only 5xx responses
// qualify; 429 must be surfaced to the caller, not hammered.
func (e *ProviderError) Retryable() bool {
	return e.Status >= 500
}

// RateLimited reports whether err is a provider 429, returning its metadata.
func RateLimited(err error) (*RateLimitInfo, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) && pe.Status == 429 {
		return pe.RateLimit, true
	}
	return nil, false
}
