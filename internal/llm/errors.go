package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit is returned when the provider answers 429.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse is returned when the model output cannot be used as
// the requested plan text: not JSON, or not matching Schema.
type ErrInvalidResponse struct {
	Schema  string // schema name, e.g. "training-goal"; empty for free text
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	if e.Schema == "" {
		return fmt.Sprintf("unusable LLM output: %v", e.Err)
	}
	return fmt.Sprintf("%s output rejected: %v", e.Schema, e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable wraps network failures and 5xx answers.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "LLM provider unavailable"
	}
	return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded is returned when structured output hit the token
// cap before the JSON object closed.
type ErrMaxTokensExceeded struct {
	Schema    string
	MaxTokens int
	Content   json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return fmt.Sprintf("%s output truncated at max_tokens=%d", e.Schema, e.MaxTokens)
}
