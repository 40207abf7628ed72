package llm

import (
	"context"
	"encoding/json"
	"net/http"
)

// Provider generates text for the plan writers. Implementations wrap one
// vendor SDK; decorators add retry and audit logging.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the output is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema requests structured output. Nil means free text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds the single-turn message list used by every writer.
func UserPrompt(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is kebab-case, e.g. "training-goal". It doubles as the cache
	// key for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when a schema was requested, otherwise the
	// raw text.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string // "end", "max_tokens" or "error"
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// schemaName is the name of the requested schema, or "" for free text.
func (r Request) schemaName() string {
	if r.Schema == nil {
		return ""
	}
	return r.Schema.Name
}

// classifyStatus maps an HTTP status from a vendor SDK error onto the
// package error types so the retry decorator can treat vendors alike.
func classifyStatus(status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		return &ErrRateLimit{Err: err}
	default:
		return &ErrProviderUnavailable{Err: err}
	}
}

// checkOutput rejects truncated output and validates structured content.
func checkOutput(req Request, content json.RawMessage, stop string) error {
	if stop == "max_tokens" && req.Schema != nil {
		return &ErrMaxTokensExceeded{Schema: req.Schema.Name, MaxTokens: req.MaxTokens, Content: content}
	}
	return validateResponse(req.Schema, content)
}

// resolveModel maps a short alias to a vendor model ID. Unknown names are
// passed through so full IDs can be configured directly.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
