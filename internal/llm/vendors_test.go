package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func serve(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func anthropicAgainst(srv *httptest.Server) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(
			option.WithAPIKey("test"),
			option.WithBaseURL(srv.URL),
			option.WithMaxRetries(0),
		),
		model: "claude-haiku-4-5-20251001",
	}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 20},
	}
}

func TestAnthropicProvider_Generate(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"goal":"强化记忆力能力"}`, "end_turn"))
	resp, err := anthropicAgainst(srv).Generate(context.Background(), Request{
		System:    "You write training goals.",
		Messages:  UserPrompt("memory"),
		Schema:    goalSchema(),
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.JSONEq(t, `{"goal":"强化记忆力能力"}`, string(resp.Content))
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	srv := serve(t, http.StatusOK, anthropicMessage(`{"goal":"强化`, "max_tokens"))
	_, err := anthropicAgainst(srv).Generate(context.Background(), Request{Messages: UserPrompt("x"), Schema: goalSchema(), MaxTokens: 8})
	var truncated *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &truncated)
}

func TestAnthropicProvider_RateLimited(t *testing.T) {
	srv := serve(t, http.StatusTooManyRequests, map[string]any{
		"type":  "error",
		"error": map[string]any{"type": "rate_limit_error", "message": "slow down"},
	})
	_, err := anthropicAgainst(srv).Generate(context.Background(), Request{Messages: UserPrompt("x"), MaxTokens: 8})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 10, "total_tokens": 50},
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	srv := serve(t, http.StatusOK, chatCompletion(`{"goal":"强化注意力能力"}`, "stop"))
	p := newChatCompletionsProvider("test", srv.URL+"/v1", "gpt-4o-mini")
	resp, err := p.Generate(context.Background(), Request{System: "s", Messages: UserPrompt("u"), Schema: goalSchema(), MaxTokens: 64})
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
}

func TestOpenAIProvider_SchemaMismatch(t *testing.T) {
	srv := serve(t, http.StatusOK, chatCompletion(`{"objective":"x"}`, "stop"))
	p := newChatCompletionsProvider("test", srv.URL+"/v1", "gpt-4o-mini")
	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("u"), Schema: goalSchema()})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"message": "overloaded", "type": "server_error"},
	})
	p := newChatCompletionsProvider("test", srv.URL+"/v1", "gpt-4o-mini")
	_, err := p.Generate(context.Background(), Request{Messages: UserPrompt("u")})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestOpenRouterProvider_Defaults(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"training_plan_intro": map[string]any{"type": "string", "description": "intro"},
			"abilities": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "enum": []any{"perception", "memory"}},
			},
		},
		"required": []string{"training_plan_intro"},
	})

	assert.Equal(t, genai.TypeObject, s.Type)
	require.Len(t, s.Properties, 2)
	assert.Equal(t, "intro", s.Properties["training_plan_intro"].Description)
	assert.Equal(t, genai.TypeArray, s.Properties["abilities"].Type)
	assert.Equal(t, []string{"perception", "memory"}, s.Properties["abilities"].Items.Enum)
	assert.Equal(t, []string{"training_plan_intro"}, s.Required)
}
