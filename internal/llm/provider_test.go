package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_QueueOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"goal":"first"}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockResponse{Content: json.RawMessage(`{"goal":"second"}`)},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "plan", Messages: UserPrompt("a")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"goal":"first"}`, string(first.Content))
	assert.Equal(t, 16, first.Usage.TotalTokens)
	assert.Equal(t, "end", first.StopReason)

	second, err := mock.Generate(ctx, Request{Messages: UserPrompt("b")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"goal":"second"}`, string(second.Content))

	require.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "plan", mock.Calls[0].System)
	assert.Equal(t, "b", mock.Calls[1].Messages[0].Content)
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestMockProvider_QueuedError(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Err: &ErrRateLimit{}})
	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)
}

func TestMockProvider_Synthesize(t *testing.T) {
	mock := &MockProvider{Synthesize: true}
	resp, err := mock.Generate(context.Background(), Request{Schema: goalSchema()})
	require.NoError(t, err)
	require.NoError(t, validateResponse(goalSchema(), resp.Content))

	var out map[string]string
	require.NoError(t, json.Unmarshal(resp.Content, &out))
	assert.Equal(t, "mock goal", out["goal"])
	assert.Equal(t, "mock", mock.ModelID())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, PurposeNarrative, PurposeFrom(WithPurpose(ctx, PurposeNarrative)))
}

func TestClassifyStatus(t *testing.T) {
	base := errors.New("boom")

	var rl *ErrRateLimit
	assert.ErrorAs(t, classifyStatus(http.StatusTooManyRequests, base), &rl)

	var unavailable *ErrProviderUnavailable
	assert.ErrorAs(t, classifyStatus(http.StatusBadGateway, base), &unavailable)
	assert.ErrorIs(t, classifyStatus(http.StatusBadRequest, base), base)
}

func TestCheckOutput(t *testing.T) {
	req := Request{Schema: goalSchema()}

	assert.NoError(t, checkOutput(req, json.RawMessage(`{"goal":"ok"}`), "end"))

	var truncated *ErrMaxTokensExceeded
	assert.ErrorAs(t, checkOutput(req, json.RawMessage(`{"goal":"o`), "max_tokens"), &truncated)

	assert.NoError(t, checkOutput(Request{}, json.RawMessage(`plain text`), "max_tokens"))
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicAliases))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiAliases))
	assert.Equal(t, "gpt-4.1", resolveModel("gpt-4.1", openaiAliases))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic", Retry: fastRetry()}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}, Retry: fastRetry()}, false},
		{"openrouter without key", Config{Provider: "openrouter", Retry: fastRetry()}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}, Retry: fastRetry()}, false},
		{"mock", Config{Provider: "mock", Retry: fastRetry()}, false},
		{"none", Config{Provider: "none", Retry: fastRetry()}, false},
		{"unknown", Config{Provider: "llama", Retry: fastRetry()}, true},
		{"zero attempts", Config{Provider: "mock"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigEnabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Provider: "none"}.Enabled())
	assert.True(t, Config{Provider: "mock"}.Enabled())
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	for _, name := range []string{"", "none"} {
		_, err := NewProvider(ctx, Config{Provider: name, Retry: fastRetry()}, nil, nil)
		assert.ErrorIs(t, err, ErrDisabled, "provider %q", name)
	}

	cfg := Config{Provider: "mock", Retry: fastRetry(), Timeout: time.Second}
	p, err := NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	resp, err := p.Generate(ctx, Request{Schema: goalSchema()})
	require.NoError(t, err)
	assert.Contains(t, string(resp.Content), "mock goal")

	cfg.Provider = "anthropic"
	_, err = NewProvider(ctx, cfg, nil, nil)
	assert.Error(t, err)
}

func TestCheckOutput_TruncationNamesSchema(t *testing.T) {
	req := Request{Schema: &Schema{Name: "plan-narrative"}, MaxTokens: 512}
	err := checkOutput(req, json.RawMessage(`{"training_plan_intro":"`), "max_tokens")
	assert.EqualError(t, err, "plan-narrative output truncated at max_tokens=512")
}
