package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okGoal = json.RawMessage(`{"goal":"ok"}`)

func TestRetry_FirstAttempt(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: okGoal})
	resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, string(okGoal), string(resp.Content))
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_RecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("502")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: okGoal},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("1")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("2")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("3")}},
		MockResponse{Content: okGoal},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var unavailable *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.EqualError(t, unavailable.Err, "3")
	assert.Equal(t, 3, mock.CallCount())
}

func TestRetry_TruncationIsFinal(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{}},
		MockResponse{Content: okGoal},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &truncated)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{}`), Err: errors.New("missing goal")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: okGoal})
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	var invalid *ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: okGoal},
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := WithRetry(mock, fastRetry()).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: okGoal},
	)
	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestRetry_ClampsAttempts(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}}, MockResponse{Content: okGoal})
	_, err := WithRetry(mock, RetryConfig{}).Generate(context.Background(), Request{})
	assert.Error(t, err)
	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "mock", WithRetry(mock, RetryConfig{}).ModelID())
}

type deadlineProbe struct {
	Provider
	hadDeadline bool
}

func (d *deadlineProbe) Generate(ctx context.Context, req Request) (*Response, error) {
	_, d.hadDeadline = ctx.Deadline()
	return d.Provider.Generate(ctx, req)
}

func TestWithTimeout(t *testing.T) {
	probe := &deadlineProbe{Provider: NewMockProvider(MockResponse{Content: okGoal})}
	_, err := WithTimeout(probe, time.Second).Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, probe.hadDeadline)

	mock := NewMockProvider()
	assert.Same(t, Provider(mock), WithTimeout(mock, 0))
}

func TestRetry_InvalidResponseRepromptsWithReason(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{
		Schema:  "training-goal",
		Content: json.RawMessage(`{"ability":"memory"}`),
		Err:     errors.New("missing property 'goal'"),
	}}
	mock := NewMockProvider(bad, MockResponse{Content: okGoal})
	req := Request{Messages: UserPrompt("为记忆力生成训练目标")}

	_, err := WithRetry(mock, fastRetry()).Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, mock.CallCount())
	assert.Len(t, req.Messages, 1)
	assert.Len(t, mock.Calls[0].Messages, 1)

	retried := mock.Calls[1].Messages
	require.Len(t, retried, 3)
	assert.Equal(t, RoleAssistant, retried[1].Role)
	assert.Equal(t, `{"ability":"memory"}`, retried[1].Content)
	assert.Equal(t, RoleUser, retried[2].Role)
	assert.Contains(t, retried[2].Content, "training-goal")
	assert.Contains(t, retried[2].Content, "missing property 'goal'")
}
