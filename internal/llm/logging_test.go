package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mindstep/aiplan/internal/store"
)

func TestWithLogging_RecordsEvents(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(ctx, filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repo := s.EventRepo()

	core, logs := observer.New(zap.DebugLevel)
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"goal":"强化感知觉能力"}`), Usage: Usage{InputTokens: 30, OutputTokens: 12, TotalTokens: 42}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithLogging(mock, repo, zap.New(core))

	_, err = p.Generate(WithPurpose(ctx, PurposeGoal), Request{
		System:   "sys",
		Messages: UserPrompt("perception"),
		Schema:   goalSchema(),
	})
	require.NoError(t, err)
	_, err = p.Generate(WithPurpose(ctx, PurposeNarrative), Request{Messages: UserPrompt("intro")})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	failed, ok := events[0], events[1]
	assert.Equal(t, PurposeNarrative, failed.Purpose)
	assert.False(t, failed.Success)
	assert.Contains(t, failed.ErrorMessage, "down")

	assert.Equal(t, PurposeGoal, ok.Purpose)
	assert.True(t, ok.Success)
	assert.Equal(t, 30, ok.InputTokens)
	assert.Contains(t, ok.RequestBody, "[system]\nsys")
	assert.Contains(t, ok.RequestBody, "[schema: test-goal]")
	assert.JSONEq(t, `{"goal":"强化感知觉能力"}`, ok.ResponseBody)

	assert.Equal(t, 1, logs.FilterMessage("llm request").Len())
	assert.Equal(t, 1, logs.FilterMessage("llm request failed").Len())
}

func TestWithLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil, nil)
	_, err := p.Generate(context.Background(), Request{})
	assert.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
