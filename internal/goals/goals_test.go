package goals

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/llm"
	"github.com/mindstep/aiplan/internal/profile"
)

func TestTemplateWriter(t *testing.T) {
	got, err := TemplateWriter{}.Goal(context.Background(), ability.Memory, nil)
	require.NoError(t, err)
	assert.Equal(t, "强化记忆力能力，提升整体认知灵活性与稳定性。", got)

	got, err = TemplateWriter{Format: "Train %s."}.Goal(context.Background(), ability.Exec, nil)
	require.NoError(t, err)
	assert.Equal(t, "Train 执行控制.", got)
}

func TestWriterFunc(t *testing.T) {
	w := WriterFunc(func(_ context.Context, a ability.Ability, tasks []profile.NormalizedTask) (string, error) {
		return string(a), nil
	})
	got, err := w.Goal(context.Background(), ability.Attention, nil)
	require.NoError(t, err)
	assert.Equal(t, "attention", got)
}

func TestLLMWriter(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"goal":"  提升专注时长  "}`)})
	w := NewLLMWriter(mock)

	tasks := []profile.NormalizedTask{{Name: "舒尔特方格", LifeDesc: "课堂听讲"}, {Name: "数字划消"}}
	got, err := w.Goal(context.Background(), ability.Attention, tasks)
	require.NoError(t, err)
	assert.Equal(t, "提升专注时长", got)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, "training-goal", req.Schema.Name)
	prompt := req.Messages[0].Content
	assert.Contains(t, prompt, "认知能力：注意力")
	assert.Contains(t, prompt, "- 舒尔特方格（生活场景：课堂听讲）")
	assert.Contains(t, prompt, "- 数字划消\n")
}

func TestLLMWriter_NoTasks(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"goal":"x"}`)})
	_, err := NewLLMWriter(mock).Goal(context.Background(), ability.Perception, nil)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "近期没有错过的相关任务")
}

func TestLLMWriter_PropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	_, err := NewLLMWriter(mock).Goal(context.Background(), ability.Memory, nil)
	var unavailable *llm.ErrProviderUnavailable
	assert.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), "generate goal for memory")
}
