package goals

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/llm"
	"github.com/mindstep/aiplan/internal/profile"
)

var goalSchema = &llm.Schema{
	Name:        "training-goal",
	Description: "One training goal sentence for a cognitive ability",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goal": map[string]any{
				"type":        "string",
				"description": "One sentence in Simplified Chinese, at most 40 characters",
				"minLength":   1,
			},
		},
		"required":             []any{"goal"},
		"additionalProperties": false,
	},
}

const goalSystemPrompt = `你是儿童认知训练方案的撰写助手。根据给定的认知能力和孩子近期错过的训练任务，写一句训练目标。
要求：简体中文，一句话，不超过40个字，语气积极，面向家长，不出现分数或医学诊断。
仅输出符合 JSON Schema 的对象。`

// LLMWriter asks a provider for the goal sentence.
type LLMWriter struct {
	provider  llm.Provider
	maxTokens int
}

func NewLLMWriter(p llm.Provider) *LLMWriter {
	return &LLMWriter{provider: p, maxTokens: 256}
}

type goalOutput struct {
	Goal string `json:"goal"`
}

func (w *LLMWriter) Goal(ctx context.Context, a ability.Ability, tasks []profile.NormalizedTask) (string, error) {
	resp, err := w.provider.Generate(llm.WithPurpose(ctx, llm.PurposeGoal), llm.Request{
		System:      goalSystemPrompt,
		Messages:    llm.UserPrompt(goalPrompt(a, tasks)),
		Schema:      goalSchema,
		MaxTokens:   w.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("generate goal for %s: %w", a, err)
	}

	var out goalOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("decode goal for %s: %w", a, err)
	}
	return strings.TrimSpace(out.Goal), nil
}

func goalPrompt(a ability.Ability, tasks []profile.NormalizedTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "认知能力：%s\n", ability.DisplayName(a))
	if len(tasks) == 0 {
		b.WriteString("近期没有错过的相关任务。\n")
		return b.String()
	}
	b.WriteString("近期错过的相关任务：\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s", t.Name)
		if t.LifeDesc != "" {
			fmt.Fprintf(&b, "（生活场景：%s）", t.LifeDesc)
		}
		b.WriteString("\n")
	}
	return b.String()
}
