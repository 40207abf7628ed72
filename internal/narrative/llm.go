package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/llm"
)

var narrativeSchema = &llm.Schema{
	Name:        "plan-narrative",
	Description: "Training plan intro and score prediction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"training_plan_intro": map[string]any{
				"type":        "string",
				"description": "Two or three sentences introducing the weekly plan",
				"minLength":   1,
			},
			"score_prediction": map[string]any{
				"type":        "string",
				"description": "Expected score change after four weeks of training",
				"minLength":   1,
			},
		},
		"required":             []any{"training_plan_intro", "score_prediction"},
		"additionalProperties": false,
	},
}

const systemPrompt = `你是儿童认知训练方案的撰写助手，面向家长写作。
根据孩子的用户类型、各项认知能力得分和已经确定的训练模块，写：
1. training_plan_intro：2-3句，介绍本周训练计划的思路，与模块安排一致；
2. score_prediction：1-2句，预测坚持训练4周后的能力变化，措辞谨慎，不作保证。
使用简体中文，不出现医学诊断结论。仅输出符合 JSON Schema 的对象。`

// LLMWriter asks a provider for the narrative.
type LLMWriter struct {
	provider  llm.Provider
	maxTokens int
}

func NewLLMWriter(p llm.Provider) *LLMWriter {
	return &LLMWriter{provider: p, maxTokens: 1024}
}

type output struct {
	TrainingPlanIntro string `json:"training_plan_intro"`
	ScorePrediction   string `json:"score_prediction"`
}

func (w *LLMWriter) Write(ctx context.Context, in Input) (Narrative, error) {
	resp, err := w.provider.Generate(llm.WithPurpose(ctx, llm.PurposeNarrative), llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(Prompt(in)),
		Schema:      narrativeSchema,
		MaxTokens:   w.maxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Narrative{}, fmt.Errorf("generate narrative: %w", err)
	}

	var out output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Narrative{}, fmt.Errorf("decode narrative: %w", err)
	}
	return Narrative{
		Intro:           strings.TrimSpace(out.TrainingPlanIntro),
		ScorePrediction: strings.TrimSpace(out.ScorePrediction),
		Raw:             string(resp.Content),
	}, nil
}

// Prompt renders in as the user message.
func Prompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "用户类型：%s\n", in.UserType.Label())
	if in.TrainDays > 0 {
		fmt.Fprintf(&b, "累计训练天数：%d\n", in.TrainDays)
	}
	if in.DiseaseTag != "" {
		fmt.Fprintf(&b, "关注方向：%s\n", in.DiseaseTag)
	}

	b.WriteString("\n能力得分：\n")
	for _, a := range ability.All() {
		score, ok := in.Scores.Get(a)
		if !ok {
			fmt.Fprintf(&b, "- %s：暂无数据\n", ability.DisplayName(a))
			continue
		}
		fmt.Fprintf(&b, "- %s：%.1f\n", ability.DisplayName(a), score)
		for _, name := range sortedKeys(in.SubScores[a]) {
			fmt.Fprintf(&b, "  - %s：%.1f\n", name, in.SubScores[a][name])
		}
	}

	b.WriteString("\n训练模块：\n")
	for _, m := range in.Modules {
		fmt.Fprintf(&b, "【%s】\n", m.Name)
		for _, it := range m.Items {
			tasks := it.TasksText
			if tasks == "" {
				tasks = "常规任务"
			}
			fmt.Fprintf(&b, "- %s：%s；难度 %s；频率 %s\n", it.Name, tasks, it.DifficultyText, it.FrequencyText)
		}
	}

	if in.TemplateIntro != "" {
		fmt.Fprintf(&b, "\n参考开场：%s\n", in.TemplateIntro)
	}
	return b.String()
}
