package usertype

import (
	"encoding/json"
	"testing"

	"github.com/mindstep/aiplan/internal/ability"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name   string
		scores ability.Scores
		subs   ability.SubScores
		want   UserType
		rule   string
	}{
		{
			name:   "advantage at line",
			scores: ability.Scores{ability.Perception: 100, ability.Exec: 60},
			want:   Advantage, rule: RuleAdvantage,
		},
		{
			name:   "advantage beats special",
			scores: ability.Scores{ability.Memory: 120},
			subs:   ability.SubScores{ability.Attention: {"sustained": 150}},
			want:   Advantage, rule: RuleAdvantage,
		},
		{
			name:   "potential lower bound",
			scores: ability.Scores{ability.Exec: 90, ability.Memory: 50},
			want:   Potential, rule: RulePotential,
		},
		{
			name:   "potential beats special",
			scores: ability.Scores{ability.Exec: 99.9},
			subs:   ability.SubScores{ability.Exec: {"inhibition": 130}},
			want:   Potential, rule: RulePotential,
		},
		{
			name:   "special from sub-score",
			scores: ability.Scores{ability.Perception: 80, ability.Exec: 70},
			subs:   ability.SubScores{ability.Memory: {"working_memory": 101}},
			want:   Special, rule: RuleSpecial,
		},
		{
			name:   "sub-score at line is not special",
			scores: ability.Scores{ability.Perception: 80},
			subs:   ability.SubScores{ability.Memory: {"working_memory": 100}},
			want:   Growth, rule: RuleGrowth,
		},
		{
			name:   "growth below potential",
			scores: ability.Scores{ability.Perception: 89, ability.Exec: 40, ability.Attention: 70, ability.Memory: 10},
			want:   Growth, rule: RuleGrowth,
		},
		{
			name:   "all scores missing",
			scores: ability.Scores{ability.Perception: 0, ability.Exec: -5},
			want:   Growth, rule: RuleGrowth,
		},
		{
			name: "nil maps",
			want: Growth, rule: RuleGrowth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rule := Explain(tt.scores, tt.subs, th)
			if got != tt.want {
				t.Errorf("Explain() type = %s, want %s", got, tt.want)
			}
			if rule != tt.rule {
				t.Errorf("Explain() rule = %s, want %s", rule, tt.rule)
			}
		})
	}
}

func TestClassifyIsTotal(t *testing.T) {
	values := []float64{-1, 0, 50, 89.99, 90, 99, 100, 150}
	for _, p := range values {
		for _, m := range values {
			got := Classify(ability.Scores{ability.Perception: p, ability.Memory: m}, nil, DefaultThresholds())
			if _, ok := Parse(string(got)); !ok {
				t.Fatalf("Classify(%v, %v) returned %q", p, m, got)
			}
		}
	}
}

func TestUserTypeJSON(t *testing.T) {
	b, err := json.Marshal(Special)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"专项优势型"` {
		t.Errorf("Marshal = %s", b)
	}
	var got UserType
	if err := json.Unmarshal([]byte(`"growth"`), &got); err != nil || got != Growth {
		t.Errorf("Unmarshal = %s, %v", got, err)
	}
	if err := json.Unmarshal([]byte(`"unknown"`), &got); err == nil {
		t.Error("expected error for unknown label")
	}
}
