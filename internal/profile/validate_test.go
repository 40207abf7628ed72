package profile

import (
	"math"
	"testing"

	"github.com/mindstep/aiplan/internal/ability"
)

func TestRawProfileBuild(t *testing.T) {
	raw := RawProfile{
		UserID:        "u1",
		Scores:        map[string]float64{"perception": 95, "exec": 0, "Memory": 72},
		SubScores:     map[string]map[string]float64{"memory": {"working_memory": 120}},
		LastTaskID:    " t1 ",
		MissedTaskIDs: []string{"t2", " ", "t3"},
	}

	p, err := raw.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Scores[ability.Perception] != 95 || p.Scores[ability.Memory] != 72 {
		t.Errorf("scores not mapped: %v", p.Scores)
	}
	if p.SubScores[ability.Memory]["working_memory"] != 120 {
		t.Errorf("sub scores not mapped: %v", p.SubScores)
	}
	if p.LastTaskID != "t1" {
		t.Errorf("LastTaskID = %q, want t1", p.LastTaskID)
	}
	if len(p.MissedTaskIDs) != 2 {
		t.Errorf("MissedTaskIDs = %v, want 2 ids", p.MissedTaskIDs)
	}
}

func TestRawProfileBuild_RejectsUnknownAbility(t *testing.T) {
	raw := RawProfile{Scores: map[string]float64{"speed": 50}}
	if _, err := raw.Build(); err == nil {
		t.Fatal("expected error for unknown ability key")
	}
}

func TestBuildCatalog(t *testing.T) {
	paradigm := " 长度知觉任务 "
	raw := []RawTask{
		{ID: "t1", Name: "小马过河", Ability: "perception", Paradigm: &paradigm, Level1Brain: "perception"},
		{ID: "", Name: "no id"},
		{ID: "t2", Name: "x", Ability: "speed", Level1Brain: "bogus"},
	}

	got := BuildCatalog(raw)

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Paradigm != "长度知觉任务" {
		t.Errorf("paradigm not trimmed: %q", got[0].Paradigm)
	}
	if got[1].Ability != "" || got[1].Level1Brain != "" {
		t.Errorf("unknown abilities should be cleared, got %q/%q", got[1].Ability, got[1].Level1Brain)
	}
}

func TestBuildCatalog_DropsNonFiniteDifficulty(t *testing.T) {
	nan, inf, ok := math.NaN(), math.Inf(-1), 2.5
	got := BuildCatalog([]RawTask{
		{ID: "t1", Difficulty: &nan},
		{ID: "t2", Difficulty: &inf},
		{ID: "t3", Difficulty: &ok},
	})

	if got[0].Difficulty != nil || got[1].Difficulty != nil {
		t.Errorf("non-finite difficulty should be dropped, got %v/%v", got[0].Difficulty, got[1].Difficulty)
	}
	if got[2].Difficulty == nil || *got[2].Difficulty != 2.5 {
		t.Errorf("finite difficulty lost: %v", got[2].Difficulty)
	}
}
