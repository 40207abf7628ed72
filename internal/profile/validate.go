package profile

import (
	"fmt"
	"math"
	"strings"

	"github.com/mindstep/aiplan/internal/ability"
)

// RawProfile is the loosely-typed profile as decoded from JSON or YAML.
type RawProfile struct {
	UserID        string                        `json:"user_id" yaml:"user_id"`
	PatientCode   string                        `json:"patient_code" yaml:"patient_code"`
	Scores        map[string]float64            `json:"scores" yaml:"scores"`
	SubScores     map[string]map[string]float64 `json:"sub_scores" yaml:"sub_scores"`
	TrainDays     int                           `json:"train_days" yaml:"train_days"`
	DiseaseTag    string                        `json:"disease_tag" yaml:"disease_tag"`
	LastTaskID    string                        `json:"last_task_id" yaml:"last_task_id"`
	MissedTaskIDs []string                      `json:"missed_task_ids" yaml:"missed_task_ids"`
}

// Build converts a raw profile into a Profile. Unknown ability keys are
// rejected; missing abilities simply carry no data.
func (r RawProfile) Build() (Profile, error) {
	p := Profile{
		UserID:        r.UserID,
		PatientCode:   r.PatientCode,
		Scores:        make(ability.Scores, len(r.Scores)),
		SubScores:     make(ability.SubScores, len(r.SubScores)),
		TrainDays:     r.TrainDays,
		DiseaseTag:    r.DiseaseTag,
		LastTaskID:    strings.TrimSpace(r.LastTaskID),
		MissedTaskIDs: make([]string, 0, len(r.MissedTaskIDs)),
	}
	for k, v := range r.Scores {
		a, ok := ability.Parse(k)
		if !ok {
			return Profile{}, fmt.Errorf("unknown ability %q in scores", k)
		}
		p.Scores[a] = v
	}
	for k, subs := range r.SubScores {
		a, ok := ability.Parse(k)
		if !ok {
			return Profile{}, fmt.Errorf("unknown ability %q in sub_scores", k)
		}
		m := make(map[string]float64, len(subs))
		for name, v := range subs {
			m[name] = v
		}
		p.SubScores[a] = m
	}
	for _, id := range r.MissedTaskIDs {
		if id = strings.TrimSpace(id); id != "" {
			p.MissedTaskIDs = append(p.MissedTaskIDs, id)
		}
	}
	return p, nil
}

// RawTask is a catalog entry as decoded from the task service.
type RawTask struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Ability     string   `json:"ability" yaml:"ability"`
	Difficulty  *float64 `json:"difficulty" yaml:"difficulty"`
	LifeDesc    string   `json:"life_desc" yaml:"life_desc"`
	Paradigm    *string  `json:"paradigm" yaml:"paradigm"`
	DurationMin *int     `json:"duration_min" yaml:"duration_min"`
	Level1Brain string   `json:"level1_brain" yaml:"level1_brain"`
	Level2Brain []string `json:"level2_brain" yaml:"level2_brain"`
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// BuildCatalog validates raw tasks. Entries without an id are skipped;
// unknown ability tags and non-finite difficulties are cleared rather than
// rejected so the entry can still resolve a missed-task reference.
func BuildCatalog(raw []RawTask) []TaskCatalogEntry {
	out := make([]TaskCatalogEntry, 0, len(raw))
	for _, r := range raw {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			continue
		}
		e := TaskCatalogEntry{
			ID:          id,
			Name:        strings.TrimSpace(r.Name),
			Difficulty:  finiteOrNil(r.Difficulty),
			LifeDesc:    r.LifeDesc,
			DurationMin: r.DurationMin,
			Level2Brain: r.Level2Brain,
		}
		if a, ok := ability.Parse(r.Ability); ok {
			e.Ability = a
		}
		if a, ok := ability.Parse(r.Level1Brain); ok {
			e.Level1Brain = a
		}
		if r.Paradigm != nil {
			e.Paradigm = strings.TrimSpace(*r.Paradigm)
		}
		out = append(out, e)
	}
	return out
}
