package profile

import "github.com/mindstep/aiplan/internal/ability"

// Profile is the validated assessment profile for one child.
type Profile struct {
	UserID        string
	PatientCode   string
	Scores        ability.Scores
	SubScores     ability.SubScores
	TrainDays     int
	DiseaseTag    string
	LastTaskID    string // empty when no task has been completed
	MissedTaskIDs []string
}

// TaskCatalogEntry is one task in the training catalog.
type TaskCatalogEntry struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Ability     ability.Ability `json:"ability" yaml:"ability"`
	Difficulty  *float64        `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	LifeDesc    string          `json:"life_desc,omitempty" yaml:"life_desc,omitempty"`
	DurationMin *int            `json:"duration_min,omitempty" yaml:"duration_min,omitempty"`
	Paradigm    string          `json:"paradigm,omitempty" yaml:"paradigm,omitempty"`
	Level1Brain ability.Ability `json:"level1_brain,omitempty" yaml:"level1_brain,omitempty"`
	Level2Brain []string        `json:"level2_brain,omitempty" yaml:"level2_brain,omitempty"`
}

// NormalizedTask is a catalog entry resolved against one profile.
type NormalizedTask struct {
	ID          string
	Name        string
	Difficulty  *float64
	LifeDesc    string
	Paradigm    string
	DurationMin *int
	Level1Brain ability.Ability
	Level2Brain []string
}

// LastTaskInfo summarizes the most recently completed task.
type LastTaskInfo struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Difficulty *float64        `json:"difficulty,omitempty"`
	Ability    ability.Ability `json:"ability"`
}

// Normalized is the per-request join of catalog and profile.
type Normalized struct {
	ByAbility map[ability.Ability][]TaskCatalogEntry
	LastTask  *LastTaskInfo
	Missed    []NormalizedTask

	// Dropped lists referenced task ids with no catalog entry.
	Dropped []string
}
