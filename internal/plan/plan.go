// Package plan assembles the personalized training plan from a profile
// and the task catalog.
package plan

import (
	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/usertype"
)

// Plan is the generated training plan.
type Plan struct {
	PlanID                string            `json:"plan_id"`
	UserType              usertype.UserType `json:"user_type"`
	Overview              string            `json:"overview"`
	TrainingPlanIntro     string            `json:"training_plan_intro"`
	Modules               []TrainingModule  `json:"modules"`
	ScorePrediction       string            `json:"score_prediction"`
	HomeAdvice            []string          `json:"home_advice"`
	TrackingAndAdjustment []string          `json:"tracking_and_adjustment"`
	RawText               string            `json:"raw_text"`

	Trace Trace `json:"-"`
}

// TrainingModule is one named group of training items.
type TrainingModule struct {
	ModuleName string         `json:"module_name"`
	Items      []TrainingItem `json:"items"`
}

// TrainingItem is the training advice for one ability.
type TrainingItem struct {
	Name           string `json:"name"`
	TasksText      string `json:"tasks_text"`
	DifficultyText string `json:"difficulty_text"`
	FrequencyText  string `json:"frequency_text"`
	GoalText       string `json:"goal_text"`
	Description    string `json:"description,omitempty"`

	Ability ability.Ability `json:"-"`
}

// Trace records how the plan was derived. It is kept for auditing and is
// not part of the wire form.
type Trace struct {
	Rule    string
	Dropped []string
}

// ItemName is the display name of the item training a.
func ItemName(a ability.Ability) string {
	return ability.DisplayName(a) + "训练"
}
