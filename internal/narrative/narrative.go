// Package narrative writes the free-text parts of a plan: the training
// plan intro and the score prediction.
package narrative

import (
	"context"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/usertype"
)

// Input is what a Writer sees of the plan under construction.
type Input struct {
	UserType   usertype.UserType
	Scores     ability.Scores
	SubScores  ability.SubScores
	TrainDays  int
	DiseaseTag string
	Modules    []Module

	// TemplateIntro is the fixed intro for the user type.
	TemplateIntro string
}

// Module summarizes one built module.
type Module struct {
	Name  string
	Items []Item
}

// Item summarizes one training item.
type Item struct {
	Name           string
	TasksText      string
	DifficultyText string
	FrequencyText  string
}

// Narrative is the writer output. Raw is the unparsed model output, empty
// for static writers.
type Narrative struct {
	Intro           string
	ScorePrediction string
	Raw             string
}

// Writer produces the narrative for one plan.
type Writer interface {
	Write(ctx context.Context, in Input) (Narrative, error)
}

// StaticWriter returns the template intro and no prediction.
type StaticWriter struct{}

func (StaticWriter) Write(_ context.Context, in Input) (Narrative, error) {
	return Narrative{Intro: in.TemplateIntro}, nil
}
