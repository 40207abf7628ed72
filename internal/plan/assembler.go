package plan

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/estimate"
	"github.com/mindstep/aiplan/internal/goals"
	"github.com/mindstep/aiplan/internal/modules"
	"github.com/mindstep/aiplan/internal/narrative"
	"github.com/mindstep/aiplan/internal/profile"
	"github.com/mindstep/aiplan/internal/taskmatch"
	"github.com/mindstep/aiplan/internal/templates"
	"github.com/mindstep/aiplan/internal/usertype"
)

// Options configures an Assembler. Zero fields take defaults.
type Options struct {
	Templates  *templates.Table
	Names      modules.NameTable
	Thresholds usertype.Thresholds
	Phrases    *estimate.Phrases

	Goals     goals.Writer
	Narrative narrative.Writer

	// Seed fixes the task-matching random source so that every request
	// with the same input renders the same plan.
	Seed *uint64

	Logger *zap.Logger
}

// Assembler composes the rule engine and text collaborators into a Plan.
// It holds only read-only tables and is safe for concurrent use.
type Assembler struct {
	templates  *templates.Table
	names      modules.NameTable
	thresholds usertype.Thresholds
	phrases    estimate.Phrases
	goals      goals.Writer
	narrative  narrative.Writer
	seed       *uint64
	logger     *zap.Logger
}

func NewAssembler(opts Options) *Assembler {
	a := &Assembler{
		templates:  opts.Templates,
		names:      opts.Names,
		thresholds: opts.Thresholds,
		phrases:    estimate.Chinese(),
		goals:      opts.Goals,
		narrative:  opts.Narrative,
		seed:       opts.Seed,
		logger:     opts.Logger,
	}
	if a.templates == nil {
		a.templates = templates.Default()
	}
	if a.names == nil {
		a.names = modules.DefaultNames()
	}
	if a.thresholds == (usertype.Thresholds{}) {
		a.thresholds = usertype.DefaultThresholds()
	}
	if opts.Phrases != nil {
		a.phrases = *opts.Phrases
	}
	if a.goals == nil {
		a.goals = goals.TemplateWriter{}
	}
	if a.narrative == nil {
		a.narrative = narrative.StaticWriter{}
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a
}

// Request is one plan request.
type Request struct {
	Profile profile.Profile
	Catalog []profile.TaskCatalogEntry

	// Rand overrides the random source for this request.
	Rand *rand.Rand
}

// Assemble builds the plan for req. Errors from the goal or narrative
// writers abort the request and are returned wrapped.
func (a *Assembler) Assemble(ctx context.Context, req Request) (*Plan, error) {
	p := req.Profile
	norm := profile.Normalize(req.Catalog, p, a.logger)
	ut, rule := usertype.Explain(p.Scores, p.SubScores, a.thresholds)
	skeletons := modules.Build(modules.Input{
		Type:       ut,
		Scores:     p.Scores,
		SubScores:  p.SubScores,
		Thresholds: a.thresholds,
		Names:      a.names,
	})

	rng := a.source(req.Rand)
	mods := make([]TrainingModule, 0, len(skeletons))
	for _, sk := range skeletons {
		mod := TrainingModule{ModuleName: string(sk.Name), Items: []TrainingItem{}}
		for _, ab := range sk.Abilities {
			match := taskmatch.Match(ab, norm.Missed, rng)
			if match.Empty() {
				a.logger.Debug("no missed tasks for ability", zap.String("ability", string(ab)))
			}
			goal, err := a.goals.Goal(ctx, ab, match.Matched)
			if err != nil {
				return nil, fmt.Errorf("goal text for %s: %w", ab, err)
			}
			item := TrainingItem{
				Name:           ItemName(ab),
				TasksText:      match.Text,
				DifficultyText: estimate.Difficulty(norm.LastTask, match.Matched, a.phrases),
				FrequencyText:  estimate.Frequency(match.Matched, a.phrases),
				GoalText:       goal,
				Ability:        ab,
			}
			if len(match.Selected) > 0 {
				item.Description = match.Selected[0].LifeDesc
			}
			mod.Items = append(mod.Items, item)
		}
		mods = append(mods, mod)
	}

	tpl := a.templates.Lookup(ut)
	story, err := a.narrative.Write(ctx, narrativeInput(p, ut, mods, tpl.TrainingPlanIntro))
	if err != nil {
		return nil, fmt.Errorf("plan narrative: %w", err)
	}
	intro := story.Intro
	if intro == "" {
		intro = tpl.TrainingPlanIntro
	}

	a.logger.Debug("plan assembled",
		zap.String("user_id", p.UserID),
		zap.String("user_type", string(ut)),
		zap.String("rule", rule),
		zap.Int("missed", len(norm.Missed)),
	)

	return &Plan{
		PlanID:                uuid.NewString(),
		UserType:              ut,
		Overview:              tpl.Overview,
		TrainingPlanIntro:     intro,
		Modules:               mods,
		ScorePrediction:       story.ScorePrediction,
		HomeAdvice:            tpl.HomeAdvice,
		TrackingAndAdjustment: tpl.TrackingAndAdjustment,
		RawText:               story.Raw,
		Trace:                 Trace{Rule: rule, Dropped: norm.Dropped},
	}, nil
}

func (a *Assembler) source(override *rand.Rand) *rand.Rand {
	switch {
	case override != nil:
		return override
	case a.seed != nil:
		return rand.New(rand.NewPCG(*a.seed, *a.seed))
	default:
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

func narrativeInput(p profile.Profile, ut usertype.UserType, mods []TrainingModule, intro string) narrative.Input {
	in := narrative.Input{
		UserType:      ut,
		Scores:        p.Scores,
		SubScores:     p.SubScores,
		TrainDays:     p.TrainDays,
		DiseaseTag:    p.DiseaseTag,
		TemplateIntro: intro,
	}
	for _, m := range mods {
		nm := narrative.Module{Name: m.ModuleName}
		for _, it := range m.Items {
			nm.Items = append(nm.Items, narrative.Item{
				Name:           it.Name,
				TasksText:      it.TasksText,
				DifficultyText: it.DifficultyText,
				FrequencyText:  it.FrequencyText,
			})
		}
		in.Modules = append(in.Modules, nm)
	}
	return in
}
