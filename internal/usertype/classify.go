package usertype

import "github.com/mindstep/aiplan/internal/ability"

// Thresholds holds the score lines used by the classifier.
type Thresholds struct {
	Advantage float64 // level-1 score at or above this is an advantage
	Potential float64 // level-1 score in [Potential, Advantage) shows potential
	Special   float64 // level-2 sub-score strictly above this is special
}

// DefaultThresholds returns the production score lines.
func DefaultThresholds() Thresholds {
	return Thresholds{Advantage: 100, Potential: 90, Special: 100}
}

// Rule names reported by Explain.
const (
	RuleAdvantage = "level1-advantage"
	RulePotential = "level1-potential"
	RuleSpecial   = "level2-special"
	RuleGrowth    = "level1-growth"
	RuleFallback  = "fallback"
)

// Classify assigns exactly one user type. Scores <= 0 carry no data and
// are excluded before any rule runs.
func Classify(scores ability.Scores, subs ability.SubScores, th Thresholds) UserType {
	t, _ := Explain(scores, subs, th)
	return t
}

// Explain is Classify plus the name of the rule that matched. Rules are
// evaluated in a fixed order and the first match wins.
func Explain(scores ability.Scores, subs ability.SubScores, th Thresholds) (UserType, string) {
	var valid []float64
	for _, a := range scores.Present() {
		valid = append(valid, scores[a])
	}

	for _, v := range valid {
		if v >= th.Advantage {
			return Advantage, RuleAdvantage
		}
	}
	for _, v := range valid {
		if v >= th.Potential && v < th.Advantage {
			return Potential, RulePotential
		}
	}
	for _, a := range ability.All() {
		for _, v := range subs[a] {
			if v > 0 && v > th.Special {
				return Special, RuleSpecial
			}
		}
	}

	allBelow := true
	for _, v := range valid {
		if v >= th.Potential {
			allBelow = false
			break
		}
	}
	if allBelow {
		return Growth, RuleGrowth
	}

	// Unreachable with consistent thresholds; kept so the function is total.
	return Potential, RuleFallback
}
