package estimate

import (
	"fmt"
	"math"

	"github.com/mindstep/aiplan/internal/profile"
)

// Difficulty derives the difficulty text for one ability pass from the
// last completed task and the matched candidates. Only candidates harder
// than the last task contribute; non-finite difficulties count as absent.
func Difficulty(last *profile.LastTaskInfo, candidates []profile.NormalizedTask, ph Phrases) string {
	if last == nil || !finite(last.Difficulty) {
		return ph.DifficultyDefault
	}
	base := *last.Difficulty

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, c := range candidates {
		if !finite(c.Difficulty) || *c.Difficulty <= base {
			continue
		}
		d := round1(*c.Difficulty - base)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	if math.IsInf(lo, 1) {
		return ph.DifficultyDefault
	}
	if lo == hi {
		return fmt.Sprintf(ph.DifficultySingle, formatStep(lo))
	}
	return fmt.Sprintf(ph.DifficultyRange, formatStep(lo), formatStep(hi))
}

func finite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatStep(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
