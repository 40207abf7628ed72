package estimate

import (
	"fmt"
	"slices"

	"github.com/mindstep/aiplan/internal/profile"
)

// Frequency derives the frequency text from the positive durations of the
// matched tasks. Only the shortest and longest durations are reported.
func Frequency(tasks []profile.NormalizedTask, ph Phrases) string {
	var mins []int
	for _, t := range tasks {
		if t.DurationMin != nil && *t.DurationMin > 0 {
			mins = append(mins, *t.DurationMin)
		}
	}
	if len(mins) == 0 {
		return ph.FrequencyDefault
	}
	slices.Sort(mins)
	lo, hi := mins[0], mins[len(mins)-1]
	if lo == hi {
		return fmt.Sprintf(ph.FrequencySingle, lo)
	}
	return fmt.Sprintf(ph.FrequencyRange, lo, hi)
}
