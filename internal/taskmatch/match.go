package taskmatch

import (
	"slices"
	"strings"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/profile"
)

// NoParadigm is the reserved bucket for tasks without a paradigm.
const NoParadigm = "no_paradigm"

// PerBucket is the number of tasks rendered from the chosen bucket.
const PerBucket = 2

// Picker chooses a bucket index in [0, n). *rand.Rand satisfies it.
type Picker interface {
	IntN(n int) int
}

// Group is one paradigm bucket in first-seen order.
type Group struct {
	Paradigm string
	Tasks    []profile.NormalizedTask
}

// Result is the outcome of matching one ability.
type Result struct {
	// Text is the rendered task set; empty means no personalized tasks.
	Text     string
	Matched  []profile.NormalizedTask
	Groups   []Group
	Selected []profile.NormalizedTask
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool { return len(r.Matched) == 0 }

// Matches reports whether task t trains ability a, either as its level-1
// tag or as a member of its level-2 tags.
func Matches(a ability.Ability, t profile.NormalizedTask) bool {
	return t.Level1Brain == a || slices.Contains(t.Level2Brain, string(a))
}

// Match filters tasks for ability a, groups them by paradigm and renders a
// representative subset. When more than one paradigm bucket has tasks the
// bucket is chosen with pick.
func Match(a ability.Ability, tasks []profile.NormalizedTask, pick Picker) Result {
	var res Result
	var loose []profile.NormalizedTask
	index := make(map[string]int)

	for _, t := range tasks {
		if !Matches(a, t) {
			continue
		}
		res.Matched = append(res.Matched, t)
		if t.Paradigm == "" || t.Paradigm == NoParadigm {
			loose = append(loose, t)
			continue
		}
		i, ok := index[t.Paradigm]
		if !ok {
			i = len(res.Groups)
			index[t.Paradigm] = i
			res.Groups = append(res.Groups, Group{Paradigm: t.Paradigm})
		}
		res.Groups[i].Tasks = append(res.Groups[i].Tasks, t)
	}
	if len(loose) > 0 {
		res.Groups = append(res.Groups, Group{Paradigm: NoParadigm, Tasks: loose})
	}

	paradigms := len(res.Groups)
	if len(loose) > 0 {
		paradigms--
	}

	switch {
	case paradigms > 0:
		i := 0
		if paradigms > 1 && pick != nil {
			i = pick.IntN(paradigms)
		}
		g := res.Groups[i]
		res.Selected = head(g.Tasks)
		res.Text = g.Paradigm + "（" + joinNames(res.Selected) + "）"
	case len(loose) > 0:
		res.Selected = head(loose)
		res.Text = joinNames(res.Selected) + "等任务"
	}
	return res
}

func head(tasks []profile.NormalizedTask) []profile.NormalizedTask {
	if len(tasks) > PerBucket {
		return tasks[:PerBucket]
	}
	return tasks
}

func joinNames(tasks []profile.NormalizedTask) string {
	names := make([]string, len(tasks))
	for i, t := range tasks {
		names[i] = t.Name
	}
	return strings.Join(names, "、")
}
