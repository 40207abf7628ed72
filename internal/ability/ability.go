package ability

import "strings"

// Ability is one of the four level-1 cognitive abilities.
type Ability string

const (
	Perception Ability = "perception"
	Exec       Ability = "exec"
	Attention  Ability = "attention"
	Memory     Ability = "memory"
)

// All returns every ability in declaration order. Tie-breaks across the
// rule engine follow this order.
func All() []Ability {
	return []Ability{Perception, Exec, Attention, Memory}
}

// Parse validates a raw ability key. Keys are trimmed and lower-cased;
// "exec_control" and "executive" are accepted as aliases of exec.
func Parse(s string) (Ability, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perception":
		return Perception, true
	case "exec", "exec_control", "executive":
		return Exec, true
	case "attention":
		return Attention, true
	case "memory":
		return Memory, true
	default:
		return "", false
	}
}

// Valid reports whether a is one of the four known abilities.
func (a Ability) Valid() bool {
	return a.Index() < len(All())
}

// Index returns the declaration-order position of a, or len(All()) for
// unknown values so they sort last.
func (a Ability) Index() int {
	for i, v := range All() {
		if v == a {
			return i
		}
	}
	return len(All())
}

// DisplayName returns the Chinese display name used in plan text.
func DisplayName(a Ability) string {
	switch a {
	case Perception:
		return "感知觉"
	case Exec:
		return "执行控制"
	case Attention:
		return "注意力"
	case Memory:
		return "记忆力"
	default:
		return string(a)
	}
}

// Scores maps each ability to a level-1 score. Values <= 0 mean no data.
type Scores map[Ability]float64

// Get returns the score for a and whether it carries data (> 0).
func (s Scores) Get(a Ability) (float64, bool) {
	v, ok := s[a]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// Present returns the abilities that carry data, in declaration order.
func (s Scores) Present() []Ability {
	var out []Ability
	for _, a := range All() {
		if _, ok := s.Get(a); ok {
			out = append(out, a)
		}
	}
	return out
}

// SubScores maps each level-1 ability to its level-2 sub-ability scores.
type SubScores map[Ability]map[string]float64
