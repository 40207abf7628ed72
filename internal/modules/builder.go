package modules

import (
	"sort"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/usertype"
)

// ExpandSize is the number of abilities placed in an expand module.
const ExpandSize = 2

// Skeleton is one module with the abilities it trains, in item order.
type Skeleton struct {
	Name      Name
	Abilities []ability.Ability
}

// Input carries what the builder needs from the profile.
type Input struct {
	Type       usertype.UserType
	Scores     ability.Scores
	SubScores  ability.SubScores
	Thresholds usertype.Thresholds
	Names      NameTable
}

// Build splits the four abilities into two named modules. Advantage and
// potential profiles use a threshold split; special and growth profiles
// each have their own strategy. Every ability lands in exactly one module.
func Build(in Input) []Skeleton {
	if in.Names == nil {
		in.Names = DefaultNames()
	}
	if in.Thresholds == (usertype.Thresholds{}) {
		in.Thresholds = usertype.DefaultThresholds()
	}
	names := in.Names.For(in.Type)

	var primary, secondary []ability.Ability
	switch in.Type {
	case usertype.Advantage:
		primary, secondary = thresholdSplit(in.Scores, in.Thresholds.Advantage)
	case usertype.Special:
		primary, secondary = coreSplit(in.Scores, in.SubScores, in.Thresholds.Special)
	case usertype.Growth:
		primary, secondary = weakestSplit(in.Scores)
	default:
		primary, secondary = thresholdSplit(in.Scores, in.Thresholds.Potential)
	}

	return []Skeleton{
		{Name: names.Primary, Abilities: primary},
		{Name: names.Secondary, Abilities: secondary},
	}
}

// thresholdSplit takes the top ExpandSize abilities scoring at or above
// line, highest first with declaration-order ties. Everything else is
// returned in declaration order as the balanced group.
func thresholdSplit(scores ability.Scores, line float64) (expand, balanced []ability.Ability) {
	var above []ability.Ability
	for _, a := range ability.All() {
		if v, ok := scores.Get(a); ok && v >= line {
			above = append(above, a)
		}
	}
	sort.SliceStable(above, func(i, j int) bool {
		return scores[above[i]] > scores[above[j]]
	})
	if len(above) > ExpandSize {
		above = above[:ExpandSize]
	}
	return above, rest(above)
}

// coreSplit picks the ability owning the highest sub-score above line as
// the core. Without such a sub-score the highest level-1 score wins.
func coreSplit(scores ability.Scores, subs ability.SubScores, line float64) (core, related []ability.Ability) {
	best, bestScore := ability.Ability(""), 0.0
	for _, a := range ability.All() {
		for _, v := range subs[a] {
			if v > line && v > bestScore {
				best, bestScore = a, v
			}
		}
	}
	if best == "" {
		for _, a := range ability.All() {
			if v, ok := scores.Get(a); ok && v > bestScore {
				best, bestScore = a, v
			}
		}
	}
	if best == "" {
		best = ability.All()[0]
	}
	core = []ability.Ability{best}
	return core, rest(core)
}

// weakestSplit puts the two weakest abilities in the stabilizing module.
// Abilities without data count as weakest.
func weakestSplit(scores ability.Scores) (basic, stepUp []ability.Ability) {
	ordered := ability.All()
	sort.SliceStable(ordered, func(i, j int) bool {
		vi, oki := scores.Get(ordered[i])
		vj, okj := scores.Get(ordered[j])
		if oki != okj {
			return !oki
		}
		return vi < vj
	})
	basic = append([]ability.Ability(nil), ordered[:ExpandSize]...)
	return basic, rest(basic)
}

// rest returns every ability not in taken, in declaration order.
func rest(taken []ability.Ability) []ability.Ability {
	in := make(map[ability.Ability]bool, len(taken))
	for _, a := range taken {
		in[a] = true
	}
	var out []ability.Ability
	for _, a := range ability.All() {
		if !in[a] {
			out = append(out, a)
		}
	}
	return out
}
