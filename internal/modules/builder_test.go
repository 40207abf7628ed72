package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/usertype"
)

func abilitiesOf(sk []Skeleton) map[ability.Ability]int {
	seen := make(map[ability.Ability]int)
	for _, s := range sk {
		for _, a := range s.Abilities {
			seen[a]++
		}
	}
	return seen
}

func TestBuild_AdvantageTopTwo(t *testing.T) {
	got := Build(Input{
		Type: usertype.Advantage,
		Scores: ability.Scores{
			ability.Perception: 105,
			ability.Exec:       130,
			ability.Attention:  110,
			ability.Memory:     80,
		},
	})

	require.Len(t, got, 2)
	assert.Equal(t, AdvantageExpand, got[0].Name)
	assert.Equal(t, []ability.Ability{ability.Exec, ability.Attention}, got[0].Abilities)
	assert.Equal(t, BalancedTrain, got[1].Name)
	assert.Equal(t, []ability.Ability{ability.Perception, ability.Memory}, got[1].Abilities)
}

func TestBuild_TiesFollowDeclarationOrder(t *testing.T) {
	got := Build(Input{
		Type: usertype.Potential,
		Scores: ability.Scores{
			ability.Perception: 92,
			ability.Exec:       95,
			ability.Attention:  95,
			ability.Memory:     95,
		},
	})

	assert.Equal(t, PotentialExpand, got[0].Name)
	assert.Equal(t, []ability.Ability{ability.Exec, ability.Attention}, got[0].Abilities)
	assert.Equal(t, []ability.Ability{ability.Perception, ability.Memory}, got[1].Abilities)
}

func TestBuild_SingleAboveLine(t *testing.T) {
	got := Build(Input{
		Type:   usertype.Potential,
		Scores: ability.Scores{ability.Memory: 91, ability.Exec: 30},
	})

	assert.Equal(t, []ability.Ability{ability.Memory}, got[0].Abilities)
	assert.Equal(t, []ability.Ability{ability.Perception, ability.Exec, ability.Attention}, got[1].Abilities)
}

func TestBuild_CompletePartition(t *testing.T) {
	profiles := []ability.Scores{
		{ability.Perception: 150, ability.Exec: 140, ability.Attention: 120, ability.Memory: 101},
		{ability.Perception: 0, ability.Exec: 100},
		{},
	}
	for _, ut := range usertype.All() {
		for _, scores := range profiles {
			got := Build(Input{Type: ut, Scores: scores})
			seen := abilitiesOf(got)
			assert.Len(t, seen, 4, "type %s scores %v", ut, scores)
			for a, n := range seen {
				assert.Equal(t, 1, n, "ability %s placed %d times", a, n)
			}
		}
	}
}

func TestBuild_SpecialCoreFromSubScore(t *testing.T) {
	got := Build(Input{
		Type:      usertype.Special,
		Scores:    ability.Scores{ability.Perception: 85, ability.Memory: 60},
		SubScores: ability.SubScores{ability.Memory: {"working_memory": 130, "span": 105}, ability.Exec: {"inhibition": 110}},
	})

	assert.Equal(t, CoreStrengthen, got[0].Name)
	assert.Equal(t, []ability.Ability{ability.Memory}, got[0].Abilities)
	assert.Equal(t, RelatedEnhance, got[1].Name)
	assert.Equal(t, []ability.Ability{ability.Perception, ability.Exec, ability.Attention}, got[1].Abilities)
}

func TestBuild_SpecialWithoutSubScoresUsesLevelOne(t *testing.T) {
	got := Build(Input{
		Type:   usertype.Special,
		Scores: ability.Scores{ability.Attention: 70, ability.Exec: 75},
	})
	assert.Equal(t, []ability.Ability{ability.Exec}, got[0].Abilities)
}

func TestBuild_GrowthWeakestFirst(t *testing.T) {
	got := Build(Input{
		Type:   usertype.Growth,
		Scores: ability.Scores{ability.Perception: 70, ability.Exec: 0, ability.Attention: 40, ability.Memory: 85},
	})

	assert.Equal(t, BasicStable, got[0].Name)
	assert.Equal(t, []ability.Ability{ability.Exec, ability.Attention}, got[0].Abilities)
	assert.Equal(t, StepUp, got[1].Name)
	assert.Equal(t, []ability.Ability{ability.Perception, ability.Memory}, got[1].Abilities)
}

func TestNameTableFallback(t *testing.T) {
	n := DefaultNames().For(usertype.UserType("other"))
	assert.Equal(t, PotentialExpand, n.Primary)
}
