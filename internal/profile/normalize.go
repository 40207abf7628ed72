package profile

import (
	"slices"

	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/ability"
)

// Normalize joins the catalog with the profile's last-task and missed-task
// references. Ids without a catalog entry are dropped and reported as a
// data-quality event; they never fail the request.
func Normalize(catalog []TaskCatalogEntry, p Profile, logger *zap.Logger) Normalized {
	if logger == nil {
		logger = zap.NewNop()
	}

	index := make(map[string]TaskCatalogEntry, len(catalog))
	byAbility := make(map[ability.Ability][]TaskCatalogEntry, len(ability.All()))
	for _, a := range ability.All() {
		byAbility[a] = nil
	}
	for _, e := range catalog {
		if _, dup := index[e.ID]; !dup {
			index[e.ID] = e
		}
		if e.Ability.Valid() {
			byAbility[e.Ability] = append(byAbility[e.Ability], e)
		}
	}

	out := Normalized{ByAbility: byAbility}

	if p.LastTaskID != "" {
		if e, ok := index[p.LastTaskID]; ok {
			out.LastTask = &LastTaskInfo{
				ID:         e.ID,
				Name:       e.Name,
				Difficulty: e.Difficulty,
				Ability:    e.Ability,
			}
		} else {
			out.Dropped = append(out.Dropped, p.LastTaskID)
		}
	}

	seen := make(map[string]bool, len(p.MissedTaskIDs))
	for _, id := range p.MissedTaskIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		e, ok := index[id]
		if !ok {
			out.Dropped = append(out.Dropped, id)
			continue
		}
		out.Missed = append(out.Missed, NormalizedTask{
			ID:          e.ID,
			Name:        e.Name,
			Difficulty:  e.Difficulty,
			LifeDesc:    e.LifeDesc,
			Paradigm:    e.Paradigm,
			DurationMin: e.DurationMin,
			Level1Brain: e.Level1Brain,
			Level2Brain: slices.Clone(e.Level2Brain),
		})
	}

	if len(out.Dropped) > 0 {
		logger.Warn("data quality: task ids missing from catalog",
			zap.String("stage", "normalize"),
			zap.String("user_id", p.UserID),
			zap.Strings("ids", out.Dropped),
			zap.Int("catalog_size", len(catalog)),
		)
	}

	return out
}
