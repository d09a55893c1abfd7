package ecs

import (
	"slices"

	"github.com/milk9111/brawler/ecs/component"
)

// Query returns live entities holding every listed component, ordered by
// slot so results are stable between ticks.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(ids))
	for _, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	slices.SortFunc(sets, func(a, b *SparseSet) int { return a.Len() - b.Len() })

	matched := make([]entityID, 0, sets[0].Len())
outer:
	for _, id := range sets[0].ids() {
		for _, s := range sets[1:] {
			if !s.Has(id) {
				continue outer
			}
		}
		matched = append(matched, id)
	}
	slices.Sort(matched)

	out := make([]Entity, 0, len(matched))
	for _, id := range matched {
		if e, ok := w.entities.entity(id); ok {
			out = append(out, e)
		}
	}
	return out
}
