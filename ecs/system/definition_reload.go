package system

import (
	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"go.uber.org/zap"
)

// DefinitionSource yields definitions rebuilt since the last poll, keyed by
// prefab file name.
type DefinitionSource interface {
	Poll() map[string]*character.Definition
}

// DefinitionSwapped is the payload of ecs.EventDefinitionSwap.
type DefinitionSwapped struct {
	Entity ecs.Entity
	Name   string
}

// DefinitionReloadSystem swaps reloaded definitions into live characters.
// Each character keeps its sequence and its cursor is clamped to the new
// frames.
type DefinitionReloadSystem struct {
	source DefinitionSource
	logger *zap.Logger
}

func NewDefinitionReloadSystem(source DefinitionSource, logger *zap.Logger) *DefinitionReloadSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefinitionReloadSystem{source: source, logger: logger}
}

func (d *DefinitionReloadSystem) Update(w *ecs.World) {
	if d == nil || d.source == nil || w == nil {
		return
	}
	defs := d.source.Poll()
	if len(defs) == 0 {
		return
	}
	ecs.ForEach2(w,
		component.CharacterDefinitionComponent.Kind(),
		component.CharacterStatusComponent.Kind(),
		func(e ecs.Entity, def *component.CharacterDefinition, st *character.Status) {
			next, ok := defs[def.Name]
			if !ok || next == nil {
				return
			}
			def.Definition = next
			*st = st.Rebind(next)
			d.logger.Info("swapped character definition",
				zap.Uint64("entity", uint64(e)),
				zap.String("file", def.Name),
				zap.Stringer("sequence", st.SequenceID),
			)
			w.Events().Push(ecs.Event{Type: ecs.EventDefinitionSwap, Data: DefinitionSwapped{Entity: e, Name: def.Name}})
		},
	)
}
