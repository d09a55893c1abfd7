package system

import (
	"github.com/milk9111/brawler/ecs"
	"go.uber.org/zap"
)

// EventLogSystem drains the world's event queue into the logger. It should
// run last.
type EventLogSystem struct {
	logger *zap.Logger
	// Events holds the number of events seen per type.
	Events map[string]int
}

func NewEventLogSystem(logger *zap.Logger) *EventLogSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventLogSystem{logger: logger, Events: make(map[string]int)}
}

func (s *EventLogSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		s.Events[evt.Type]++
		switch data := evt.Data.(type) {
		case SequenceChanged:
			s.logger.Debug(evt.Type,
				zap.Uint64("entity", uint64(data.Entity)),
				zap.Stringer("from", data.From),
				zap.Stringer("to", data.To),
			)
		case Landed:
			s.logger.Debug(evt.Type, zap.Uint64("entity", uint64(data.Entity)))
		case DefinitionSwapped:
			s.logger.Info(evt.Type, zap.Uint64("entity", uint64(data.Entity)), zap.String("file", data.Name))
		default:
			s.logger.Debug(evt.Type, zap.Any("data", evt.Data))
		}
	}
}
