package system

import (
	"runtime"

	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/sequence"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SequenceChanged is the payload of ecs.EventSequenceChanged.
type SequenceChanged struct {
	Entity ecs.Entity
	From   character.SequenceID
	To     character.SequenceID
}

// CharacterSequenceSystem resolves every character's sequence status once
// per tick. Entities are independent, so resolution fans out over a bounded
// worker group and results are written back in entity order.
type CharacterSequenceSystem struct {
	workers int
	logger  *zap.Logger
}

// NewCharacterSequenceSystem resolves on up to workers goroutines. Zero or
// less uses GOMAXPROCS.
func NewCharacterSequenceSystem(workers int, logger *zap.Logger) *CharacterSequenceSystem {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CharacterSequenceSystem{workers: workers, logger: logger}
}

type sequenceJob struct {
	entity ecs.Entity
	def    *character.Definition
	status *character.Status
	env    character.Environment
	next   character.Status
}

func (s *CharacterSequenceSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := ecs.Query(w,
		component.CharacterStatusComponent.ID(),
		component.CharacterDefinitionComponent.ID(),
	)
	jobs := make([]sequenceJob, 0, len(entities))
	for _, e := range entities {
		st, _ := ecs.Get(w, e, component.CharacterStatusComponent.Kind())
		def, _ := ecs.Get(w, e, component.CharacterDefinitionComponent.Kind())
		if def.Definition == nil {
			continue
		}
		jobs = append(jobs, sequenceJob{
			entity: e,
			def:    def.Definition,
			status: st,
			env:    environment(w, e),
		})
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			job.next = character.Resolve(job.def, *job.status, job.env)
			return nil
		})
	}
	_ = g.Wait()

	for i := range jobs {
		job := &jobs[i]
		prev := *job.status
		*job.status = job.next
		if prev.SequenceID == job.next.SequenceID && job.next.SequenceStatus != sequence.Begin {
			continue
		}
		s.logger.Debug("sequence changed",
			zap.Uint64("entity", uint64(job.entity)),
			zap.Stringer("from", prev.SequenceID),
			zap.Stringer("to", job.next.SequenceID),
			zap.Stringer("run_counter", job.next.RunCounter),
		)
		w.Events().Push(ecs.Event{
			Type: ecs.EventSequenceChanged,
			Data: SequenceChanged{Entity: job.entity, From: prev.SequenceID, To: job.next.SequenceID},
		})
	}
}

// environment gathers the optional components a tick reads. Missing
// components read as zero values except health, which defaults to alive.
func environment(w *ecs.World, e ecs.Entity) character.Environment {
	env := character.Environment{HealthPoints: 1}
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		env.Input = in.Current
		env.Events = in.Events
	}
	if hp, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		env.HealthPoints = hp.Current
	}
	if sp, ok := ecs.Get(w, e, component.SkillComponent.Kind()); ok {
		env.SkillPoints = sp.Current
	}
	if c, ok := ecs.Get(w, e, component.ChargeComponent.Kind()); ok {
		env.Charge = c.Clock
		env.ChargeUseMode = c.UseMode
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		env.Position = t.Position
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		env.Velocity = v.Vec
	}
	if g, ok := ecs.Get(w, e, component.GroundingComponent.Kind()); ok {
		env.Grounding = g.State
	}
	return env
}
