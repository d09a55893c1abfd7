package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/logicclock"
	"github.com/milk9111/brawler/prefabs"
)

// NewCharacter builds a character from a prefab file at the stage origin.
func NewCharacter(w *ecs.World, file string, player int) (ecs.Entity, error) {
	return NewCharacterAt(w, file, player, 0, 0)
}

// NewCharacterAt builds a character from a prefab file standing at (x, z).
func NewCharacterAt(w *ecs.World, file string, player int, x, z float64) (ecs.Entity, error) {
	spec, def, err := prefabs.LoadCharacter(file)
	if err != nil {
		return 0, err
	}
	return BuildCharacter(w, file, spec, def, player, x, z)
}

// BuildCharacter attaches every component a playable character needs. A
// negative player index leaves the character without input.
func BuildCharacter(w *ecs.World, file string, spec *prefabs.CharacterSpec, def *character.Definition, player int, x, z float64) (ecs.Entity, error) {
	mode, err := spec.ChargeUseMode()
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	status := character.NewStatus(def)

	adds := []func() error{
		func() error {
			return ecs.Add(w, e, component.CharacterDefinitionComponent.Kind(), &component.CharacterDefinition{Name: file, Definition: def})
		},
		func() error { return ecs.Add(w, e, component.CharacterStatusComponent.Kind(), &status) },
		func() error {
			return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{
				Current: character.HealthPoints(spec.Health),
				Max:     character.HealthPoints(spec.Health),
			})
		},
		func() error {
			return ecs.Add(w, e, component.SkillComponent.Kind(), &component.Skill{
				Current: character.SkillPoints(spec.SkillPoints),
				Max:     character.SkillPoints(spec.SkillPoints),
			})
		},
		func() error {
			return ecs.Add(w, e, component.ChargeComponent.Kind(), &component.Charge{
				Clock:         logicclock.New(spec.Charge.Limit),
				UseMode:       mode,
				TicksPerPoint: spec.Charge.TicksPerPoint,
			})
		},
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: character.Vec3{X: x, Z: z}})
		},
		func() error { return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}) },
		func() error { return ecs.Add(w, e, component.GroundingComponent.Kind(), &component.Grounding{}) },
		func() error {
			return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: spec.Collider.Width, Height: spec.Collider.Height})
		},
		func() error {
			m := spec.Movement
			return ecs.Add(w, e, component.MovementComponent.Kind(), &component.Movement{
				WalkSpeed:     m.WalkSpeed,
				RunSpeed:      m.RunSpeed,
				DepthSpeed:    m.DepthSpeed,
				JumpVelocity:  m.JumpVelocity,
				DashVelocityX: m.DashVelocityX,
				DashVelocityY: m.DashVelocityY,
				DodgeSpeed:    m.DodgeSpeed,
			})
		},
		func() error {
			return ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
				Label: spec.Name,
				Color: spec.Color.ColorOr(color.White),
			})
		},
	}
	if player >= 0 {
		adds = append(adds,
			func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
			func() error { return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{Index: player}) },
		)
	}

	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("character %s: %w", file, err)
		}
	}
	return e, nil
}
