package system

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"golang.org/x/image/colornames"
)

// depthScale squashes stage depth so the floor reads as receding.
const depthScale = 0.5

// RenderSystem draws the stage floor and every character as a coloured box
// with a shadow on the floor.
type RenderSystem struct {
	// Labels prints each character's sequence above it.
	Labels bool
	// Top is the screen y of the back edge of the floor.
	Top float64
}

func NewRenderSystem(labels bool) *RenderSystem {
	return &RenderSystem{Labels: labels, Top: 240}
}

// Project maps a feet position to screen space.
func (r *RenderSystem) Project(pos character.Vec3) (x, y float64) {
	return pos.X, r.Top + pos.Z*depthScale - pos.Y
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	if pw := w.PhysicsWorld(); pw != nil {
		stage := pw.Stage()
		vector.FillRect(screen, 0, float32(r.Top), float32(stage.Width), float32(stage.Depth*depthScale), colornames.Darkslategray, false)
		vector.StrokeLine(screen, 0, float32(r.Top), float32(stage.Width), float32(r.Top), 1, colornames.Lightslategray, false)
	}

	entities := ecs.Query(w,
		component.TransformComponent.ID(),
		component.ColliderComponent.ID(),
		component.AppearanceComponent.ID(),
	)
	// far characters first
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		if ti.Position.Z != tj.Position.Z {
			return ti.Position.Z < tj.Position.Z
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		a, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())

		shadowX, shadowY := r.Project(character.Vec3{X: t.Position.X, Z: t.Position.Z})
		vector.FillRect(screen, float32(shadowX-c.Width/2), float32(shadowY-2), float32(c.Width), 4, colornames.Black, false)

		x, y := r.Project(t.Position)
		left, top := float32(x-c.Width/2), float32(y-c.Height)
		vector.FillRect(screen, left, top, float32(c.Width), float32(c.Height), a.Color, false)

		st, ok := ecs.Get(w, e, component.CharacterStatusComponent.Kind())
		if !ok {
			continue
		}
		// facing marker
		eyeX := left + float32(c.Width) - 6
		if st.Mirrored {
			eyeX = left + 2
		}
		vector.FillRect(screen, eyeX, top+6, 4, 4, colornames.White, false)

		if r.Labels {
			label := fmt.Sprintf("%s %s\n%s", a.Label, st.SequenceID, st.FrameIndex)
			ebitenutil.DebugPrintAt(screen, label, int(left), int(top)-32)
		}
	}
}
