package main

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/brawler/config"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/entity"
	"github.com/milk9111/brawler/ecs/system"
	"github.com/milk9111/brawler/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg    *config.Config
	logger *zap.Logger

	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	reloader  *prefabs.Reloader
	players   []ecs.Entity
	ticks     int
}

func NewGame(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	prefabs.SetDir(cfg.Prefabs.Dir)

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(ecs.Stage{
		Width:   cfg.Stage.Width,
		Height:  cfg.Stage.Height,
		Depth:   cfg.Stage.Depth,
		Gravity: cfg.Stage.Gravity,
	}))

	g := &Game{
		cfg:    cfg,
		logger: logger,
		world:  w,
		render: system.NewRenderSystem(cfg.Sim.Debug),
	}

	for i := 0; i < cfg.Players; i++ {
		x := cfg.Stage.Width * float64(i+1) / float64(cfg.Players+1)
		e, err := entity.NewCharacterAt(w, cfg.Prefabs.Character, i, x, cfg.Stage.Depth/2)
		if err != nil {
			return nil, err
		}
		g.players = append(g.players, e)
	}

	var reload ecs.System
	if cfg.Prefabs.HotReload {
		r, err := prefabs.NewReloader(logger, cfg.Prefabs.Character)
		if err != nil {
			logger.Warn("prefab hot reload disabled", zap.String("dir", cfg.Prefabs.Dir), zap.Error(err))
		} else {
			g.reloader = r
			reload = system.NewDefinitionReloadSystem(r, logger)
		}
	}

	g.scheduler = ecs.NewScheduler(
		reload,
		system.NewInputSystem(system.NewKeyboard()),
		system.NewCharacterSequenceSystem(cfg.Sim.Workers, logger),
		system.NewChargeSystem(),
		system.NewKinematicsSystem(),
		system.NewPhysicsSystem(),
		system.NewEventLogSystem(logger),
	)
	return g, nil
}

func (g *Game) Update() error {
	g.ticks++
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)
	ebitenutil.DebugPrint(screen, g.hud())
	if g.cfg.Sim.Debug {
		system.DrawPhysicsDebug(g.world.PhysicsWorld(), screen, g.render.Top)
		system.DrawSequenceDebug(g.world, screen, 10, g.cfg.Window.Height-16*(len(g.players)+1))
	}
}

func (g *Game) hud() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticks: %d    TPS: %.2f\n", g.ticks, ebiten.ActualTPS())
	for i, e := range g.players {
		st, ok := ecs.Get(g.world, e, component.CharacterStatusComponent.Kind())
		if !ok {
			continue
		}
		charge, _ := ecs.Get(g.world, e, component.ChargeComponent.Kind())
		fmt.Fprintf(&b, "P%d %-20s %s run=%s", i+1, st.SequenceID, st.SequenceStatus, st.RunCounter)
		if charge != nil {
			fmt.Fprintf(&b, " charge=%s", charge.Clock)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.reloader == nil {
		return nil
	}
	return g.reloader.Close()
}
