package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brawler/config"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	debug := flag.Bool("debug", false, "enable debug mode (overrides sim.debug)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *debug {
		cfg.Sim.Debug = true
	}

	var logger *zap.Logger
	if cfg.Sim.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Sim.TickRate)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatal("create game", zap.Error(err))
	}
	defer func() { _ = game.Close() }()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", zap.Error(err))
	}
}
