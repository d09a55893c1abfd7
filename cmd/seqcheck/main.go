// Command seqcheck validates a character prefab and replays a scripted input
// sequence against it without opening a window, printing the sequence status
// after every tick.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/config"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
	"github.com/milk9111/brawler/ecs/entity"
	"github.com/milk9111/brawler/ecs/system"
	"github.com/milk9111/brawler/prefabs"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "seqcheck:", err)
		os.Exit(1)
	}
}

// step holds one controller state for a number of ticks.
type step struct {
	Ticks   int     `yaml:"ticks"`
	X       float64 `yaml:"x"`
	Z       float64 `yaml:"z"`
	Attack  bool    `yaml:"attack"`
	Jump    bool    `yaml:"jump"`
	Defend  bool    `yaml:"defend"`
	Special bool    `yaml:"special"`
}

func loadScript(path string) (*system.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var steps []step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	script := &system.Script{}
	for i, s := range steps {
		if s.Ticks <= 0 {
			return nil, fmt.Errorf("%s: step %d: ticks must be positive", path, i)
		}
		in := character.ControllerInput{
			XAxis:   s.X,
			ZAxis:   s.Z,
			Attack:  s.Attack,
			Jump:    s.Jump,
			Defend:  s.Defend,
			Special: s.Special,
		}
		for t := 0; t < s.Ticks; t++ {
			script.Frames = append(script.Frames, []character.ControllerInput{in})
		}
	}
	return script, nil
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("seqcheck", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a config file")
	name := fs.String("character", "", "character prefab to load (defaults to the configured one)")
	inputs := fs.String("inputs", "", "YAML input script to replay")
	verbose := fs.Bool("v", false, "log systems to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if cfg.Prefabs.Dir != "" {
		prefabs.SetDir(cfg.Prefabs.Dir)
	}
	file := cfg.Prefabs.Character
	if *name != "" {
		file = *name
	}

	spec, def, err := prefabs.LoadCharacter(file)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d sequences ok\n", def.Name, len(character.SequenceIDs()))
	if *inputs == "" {
		return nil
	}

	script, err := loadScript(*inputs)
	if err != nil {
		return err
	}
	if len(script.Frames) == 0 {
		return errors.New("input script is empty")
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
	}

	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld(ecs.Stage{
		Width:   cfg.Stage.Width,
		Height:  cfg.Stage.Height,
		Depth:   cfg.Stage.Depth,
		Gravity: cfg.Stage.Gravity,
	}))
	e, err := entity.BuildCharacter(w, file, spec, def, 0, cfg.Stage.Width/2, cfg.Stage.Depth/2)
	if err != nil {
		return err
	}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(script),
		system.NewCharacterSequenceSystem(cfg.Sim.Workers, logger),
		system.NewChargeSystem(),
		system.NewKinematicsSystem(),
		system.NewPhysicsSystem(),
		system.NewEventLogSystem(logger),
	)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "tick\tsequence\tframe\twait\tstatus\tmirrored\trun\tground")
	for tick := 0; !script.Done(); tick++ {
		scheduler.Update(w)
		script.Advance()

		st, _ := ecs.Get(w, e, component.CharacterStatusComponent.Kind())
		g, _ := ecs.Get(w, e, component.GroundingComponent.Kind())
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%t\t%s\t%s\n",
			tick, st.SequenceID, st.FrameIndex, st.FrameWait, st.SequenceStatus, st.Mirrored, st.RunCounter, g.State)
	}
	return tw.Flush()
}
