package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/sequence"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidRequirement = errors.New("prefabs: requirement must set exactly one field")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec is the on-disk form of a character.
type CharacterSpec struct {
	Name        string                  `yaml:"name"`
	Health      uint32                  `yaml:"health"`
	SkillPoints uint32                  `yaml:"skill_points"`
	Color       *YAMLColor              `yaml:"color"`
	Movement    MovementSpec            `yaml:"movement"`
	Collider    ColliderSpec            `yaml:"collider"`
	Charge      ChargeSpec              `yaml:"charge"`
	Sequences   map[string]SequenceSpec `yaml:"sequences"`
}

type MovementSpec struct {
	WalkSpeed     float64 `yaml:"walk_speed"`
	RunSpeed      float64 `yaml:"run_speed"`
	DepthSpeed    float64 `yaml:"depth_speed"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	DashVelocityX float64 `yaml:"dash_velocity_x"`
	DashVelocityY float64 `yaml:"dash_velocity_y"`
	DodgeSpeed    float64 `yaml:"dodge_speed"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ChargeSpec struct {
	Limit         uint32 `yaml:"limit"`
	TicksPerPoint int    `yaml:"ticks_per_point"`
	UseMode       string `yaml:"use_mode"`
}

// SequenceSpec describes one sequence. Next is "none", "repeat" or the name
// of another sequence; empty means none.
type SequenceSpec struct {
	Next        string           `yaml:"next"`
	Frames      []FrameSpec      `yaml:"frames"`
	Transitions []TransitionSpec `yaml:"transitions"`
}

type FrameSpec struct {
	Wait        uint32           `yaml:"wait"`
	Transitions []TransitionSpec `yaml:"transitions"`
}

type TransitionSpec struct {
	Event        string            `yaml:"event"`
	Next         string            `yaml:"next"`
	Requirements []RequirementSpec `yaml:"requirements"`
}

// RequirementSpec sets exactly one of its fields.
type RequirementSpec struct {
	HP         *uint32 `yaml:"hp"`
	SP         *uint32 `yaml:"sp"`
	Charge     *uint32 `yaml:"charge"`
	InputDirX  string  `yaml:"input_dir_x"`
	InputDirZ  string  `yaml:"input_dir_z"`
	Script     string  `yaml:"script"`
	ScriptFile string  `yaml:"script_file"`
}

// LoadCharacter reads name and builds its validated definition.
func LoadCharacter(name string) (*CharacterSpec, *character.Definition, error) {
	spec, err := LoadSpec[CharacterSpec](name)
	if err != nil {
		return nil, nil, err
	}
	def, err := spec.Definition()
	if err != nil {
		return nil, nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, def, nil
}

// ChargeUseMode parses the configured charge use mode.
func (s *CharacterSpec) ChargeUseMode() (character.ChargeUseMode, error) {
	return character.ParseChargeUseMode(s.Charge.UseMode)
}

// Definition converts the spec into a character definition. Every sequence
// must be present and every name must resolve.
func (s *CharacterSpec) Definition() (*character.Definition, error) {
	if _, err := s.ChargeUseMode(); err != nil {
		return nil, err
	}
	seqs := make(map[character.SequenceID]character.Sequence, len(s.Sequences))
	for name, ss := range s.Sequences {
		id, err := character.ParseSequenceID(name)
		if err != nil {
			return nil, err
		}
		seq, err := ss.sequence()
		if err != nil {
			return nil, fmt.Errorf("sequence %s: %w", name, err)
		}
		seqs[id] = seq
	}
	return character.NewDefinition(s.Name, seqs)
}

func (s SequenceSpec) sequence() (character.Sequence, error) {
	var seq character.Sequence

	switch s.Next {
	case "", "none":
		seq.End = sequence.None[character.SequenceID]()
	case "repeat":
		seq.End = sequence.Repeat[character.SequenceID]()
	default:
		id, err := character.ParseSequenceID(s.Next)
		if err != nil {
			return seq, fmt.Errorf("next: %w", err)
		}
		seq.End = sequence.Next(id)
	}

	transitions, err := buildTransitions(s.Transitions)
	if err != nil {
		return seq, err
	}
	seq.Transitions = transitions

	for i, fs := range s.Frames {
		ts, err := buildTransitions(fs.Transitions)
		if err != nil {
			return seq, fmt.Errorf("frame %d: %w", i, err)
		}
		seq.Frames = append(seq.Frames, character.Frame{Wait: sequence.Wait(fs.Wait), Transitions: ts})
	}
	return seq, nil
}

func buildTransitions(specs []TransitionSpec) ([]character.ControlTransition, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make([]character.ControlTransition, 0, len(specs))
	for _, ts := range specs {
		ev, err := character.ParseControlEvent(ts.Event)
		if err != nil {
			return nil, err
		}
		next, err := character.ParseSequenceID(ts.Next)
		if err != nil {
			return nil, fmt.Errorf("transition %s: %w", ts.Event, err)
		}
		t := character.ControlTransition{Event: ev, Next: next}
		for _, rs := range ts.Requirements {
			req, err := rs.requirement()
			if err != nil {
				return nil, fmt.Errorf("transition %s: %w", ts.Event, err)
			}
			t.Requirements = append(t.Requirements, req)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r RequirementSpec) requirement() (character.Requirement, error) {
	set := 0
	for _, ok := range []bool{
		r.HP != nil, r.SP != nil, r.Charge != nil,
		r.InputDirX != "", r.InputDirZ != "", r.Script != "", r.ScriptFile != "",
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, ErrInvalidRequirement
	}

	switch {
	case r.HP != nil:
		return character.HealthRequirement(*r.HP), nil
	case r.SP != nil:
		return character.SkillRequirement(*r.SP), nil
	case r.Charge != nil:
		return character.ChargeRequirement(*r.Charge), nil
	case r.InputDirX != "":
		d, err := character.ParseInputDirection(r.InputDirX)
		if err != nil {
			return nil, err
		}
		return character.InputDirXRequirement(d), nil
	case r.InputDirZ != "":
		d, err := character.ParseInputDirection(r.InputDirZ)
		if err != nil {
			return nil, err
		}
		return character.InputDirZRequirement(d), nil
	case r.ScriptFile != "":
		src, err := LoadScript(r.ScriptFile)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", r.ScriptFile, err)
		}
		return character.CompileScriptRequirement(strings.TrimSpace(string(src)))
	default:
		return character.CompileScriptRequirement(r.Script)
	}
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the configured color or fallback when none was set.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
