package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/brawler/character"
	"github.com/milk9111/brawler/ecs"
	"github.com/milk9111/brawler/ecs/component"
)

// InputSource reports the controller state of a local player for this tick.
type InputSource interface {
	Input(player int) character.ControllerInput
}

// InputSystem samples every player's controller and derives button edges.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, input *component.Input, player *component.Player) {
		input.Previous = input.Current
		input.Current = i.source.Input(player.Index)
		input.Events = character.ControlEventsBetween(input.Previous, input.Current)
	})
}

// KeyMap binds keyboard keys to controller axes and buttons.
type KeyMap struct {
	Left, Right, Up, Down         ebiten.Key
	Attack, Jump, Defend, Special ebiten.Key
}

var DefaultKeyMaps = []KeyMap{
	{
		Left: ebiten.KeyA, Right: ebiten.KeyD, Up: ebiten.KeyW, Down: ebiten.KeyS,
		Attack: ebiten.KeyJ, Jump: ebiten.KeyK, Defend: ebiten.KeyL, Special: ebiten.KeyU,
	},
	{
		Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown,
		Attack: ebiten.KeyNumpad1, Jump: ebiten.KeyNumpad2, Defend: ebiten.KeyNumpad3, Special: ebiten.KeyNumpad5,
	},
}

// KeyState is the subset of ebiten's keyboard state the keyboard source reads.
type KeyState interface {
	IsKeyPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }

// Keyboard reads players from key maps and, when enabled, the matching
// standard gamepad.
type Keyboard struct {
	keys     KeyState
	maps     []KeyMap
	gamepads bool
}

// NewKeyboard reads the live ebiten keyboard and gamepads.
func NewKeyboard(maps ...KeyMap) *Keyboard {
	if len(maps) == 0 {
		maps = DefaultKeyMaps
	}
	return &Keyboard{keys: ebitenKeys{}, maps: maps, gamepads: true}
}

// NewKeyboardWithState reads keys from state and ignores gamepads.
func NewKeyboardWithState(state KeyState, maps ...KeyMap) *Keyboard {
	if len(maps) == 0 {
		maps = DefaultKeyMaps
	}
	return &Keyboard{keys: state, maps: maps}
}

func (k *Keyboard) Input(player int) character.ControllerInput {
	var in character.ControllerInput
	if player < 0 || player >= len(k.maps) {
		return in
	}
	m := k.maps[player]
	pressed := k.keys.IsKeyPressed

	if pressed(m.Left) {
		in.XAxis -= 1
	}
	if pressed(m.Right) {
		in.XAxis += 1
	}
	if pressed(m.Up) {
		in.ZAxis -= 1
	}
	if pressed(m.Down) {
		in.ZAxis += 1
	}
	in.Attack = pressed(m.Attack)
	in.Jump = pressed(m.Jump)
	in.Defend = pressed(m.Defend)
	in.Special = pressed(m.Special)

	if k.gamepads {
		k.readGamepad(player, &in)
	}
	return in
}

func (k *Keyboard) readGamepad(player int, in *character.ControllerInput) {
	const stickDeadzone = 0.2

	gamepads := ebiten.GamepadIDs()
	if player >= len(gamepads) {
		return
	}
	id := gamepads[player]

	if x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal); math.Abs(x) > stickDeadzone {
		in.XAxis = math.Copysign(1, x)
	}
	if z := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical); math.Abs(z) > stickDeadzone {
		in.ZAxis = math.Copysign(1, z)
	}
	in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	in.Attack = in.Attack || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	in.Defend = in.Defend || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
	in.Special = in.Special || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightTop)
}

// Script replays recorded controller states, one per tick. Once exhausted it
// reports no input.
type Script struct {
	Frames [][]character.ControllerInput
	tick   int
}

func (s *Script) Input(player int) character.ControllerInput {
	if s.tick >= len(s.Frames) || player >= len(s.Frames[s.tick]) {
		return character.ControllerInput{}
	}
	return s.Frames[s.tick][player]
}

// Advance moves the script to the next tick.
func (s *Script) Advance() {
	s.tick++
}

// Done reports whether every recorded tick has been replayed.
func (s *Script) Done() bool {
	return s.tick >= len(s.Frames)
}
