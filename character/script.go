package character

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrInvalidScript is returned when a requirement script does not compile.
var ErrInvalidScript = errors.New("character: invalid requirement script")

const scriptResultVar = "__met"

// ScriptRequirement evaluates a tengo expression. The expression sees hp, sp,
// charge, x, z, mirrored, attack, jump, defend and special, and may import
// the math and text modules.
type ScriptRequirement struct {
	Source   string
	compiled *tengo.Compiled
}

// CompileScriptRequirement compiles src once. Each evaluation runs on a clone
// so the requirement can be shared across goroutines.
func CompileScriptRequirement(src string) (*ScriptRequirement, error) {
	script := tengo.NewScript([]byte(scriptResultVar + " := (" + src + ")"))
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	defaults := map[string]any{
		"hp":       0,
		"sp":       0,
		"charge":   0,
		"x":        0.0,
		"z":        0.0,
		"mirrored": false,
		"attack":   false,
		"jump":     false,
		"defend":   false,
		"special":  false,
	}
	for name, v := range defaults {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("%w: add %s: %v", ErrInvalidScript, name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidScript, src, err)
	}
	return &ScriptRequirement{Source: src, compiled: compiled}, nil
}

// Met runs the script. Runtime errors, including Go panics raised inside
// the VM, and non-bool results count as unmet.
func (r *ScriptRequirement) Met(p RequirementParams) (met bool) {
	if r == nil || r.compiled == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			met = false
		}
	}()

	c := r.compiled.Clone()
	vars := map[string]any{
		"hp":       int(p.HealthPoints),
		"sp":       int(p.SkillPoints),
		"charge":   int(p.Charge.Value),
		"x":        p.Input.XAxis,
		"z":        p.Input.ZAxis,
		"mirrored": p.Mirrored,
		"attack":   p.Input.Attack,
		"jump":     p.Input.Jump,
		"defend":   p.Input.Defend,
		"special":  p.Input.Special,
	}
	for name, v := range vars {
		if err := c.Set(name, v); err != nil {
			return false
		}
	}
	if err := c.Run(); err != nil {
		return false
	}
	met, _ = c.Get(scriptResultVar).Value().(bool)
	return met
}
