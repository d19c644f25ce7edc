package entity

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/kongclimb/prefabs"
)

// BrainHost is what a behaviour script can observe and drive.
type BrainHost interface {
	SetAnim(name string)
	Emit(event string)
	ThrowInterval() int
	CanThrow() bool
	Shake(frames int)
}

// Brain runs a tengo lifecycle script. The script defines onEnter, update and
// onExit, each called with (engine, state, current), and may set
// initial_state.
type Brain struct {
	path        string
	compiled    *tengo.Compiled
	stateData   *tengo.Map
	current     string
	pending     string
	initialized bool
}

const lifecycleDispatchScript = `
if __phase == "enter" {
	onEnter(__engine, __state, __current_state)
} else if __phase == "update" {
	update(__engine, __state, __current_state)
} else if __phase == "exit" {
	onExit(__engine, __state, __current_state)
}
`

// NewBrain compiles the named script from prefabs.
func NewBrain(path string) (*Brain, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("brain: load %s: %w", path, err)
	}
	return compileBrain(path, src)
}

func compileBrain(path string, src []byte) (*Brain, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + lifecycleDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	_ = script.Add("__current_state", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("brain: compile %s: %w", path, err)
	}

	b := &Brain{
		path:      path,
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
		current:   "idle",
	}

	// resolve initial_state without entering any lifecycle phase
	if err := b.runPhase("noop", nil); err != nil {
		return nil, fmt.Errorf("brain: init %s: %w", path, err)
	}
	if compiled.IsDefined("initial_state") {
		if s := strings.TrimSpace(compiled.Get("initial_state").String()); s != "" {
			b.current = s
		}
	}
	return b, nil
}

// State is the current script state name.
func (b *Brain) State() string { return b.current }

// Update runs one tick: onEnter on the first call, update, then at most one
// transition requested through the engine.
func (b *Brain) Update(host BrainHost, events []string) error {
	eventSet := make(map[string]bool, len(events))
	for _, ev := range events {
		if ev != "" {
			eventSet[ev] = true
		}
	}
	engine := b.engine(host, eventSet)

	if !b.initialized {
		if err := b.runPhase("enter", engine); err != nil {
			return fmt.Errorf("brain: %s onEnter: %w", b.path, err)
		}
		b.initialized = true
	}

	if err := b.runPhase("update", engine); err != nil {
		return fmt.Errorf("brain: %s update: %w", b.path, err)
	}

	if b.pending == "" || b.pending == b.current {
		b.pending = ""
		return nil
	}

	if err := b.runPhase("exit", engine); err != nil {
		return fmt.Errorf("brain: %s onExit: %w", b.path, err)
	}
	b.current = b.pending
	b.pending = ""

	if err := b.runPhase("enter", engine); err != nil {
		return fmt.Errorf("brain: %s onEnter: %w", b.path, err)
	}
	return nil
}

func (b *Brain) runPhase(phase string, engine *tengo.ImmutableMap) error {
	if engine == nil {
		engine = &tengo.ImmutableMap{Value: map[string]tengo.Object{}}
	}
	if err := b.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := b.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := b.compiled.Set("__state", b.stateData); err != nil {
		return err
	}
	if err := b.compiled.Set("__current_state", b.current); err != nil {
		return err
	}
	return b.compiled.Run()
}

func (b *Brain) engine(host BrainHost, eventSet map[string]bool) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	stringFn := func(name string, fn func(string)) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 1 {
				return tengo.FalseValue, nil
			}
			s := strings.TrimSpace(objectAsString(args[0]))
			if s == "" {
				return tengo.FalseValue, nil
			}
			fn(s)
			return tengo.TrueValue, nil
		}}
	}

	stringFn("transition", func(s string) { b.pending = s })
	stringFn("anim", host.SetAnim)
	stringFn("emit", host.Emit)

	values["event"] = &tengo.UserFunction{Name: "event", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 || !eventSet[strings.TrimSpace(objectAsString(args[0]))] {
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["throw_interval"] = &tengo.UserFunction{Name: "throw_interval", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(host.ThrowInterval())}, nil
	}}

	values["can_throw"] = &tengo.UserFunction{Name: "can_throw", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if host.CanThrow() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["shake"] = &tengo.UserFunction{Name: "shake", Value: func(args ...tengo.Object) (tengo.Object, error) {
		frames := 1
		if len(args) > 0 {
			if v, ok := tengo.ToInt(args[0]); ok {
				frames = v
			}
		}
		host.Shake(frames)
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	if s, ok := obj.(*tengo.String); ok {
		return s.Value
	}
	return strings.Trim(obj.String(), "\"")
}
