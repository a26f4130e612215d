// Package replay drives a pipeline from a tengo script instead of real
// hardware. The script defines a tick function that is called once per
// poll with the input engine and the 1-based tick number; whatever it
// emits becomes that tick's raw events. The same script always produces
// the same event sequence, which makes recorded bug reproductions and
// resolution tests exact.
//
//	tick := func(in, n) {
//		if n == 1 { in.press("key:W") }
//		if n == 60 { in.release("key:W") }
//		in.axis("pad:axis:0", 0.5)
//	}
package replay

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/inputstack/input"
)

const dispatchScript = `
if __phase == "run" {
	tick(__input, __tick)
}
`

// Backend replays scripted device events. It satisfies input.Backend.
type Backend struct {
	compiled *tengo.Compiled
	tick     int64
	queue    []input.Event
}

// New compiles a replay script. The script must define tick(in, n) at the
// top level.
func New(src []byte) (*Backend, error) {
	full := string(src) + "\n" + dispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__tick", int64(0))
	_ = script.Add("__input", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("replay: compile: %w", err)
	}

	b := &Backend{compiled: compiled}
	// Run the top level once so the script's definitions exist before
	// the first poll.
	if err := b.run("load"); err != nil {
		return nil, fmt.Errorf("replay: load: %w", err)
	}
	if !compiled.IsDefined("tick") {
		return nil, fmt.Errorf("replay: script defines no tick function")
	}
	return b, nil
}

// PollEvents advances the script by one tick and returns what it emitted.
// A script error drops that tick's events and keeps the backend alive.
func (b *Backend) PollEvents() []input.Event {
	b.tick++
	b.queue = b.queue[:0]
	if err := b.run("run"); err != nil {
		slog.Warn("replay: script error", "tick", b.tick, "err", err)
		return nil
	}
	if len(b.queue) == 0 {
		return nil
	}
	out := make([]input.Event, len(b.queue))
	copy(out, b.queue)
	return out
}

// Tick returns how many times the script has been polled.
func (b *Backend) Tick() int64 {
	return b.tick
}

func (b *Backend) run(phase string) error {
	if err := b.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := b.compiled.Set("__tick", b.tick); err != nil {
		return err
	}
	if err := b.compiled.Set("__input", b.engine()); err != nil {
		return err
	}
	return b.compiled.Run()
}

func (b *Backend) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		src, ok := b.sourceArg("press", args)
		if !ok {
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue, input.DigitalEvent(src, true))
		return tengo.TrueValue, nil
	}}

	values["release"] = &tengo.UserFunction{Name: "release", Value: func(args ...tengo.Object) (tengo.Object, error) {
		src, ok := b.sourceArg("release", args)
		if !ok {
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue, input.DigitalEvent(src, false))
		return tengo.TrueValue, nil
	}}

	values["axis"] = &tengo.UserFunction{Name: "axis", Value: func(args ...tengo.Object) (tengo.Object, error) {
		src, ok := b.sourceArg("axis", args)
		if !ok {
			return tengo.FalseValue, nil
		}
		v, ok := floatArg(args, 1)
		if !ok {
			slog.Warn("replay: axis needs a numeric value", "tick", b.tick, "source", src.String())
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue, input.AnalogEvent(src, v))
		return tengo.TrueValue, nil
	}}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		dx, okX := floatArg(args, 0)
		dy, okY := floatArg(args, 1)
		if !okX || !okY {
			slog.Warn("replay: move needs dx and dy", "tick", b.tick)
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue, input.MouseMotionEvent(dx, dy))
		return tengo.TrueValue, nil
	}}

	values["scroll"] = &tengo.UserFunction{Name: "scroll", Value: func(args ...tengo.Object) (tengo.Object, error) {
		dx, okX := floatArg(args, 0)
		dy, okY := floatArg(args, 1)
		if !okX || !okY {
			slog.Warn("replay: scroll needs dx and dy", "tick", b.tick)
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue,
			input.AnalogEvent(input.ScrollX(), dx),
			input.AnalogEvent(input.ScrollY(), dy))
		return tengo.TrueValue, nil
	}}

	values["cursor"] = &tengo.UserFunction{Name: "cursor", Value: func(args ...tengo.Object) (tengo.Object, error) {
		x, okX := floatArg(args, 0)
		y, okY := floatArg(args, 1)
		if !okX || !okY {
			slog.Warn("replay: cursor needs x and y", "tick", b.tick)
			return tengo.FalseValue, nil
		}
		b.queue = append(b.queue,
			input.AnalogEvent(input.MousePositionX(), x),
			input.AnalogEvent(input.MousePositionY(), y))
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (b *Backend) sourceArg(fn string, args []tengo.Object) (input.Source, bool) {
	if len(args) < 1 {
		slog.Warn("replay: missing source argument", "tick", b.tick, "fn", fn)
		return input.Source{}, false
	}
	text := objectAsString(args[0])
	src, err := input.ParseSource(text)
	if err != nil {
		slog.Warn("replay: bad source in script", "tick", b.tick, "fn", fn, "err", err)
		return input.Source{}, false
	}
	return src, true
}

func floatArg(args []tengo.Object, i int) (float64, bool) {
	if i >= len(args) {
		return 0, false
	}
	switch v := args[i].(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	}
	return 0, false
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
