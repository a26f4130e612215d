package replay

import (
	"testing"

	"github.com/milk9111/inputstack/input"
)

func TestReplayDrivesPipeline(t *testing.T) {
	script := `
tick := func(in, n) {
	if n == 1 {
		in.press("key:Space")
	}
	if n == 3 {
		in.release("key:Space")
	}
	in.axis("pad:axis:0", 0.25 * n)
}
`
	b, err := New([]byte(script))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	pipe := input.New(b)
	if err := pipe.RegisterBinding("gameplay", input.KeySpace.Source(), input.ActionTarget("jump")); err != nil {
		t.Fatalf("RegisterBinding returned error: %v", err)
	}
	if err := pipe.RegisterBinding("gameplay", input.GamepadAxis(0).Source(), input.AxisTarget("steer")); err != nil {
		t.Fatalf("RegisterBinding returned error: %v", err)
	}
	if err := pipe.PushContext("gameplay"); err != nil {
		t.Fatalf("PushContext returned error: %v", err)
	}

	steps := []struct {
		jump  input.ActionPhase
		steer float64
	}{
		{input.Pressed, 0.25},
		{input.Held, 0.5},
		{input.Released, 0.75},
		{input.Inactive, 1},
		{input.Inactive, 1}, // 1.25 clamped to the axis range
	}

	for i, step := range steps {
		pipe.Tick()
		if got := pipe.Action("jump"); got != step.jump {
			t.Errorf("tick %d: jump = %s, want %s", i+1, got, step.jump)
		}
		if got := pipe.Axis("steer"); got != step.steer {
			t.Errorf("tick %d: steer = %v, want %v", i+1, got, step.steer)
		}
	}
}

func TestReplayMotionAndCursor(t *testing.T) {
	script := `
tick := func(in, n) {
	if n == 1 {
		in.move(3, 4)
		in.scroll(0, 1)
		in.cursor(100, 50)
	}
}
`
	b, err := New([]byte(script))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	pipe := input.New(b)

	pipe.Tick()
	f := pipe.LastFrame()
	if got := f.Analog(input.MouseDeltaX()); got != 3 {
		t.Errorf("tick 1: delta x = %v, want 3", got)
	}
	if got := f.Analog(input.MouseDeltaY()); got != 4 {
		t.Errorf("tick 1: delta y = %v, want 4", got)
	}
	if got := f.Analog(input.ScrollY()); got != 1 {
		t.Errorf("tick 1: scroll y = %v, want 1", got)
	}
	if x, y := f.MousePosition(); x != 100 || y != 50 {
		t.Errorf("tick 1: cursor = (%v, %v), want (100, 50)", x, y)
	}

	pipe.Tick()
	f = pipe.LastFrame()
	if got := f.Analog(input.MouseDeltaX()); got != 0 {
		t.Errorf("tick 2: delta x = %v, want the accumulator reset", got)
	}
	if x, y := f.MousePosition(); x != 100 || y != 50 {
		t.Errorf("tick 2: cursor = (%v, %v), want the sampled position kept", x, y)
	}
}

func TestReplayDeterminism(t *testing.T) {
	script := `
tick := func(in, n) {
	if n % 3 == 1 {
		in.press("key:W")
	}
	if n % 3 == 0 {
		in.release("key:W")
	}
	in.axis("pad:axis:1", float(n % 5) / 4.0)
	in.move(float(n), -float(n))
}
`
	build := func() *input.Pipeline {
		t.Helper()
		b, err := New([]byte(script))
		if err != nil {
			t.Fatalf("New returned error: %v", err)
		}
		pipe := input.New(b)
		if err := pipe.RegisterBinding("gameplay", input.KeyW.Source(), input.ActionTarget("move_forward")); err != nil {
			t.Fatalf("RegisterBinding returned error: %v", err)
		}
		if err := pipe.RegisterBinding("gameplay", input.GamepadAxis(1).Source(), input.AxisTarget("move_y")); err != nil {
			t.Fatalf("RegisterBinding returned error: %v", err)
		}
		if err := pipe.PushContext("gameplay"); err != nil {
			t.Fatalf("PushContext returned error: %v", err)
		}
		return pipe
	}

	a, b := build(), build()
	for i := 0; i < 12; i++ {
		a.Tick()
		b.Tick()
		if pa, pb := a.Action("move_forward"), b.Action("move_forward"); pa != pb {
			t.Errorf("tick %d: move_forward diverged: %s vs %s", i+1, pa, pb)
		}
		if va, vb := a.Axis("move_y"), b.Axis("move_y"); va != vb {
			t.Errorf("tick %d: move_y diverged: %v vs %v", i+1, va, vb)
		}
		ax, ay := a.LastFrame().Analog(input.MouseDeltaX()), a.LastFrame().Analog(input.MouseDeltaY())
		bx, by := b.LastFrame().Analog(input.MouseDeltaX()), b.LastFrame().Analog(input.MouseDeltaY())
		if ax != bx || ay != by {
			t.Errorf("tick %d: mouse delta diverged: (%v, %v) vs (%v, %v)", i+1, ax, ay, bx, by)
		}
	}
}

func TestReplayScriptErrors(t *testing.T) {
	if _, err := New([]byte(`tick := func(`)); err == nil {
		t.Errorf("malformed script should fail to compile")
	}
	if _, err := New([]byte(`x := 1`)); err == nil {
		t.Errorf("script without a tick function should be rejected")
	}
}

func TestReplayRuntimeErrorDropsTick(t *testing.T) {
	script := `
tick := func(in, n) {
	if n == 2 {
		x := 1 / (n - 2)
	}
	in.press("key:W")
}
`
	b, err := New([]byte(script))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if evs := b.PollEvents(); len(evs) != 1 {
		t.Errorf("tick 1: got %d events, want 1", len(evs))
	}
	// The divide-by-zero tick contributes nothing but must not kill the
	// backend.
	if evs := b.PollEvents(); evs != nil {
		t.Errorf("tick 2: got %v, want nil after a script error", evs)
	}
	if evs := b.PollEvents(); len(evs) != 1 {
		t.Errorf("tick 3: got %d events, want the script running again", len(evs))
	}
	if b.Tick() != 3 {
		t.Errorf("Tick() = %d, want 3", b.Tick())
	}
}

func TestReplayBadSourceIsIgnored(t *testing.T) {
	script := `
tick := func(in, n) {
	in.press("key:NotAKey")
	in.press("key:Space")
}
`
	b, err := New([]byte(script))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	evs := b.PollEvents()
	if len(evs) != 1 {
		t.Fatalf("got %d events, want only the valid press", len(evs))
	}
	if evs[0].Source != input.KeySpace.Source() {
		t.Errorf("event source = %v, want key:Space", evs[0].Source)
	}
}
