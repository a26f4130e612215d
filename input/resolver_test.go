package input

import "testing"

func testFrame(down []Source, analog map[Source]float64) *RawFrame {
	f := &RawFrame{
		down:   make(map[Source]struct{}),
		analog: make(map[Source]float64),
	}
	for _, src := range down {
		f.down[src] = struct{}{}
	}
	for src, v := range analog {
		f.analog[src] = v
	}
	return f
}

func mustRegister(t *testing.T, r *Registry, context string, src Source, tgt Target) {
	t.Helper()
	if err := r.Register(context, src, tgt); err != nil {
		t.Fatalf("Register(%q, %v, %s) returned error: %v", context, src, tgt.Name, err)
	}
}

func mustDeclareAction(t *testing.T, s *State, name string) {
	t.Helper()
	if err := s.DeclareAction(name); err != nil {
		t.Fatalf("DeclareAction(%q) returned error: %v", name, err)
	}
}

func mustDeclareAxis(t *testing.T, s *State, name string, min, max float64) {
	t.Helper()
	if err := s.DeclareAxis(name, min, max); err != nil {
		t.Fatalf("DeclareAxis(%q) returned error: %v", name, err)
	}
}

func TestResolverEdgeSequence(t *testing.T) {
	src := KeyW.Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "move_forward")
	mustRegister(t, reg, "gameplay", src, ActionTarget("move_forward"))
	contexts := []Context{{Name: "gameplay", Active: true}}

	steps := []struct {
		down bool
		want ActionPhase
	}{
		{false, Inactive},
		{true, Pressed},
		{true, Held},
		{true, Held},
		{false, Released},
		{false, Inactive},
	}

	for i, step := range steps {
		var downs []Source
		if step.down {
			downs = append(downs, src)
		}
		res.Resolve(testFrame(downs, nil), reg, contexts, st)
		if got := st.Action("move_forward"); got != step.want {
			t.Errorf("tick %d: phase = %s, want %s", i, got, step.want)
		}
	}
}

func TestResolverTopContextShadows(t *testing.T) {
	src := KeyW.Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "move_forward")
	mustDeclareAction(t, st, "menu_up")
	mustRegister(t, reg, "gameplay", src, ActionTarget("move_forward"))
	mustRegister(t, reg, "ui", src, ActionTarget("menu_up"))

	gameplayOnly := []Context{{Name: "gameplay", Active: true}}
	uiOnTop := []Context{{Name: "ui", Active: true}, {Name: "gameplay", Active: true}}
	frame := testFrame([]Source{src}, nil)

	// Key held with only gameplay on the stack.
	res.Resolve(frame, reg, gameplayOnly, st)
	res.Resolve(frame, reg, gameplayOnly, st)
	if got := st.Action("move_forward"); got != Held {
		t.Fatalf("before ui push: move_forward = %s, want Held", got)
	}

	// UI lands on top while the key stays down. The ui action rises
	// fresh and the gameplay action falls, both from the ownership
	// change alone.
	res.Resolve(frame, reg, uiOnTop, st)
	if got := st.Action("menu_up"); got != Pressed {
		t.Errorf("after ui push: menu_up = %s, want Pressed", got)
	}
	if got := st.Action("move_forward"); got != Released {
		t.Errorf("after ui push: move_forward = %s, want Released", got)
	}
	if ctx, ok := res.ClaimedBy(src); !ok || ctx != "ui" {
		t.Errorf("ClaimedBy = (%q, %t), want (ui, true)", ctx, ok)
	}

	res.Resolve(frame, reg, uiOnTop, st)
	if got := st.Action("menu_up"); got != Held {
		t.Errorf("second ui tick: menu_up = %s, want Held", got)
	}
	if got := st.Action("move_forward"); got != Inactive {
		t.Errorf("second ui tick: move_forward = %s, want Inactive", got)
	}
}

func TestResolverFreshEdgeAfterPop(t *testing.T) {
	src := KeySpace.Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "jump")
	mustDeclareAction(t, st, "confirm")
	mustRegister(t, reg, "gameplay", src, ActionTarget("jump"))
	mustRegister(t, reg, "ui", src, ActionTarget("confirm"))

	uiOnTop := []Context{{Name: "ui", Active: true}, {Name: "gameplay", Active: true}}
	gameplayOnly := []Context{{Name: "gameplay", Active: true}}
	frame := testFrame([]Source{src}, nil)

	res.Resolve(frame, reg, uiOnTop, st)
	res.Resolve(frame, reg, uiOnTop, st)
	if got := st.Action("jump"); got != Inactive {
		t.Fatalf("while shadowed: jump = %s, want Inactive", got)
	}

	// The key never left the keyboard, but gameplay regains the source
	// only now, so it must see a fresh press rather than a silent Held.
	res.Resolve(frame, reg, gameplayOnly, st)
	if got := st.Action("jump"); got != Pressed {
		t.Errorf("after ui pop: jump = %s, want Pressed", got)
	}
	if got := st.Action("confirm"); got != Released {
		t.Errorf("after ui pop: confirm = %s, want Released", got)
	}

	res.Resolve(frame, reg, gameplayOnly, st)
	if got := st.Action("jump"); got != Held {
		t.Errorf("next tick: jump = %s, want Held", got)
	}
}

func TestResolverUnboundSourceFallsThrough(t *testing.T) {
	src := KeyS.Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "crouch")
	mustRegister(t, reg, "gameplay", src, ActionTarget("crouch"))
	// The ui context exists and is on top but binds nothing for S.
	mustRegister(t, reg, "ui", KeyEnter.Source(), ActionTarget("confirm"))

	contexts := []Context{{Name: "ui", Active: true}, {Name: "gameplay", Active: true}}
	res.Resolve(testFrame([]Source{src}, nil), reg, contexts, st)

	if got := st.Action("crouch"); got != Pressed {
		t.Errorf("crouch = %s, want Pressed; a context without a binding must not block lower ones", got)
	}
	if ctx, ok := res.ClaimedBy(src); !ok || ctx != "gameplay" {
		t.Errorf("ClaimedBy = (%q, %t), want (gameplay, true)", ctx, ok)
	}
}

func TestResolverActionMergesSources(t *testing.T) {
	key := KeySpace.Source()
	btn := GamepadButton(0).Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "jump")
	mustRegister(t, reg, "gameplay", key, ActionTarget("jump"))
	mustRegister(t, reg, "gameplay", btn, ActionTarget("jump"))
	contexts := []Context{{Name: "gameplay", Active: true}}

	res.Resolve(testFrame([]Source{key, btn}, nil), reg, contexts, st)
	if got := st.Action("jump"); got != Pressed {
		t.Fatalf("both sources down: jump = %s, want Pressed", got)
	}

	// Releasing one of two bound sources must not produce a falling
	// edge while the other stays down.
	res.Resolve(testFrame([]Source{btn}, nil), reg, contexts, st)
	if got := st.Action("jump"); got != Held {
		t.Errorf("one source released: jump = %s, want Held", got)
	}

	res.Resolve(testFrame(nil, nil), reg, contexts, st)
	if got := st.Action("jump"); got != Released {
		t.Errorf("all sources released: jump = %s, want Released", got)
	}
}

func TestResolverActionFromContinuousSource(t *testing.T) {
	trigger := GamepadAxis(5).Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAction(t, st, "fire")
	mustRegister(t, reg, "gameplay", trigger, ActionTarget("fire"))
	contexts := []Context{{Name: "gameplay", Active: true}}

	res.Resolve(testFrame(nil, map[Source]float64{trigger: 0.6}), reg, contexts, st)
	if got := st.Action("fire"); got != Pressed {
		t.Errorf("non-zero analog value: fire = %s, want Pressed", got)
	}

	res.Resolve(testFrame(nil, map[Source]float64{trigger: 0}), reg, contexts, st)
	if got := st.Action("fire"); got != Released {
		t.Errorf("zero analog value: fire = %s, want Released", got)
	}
}

func TestResolverAxisClamp(t *testing.T) {
	stick := GamepadAxis(0).Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAxis(t, st, "steer", -1, 1)
	mustRegister(t, reg, "gameplay", stick, AxisTarget("steer"))
	contexts := []Context{{Name: "gameplay", Active: true}}

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"within range", 0.5, 0.5},
		{"above max", 2.5, 1},
		{"below min", -7, -1},
		{"at rest", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res.Resolve(testFrame(nil, map[Source]float64{stick: tt.in}), reg, contexts, st)
			if got := st.Axis("steer"); got != tt.want {
				t.Errorf("value %v: steer = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolverAxisMergesContributions(t *testing.T) {
	key := KeyD.Source()
	stick := GamepadAxis(0).Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAxis(t, st, "steer", -1, 1)
	mustRegister(t, reg, "gameplay", key, AxisTarget("steer"))
	mustRegister(t, reg, "gameplay", stick, AxisTarget("steer"))
	contexts := []Context{{Name: "gameplay", Active: true}}

	// A discrete source contributes 1; the analog value adds to it and
	// the sum is clamped to the declared range.
	res.Resolve(testFrame([]Source{key}, map[Source]float64{stick: -0.3}), reg, contexts, st)
	if got := st.Axis("steer"); got != 0.7 {
		t.Errorf("key + stick(-0.3): steer = %v, want 0.7", got)
	}

	res.Resolve(testFrame([]Source{key}, map[Source]float64{stick: 0.4}), reg, contexts, st)
	if got := st.Axis("steer"); got != 1 {
		t.Errorf("key + stick(0.4): steer = %v, want clamp to 1", got)
	}
}

func TestResolverUnclaimedAxisResets(t *testing.T) {
	stick := GamepadAxis(0).Source()
	reg := NewRegistry()
	st := NewState()
	res := NewResolver()
	mustDeclareAxis(t, st, "steer", -1, 1)
	mustRegister(t, reg, "gameplay", stick, AxisTarget("steer"))

	frame := testFrame(nil, map[Source]float64{stick: 0.8})
	res.Resolve(frame, reg, []Context{{Name: "gameplay", Active: true}}, st)
	if got := st.Axis("steer"); got != 0.8 {
		t.Fatalf("claimed: steer = %v, want 0.8", got)
	}

	// The device still reports 0.8, but with the owning context gone
	// nothing claims the source and the axis must not go stale.
	res.Resolve(frame, reg, nil, st)
	if got := st.Axis("steer"); got != 0 {
		t.Errorf("unclaimed: steer = %v, want 0", got)
	}
}

func TestResolverDeterminism(t *testing.T) {
	type instance struct {
		reg *Registry
		st  *State
		res *Resolver
	}
	build := func() *instance {
		in := &instance{reg: NewRegistry(), st: NewState(), res: NewResolver()}
		mustDeclareAction(t, in.st, "jump")
		mustDeclareAxis(t, in.st, "steer", -1, 1)
		mustRegister(t, in.reg, "gameplay", KeySpace.Source(), ActionTarget("jump"))
		mustRegister(t, in.reg, "gameplay", GamepadAxis(0).Source(), AxisTarget("steer"))
		mustRegister(t, in.reg, "ui", KeySpace.Source(), ActionTarget("confirm"))
		return in
	}
	a, b := build(), build()

	frames := []*RawFrame{
		testFrame(nil, nil),
		testFrame([]Source{KeySpace.Source()}, map[Source]float64{GamepadAxis(0).Source(): 0.25}),
		testFrame([]Source{KeySpace.Source()}, map[Source]float64{GamepadAxis(0).Source(): 0.5}),
		testFrame(nil, map[Source]float64{GamepadAxis(0).Source(): 2}),
		testFrame(nil, nil),
	}
	stacks := [][]Context{
		{{Name: "gameplay", Active: true}},
		{{Name: "gameplay", Active: true}},
		{{Name: "ui", Active: true}, {Name: "gameplay", Active: true}},
		{{Name: "gameplay", Active: true}},
		{{Name: "gameplay", Active: true}},
	}

	for i := range frames {
		a.res.Resolve(frames[i], a.reg, stacks[i], a.st)
		b.res.Resolve(frames[i], b.reg, stacks[i], b.st)
		if pa, pb := a.st.Action("jump"), b.st.Action("jump"); pa != pb {
			t.Errorf("tick %d: jump diverged: %s vs %s", i, pa, pb)
		}
		if va, vb := a.st.Axis("steer"), b.st.Axis("steer"); va != vb {
			t.Errorf("tick %d: steer diverged: %v vs %v", i, va, vb)
		}
	}
}
