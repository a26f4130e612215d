package input

import (
	"errors"
	"strings"
	"testing"
)

func TestStateDeclareAndQuery(t *testing.T) {
	s := NewState()
	if err := s.DeclareAction("jump"); err != nil {
		t.Fatalf("DeclareAction returned error: %v", err)
	}
	if err := s.DeclareAxis("throttle", 0, 1); err != nil {
		t.Fatalf("DeclareAxis returned error: %v", err)
	}

	if got := s.Action("jump"); got != Inactive {
		t.Errorf("fresh action phase = %s, want Inactive", got)
	}
	if got := s.Axis("throttle"); got != 0 {
		t.Errorf("fresh axis value = %v, want 0", got)
	}

	min, max, ok := s.AxisRange("throttle")
	if !ok || min != 0 || max != 1 {
		t.Errorf("AxisRange = (%v, %v, %t), want (0, 1, true)", min, max, ok)
	}
}

func TestStateUndeclaredQueryWarnsOnce(t *testing.T) {
	logs := captureLogs(t)
	s := NewState()

	if got := s.Action("typo_name"); got != Inactive {
		t.Errorf("undeclared action = %s, want Inactive", got)
	}
	if got := s.Axis("typo_name"); got != 0 {
		t.Errorf("undeclared axis = %v, want 0", got)
	}

	warned := logs.String()
	if n := strings.Count(warned, "undeclared"); n != 2 {
		t.Fatalf("want one warning per kind, got %d:\n%s", n, warned)
	}

	logs.Reset()
	s.Action("typo_name")
	s.Axis("typo_name")
	if logs.Len() != 0 {
		t.Errorf("repeat queries should not warn again, got: %s", logs)
	}
}

func TestStateRedeclare(t *testing.T) {
	s := NewState()
	if err := s.DeclareAction("jump"); err != nil {
		t.Fatalf("DeclareAction returned error: %v", err)
	}
	s.actions["jump"].Phase = Held

	if err := s.DeclareAction("jump"); err != nil {
		t.Fatalf("redeclare returned error: %v", err)
	}
	if got := s.Action("jump"); got != Held {
		t.Errorf("redeclared action phase = %s, want the existing phase kept", got)
	}

	if err := s.DeclareAxis("look", -1, 1); err != nil {
		t.Fatalf("DeclareAxis returned error: %v", err)
	}
	s.axes["look"].Value = 0.4

	if err := s.DeclareAxis("look", -2, 2); err != nil {
		t.Fatalf("redeclare returned error: %v", err)
	}
	if got := s.Axis("look"); got != 0.4 {
		t.Errorf("redeclared axis value = %v, want the existing value kept", got)
	}
	if min, max, _ := s.AxisRange("look"); min != -2 || max != 2 {
		t.Errorf("redeclared axis range = [%v, %v], want [-2, 2]", min, max)
	}
}

func TestStateDeclareErrors(t *testing.T) {
	s := NewState()

	if err := s.DeclareAction(""); !errors.Is(err, ErrEmptyTargetName) {
		t.Errorf("empty action name: err = %v, want ErrEmptyTargetName", err)
	}
	if err := s.DeclareAxis("", -1, 1); !errors.Is(err, ErrEmptyTargetName) {
		t.Errorf("empty axis name: err = %v, want ErrEmptyTargetName", err)
	}
	if err := s.DeclareAxis("bad", 1, -1); err == nil {
		t.Errorf("inverted range should fail")
	}
}

func TestStateNames(t *testing.T) {
	s := NewState()
	for _, name := range []string{"zoom", "fire", "jump"} {
		if err := s.DeclareAction(name); err != nil {
			t.Fatalf("DeclareAction(%q) returned error: %v", name, err)
		}
	}
	if err := s.DeclareAxis("steer", -1, 1); err != nil {
		t.Fatalf("DeclareAxis returned error: %v", err)
	}

	got := s.ActionNames()
	want := []string{"fire", "jump", "zoom"}
	if !equalNames(got, want) {
		t.Errorf("ActionNames() = %v, want %v", got, want)
	}
	if got := s.AxisNames(); !equalNames(got, []string{"steer"}) {
		t.Errorf("AxisNames() = %v, want [steer]", got)
	}
}
