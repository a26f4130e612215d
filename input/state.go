package input

import (
	"fmt"
	"log/slog"
	"sort"
)

// State is the published logical input state. It is created with every
// declared action Inactive and every declared axis at 0, mutated in place
// only by the resolver, and queried by everything else. Querying a name
// that was never declared returns the documented default rather than
// failing: gameplay code must not crash over an unconfigured input name.
type State struct {
	actions map[string]*Action
	axes    map[string]*Axis

	warned map[string]struct{}
}

// NewState creates an empty logical state.
func NewState() *State {
	return &State{
		actions: make(map[string]*Action),
		axes:    make(map[string]*Axis),
		warned:  make(map[string]struct{}),
	}
}

// DeclareAction registers an action name. Redeclaring an existing action
// keeps its current phase.
func (s *State) DeclareAction(name string) error {
	if name == "" {
		return fmt.Errorf("declare action: %w", ErrEmptyTargetName)
	}
	if _, ok := s.actions[name]; !ok {
		s.actions[name] = &Action{Name: name}
	}
	return nil
}

// DeclareAxis registers an axis name with its valid range. Redeclaring an
// existing axis updates the range and keeps the current value.
func (s *State) DeclareAxis(name string, min, max float64) error {
	if name == "" {
		return fmt.Errorf("declare axis: %w", ErrEmptyTargetName)
	}
	if min > max {
		return fmt.Errorf("declare axis %s: invalid range [%v, %v]", name, min, max)
	}
	if ax, ok := s.axes[name]; ok {
		ax.Min, ax.Max = min, max
		return nil
	}
	s.axes[name] = &Axis{Name: name, Min: min, Max: max}
	return nil
}

// Action returns the current phase of the named action. Undeclared names
// return Inactive and log a warning the first time they are seen.
func (s *State) Action(name string) ActionPhase {
	if a, ok := s.actions[name]; ok {
		return a.Phase
	}
	s.warnUnknown("action", name)
	return Inactive
}

// Axis returns the current value of the named axis. Undeclared names
// return 0 and log a warning the first time they are seen.
func (s *State) Axis(name string) float64 {
	if ax, ok := s.axes[name]; ok {
		return ax.Value
	}
	s.warnUnknown("axis", name)
	return 0
}

// AxisRange returns the declared range of the named axis.
func (s *State) AxisRange(name string) (min, max float64, ok bool) {
	ax, found := s.axes[name]
	if !found {
		return 0, 0, false
	}
	return ax.Min, ax.Max, true
}

// ActionNames returns the declared action names, sorted.
func (s *State) ActionNames() []string {
	out := make([]string, 0, len(s.actions))
	for name := range s.actions {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// AxisNames returns the declared axis names, sorted.
func (s *State) AxisNames() []string {
	out := make([]string, 0, len(s.axes))
	for name := range s.axes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// warnUnknown logs once per unknown name so a query in a game loop does
// not flood the log at tick rate.
func (s *State) warnUnknown(kind, name string) {
	key := kind + ":" + name
	if _, seen := s.warned[key]; seen {
		return
	}
	s.warned[key] = struct{}{}
	slog.Warn("input: query for undeclared "+kind, "name", name)
}
