package input

import "github.com/milk9111/inputstack/common"

// ActionPhase is the edge-detected per-tick state of a logical action.
type ActionPhase uint8

const (
	// Inactive means the action's bound sources have been up for at least
	// two ticks.
	Inactive ActionPhase = iota
	// Pressed is the single rising-edge tick.
	Pressed
	// Held covers every tick after Pressed while the source stays down.
	Held
	// Released is the single falling-edge tick; the next tick is Inactive.
	Released
)

// Active reports whether the action is down this tick (Pressed or Held).
func (p ActionPhase) Active() bool {
	return p == Pressed || p == Held
}

func (p ActionPhase) String() string {
	switch p {
	case Inactive:
		return "Inactive"
	case Pressed:
		return "Pressed"
	case Held:
		return "Held"
	case Released:
		return "Released"
	}
	return "Invalid"
}

// nextPhase advances an action's phase from its previous effective
// presence to this tick's.
func nextPhase(wasActive, down bool) ActionPhase {
	switch {
	case down && !wasActive:
		return Pressed
	case down && wasActive:
		return Held
	case !down && wasActive:
		return Released
	default:
		return Inactive
	}
}

// Action is a named digital input. One instance exists per declared name
// and persists across ticks; only the resolver advances its phase.
type Action struct {
	Name  string
	Phase ActionPhase
}

// Axis is a named continuous input. Its published value is the raw value
// of whichever claimed sources feed it, clamped to the declared range.
type Axis struct {
	Name     string
	Value    float64
	Min, Max float64
}

func (a *Axis) clamp(v float64) float64 {
	return common.Clamp(v, a.Min, a.Max)
}
