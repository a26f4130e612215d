package input

// EventKind discriminates the payload of a normalized device event.
type EventKind uint8

const (
	// EventDigital carries a down/up transition for a discrete source.
	EventDigital EventKind = iota
	// EventAnalog carries an absolute value for a continuous source.
	EventAnalog
	// EventPositionDelta carries a two-channel relative motion that the
	// collector accumulates over the tick.
	EventPositionDelta
)

// Event is one normalized device event delivered by a backend. Events
// carry physical identity only; backends know nothing of bindings,
// contexts, or logical names.
type Event struct {
	Source Source
	Kind   EventKind

	Down   bool    // EventDigital
	Value  float64 // EventAnalog
	DX, DY float64 // EventPositionDelta
}

func DigitalEvent(src Source, down bool) Event {
	return Event{Source: src, Kind: EventDigital, Down: down}
}

func AnalogEvent(src Source, value float64) Event {
	return Event{Source: src, Kind: EventAnalog, Value: value}
}

// MouseMotionEvent reports relative cursor motion for this tick.
func MouseMotionEvent(dx, dy float64) Event {
	return Event{Source: Source{Kind: KindMouseDelta}, Kind: EventPositionDelta, DX: dx, DY: dy}
}

// Backend produces one batch of normalized events per tick. Polling must
// not block; a disconnected or errored device contributes no events for
// the tick rather than an error.
type Backend interface {
	PollEvents() []Event
}
