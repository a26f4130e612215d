package input

import "sort"

// RawFrame is one tick's backend-agnostic snapshot of device state: which
// discrete sources are down, the value of every continuous source that has
// reported, and the absolute mouse position. A frame is built fresh by the
// collector each tick and never mutated after it is returned.
type RawFrame struct {
	down   map[Source]struct{}
	analog map[Source]float64

	mouseX, mouseY float64
}

// IsDown reports whether a discrete source is down this tick.
func (f *RawFrame) IsDown(src Source) bool {
	if f == nil {
		return false
	}
	_, ok := f.down[src]
	return ok
}

// Analog returns the value of a continuous source this tick, or 0 if the
// source has not reported.
func (f *RawFrame) Analog(src Source) float64 {
	if f == nil {
		return 0
	}
	return f.analog[src]
}

// MousePosition returns the absolute cursor position.
func (f *RawFrame) MousePosition() (x, y float64) {
	if f == nil {
		return 0, 0
	}
	return f.mouseX, f.mouseY
}

// DownSources returns the discrete sources down this tick, in a stable
// order. Intended for inspection tools; resolution walks the sets
// directly.
func (f *RawFrame) DownSources() []Source {
	if f == nil || len(f.down) == 0 {
		return nil
	}
	out := make([]Source, 0, len(f.down))
	for src := range f.down {
		out = append(out, src)
	}
	sortSources(out)
	return out
}

// AnalogSources returns the continuous sources present this tick, in a
// stable order.
func (f *RawFrame) AnalogSources() []Source {
	if f == nil || len(f.analog) == 0 {
		return nil
	}
	out := make([]Source, 0, len(f.analog))
	for src := range f.analog {
		out = append(out, src)
	}
	sortSources(out)
	return out
}

func sortSources(srcs []Source) {
	sort.Slice(srcs, func(i, j int) bool {
		if srcs[i].Kind != srcs[j].Kind {
			return srcs[i].Kind < srcs[j].Kind
		}
		return srcs[i].Code < srcs[j].Code
	})
}
