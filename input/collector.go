package input

// Collector folds backend event batches into per-tick raw frames. It keeps
// the persistent device picture (keys held across ticks, last sampled axis
// values, cursor position) and the per-tick accumulators (mouse delta,
// scroll) that reset to zero at the start of every tick. It knows nothing
// of bindings, contexts, or logical names.
type Collector struct {
	backends []Backend

	down    map[Source]struct{}
	sampled map[Source]float64
	accum   map[Source]float64

	mouseX, mouseY float64
}

// NewCollector creates a collector polling the given backends in order.
func NewCollector(backends ...Backend) *Collector {
	c := &Collector{
		down:    make(map[Source]struct{}),
		sampled: make(map[Source]float64),
		accum:   make(map[Source]float64),
	}
	for _, b := range backends {
		if b != nil {
			c.backends = append(c.backends, b)
		}
	}
	return c
}

// Collect polls every backend once and returns a fresh snapshot of device
// state. It never blocks and never fails; a backend that reports nothing
// this tick simply contributes no events.
func (c *Collector) Collect() *RawFrame {
	clear(c.accum)

	for _, b := range c.backends {
		for _, ev := range b.PollEvents() {
			c.apply(ev)
		}
	}

	frame := &RawFrame{
		down:   make(map[Source]struct{}, len(c.down)),
		analog: make(map[Source]float64, len(c.sampled)+len(c.accum)),
		mouseX: c.mouseX,
		mouseY: c.mouseY,
	}
	for src := range c.down {
		frame.down[src] = struct{}{}
	}
	for src, v := range c.sampled {
		frame.analog[src] = v
	}
	for src, v := range c.accum {
		frame.analog[src] = v
	}
	return frame
}

func (c *Collector) apply(ev Event) {
	switch ev.Kind {
	case EventDigital:
		if !ev.Source.Discrete() {
			return
		}
		if ev.Down {
			c.down[ev.Source] = struct{}{}
		} else {
			delete(c.down, ev.Source)
		}
	case EventAnalog:
		if ev.Source.Discrete() {
			return
		}
		if ev.Source.Accumulates() {
			c.accum[ev.Source] += ev.Value
		} else {
			c.sampled[ev.Source] = ev.Value
			if ev.Source.Kind == KindMousePosition {
				if ev.Source.Code == ComponentY {
					c.mouseY = ev.Value
				} else {
					c.mouseX = ev.Value
				}
			}
		}
	case EventPositionDelta:
		kind := ev.Source.Kind
		if kind != KindMouseDelta && kind != KindScrollWheel {
			kind = KindMouseDelta
		}
		c.accum[Source{Kind: kind, Code: ComponentX}] += ev.DX
		c.accum[Source{Kind: kind, Code: ComponentY}] += ev.DY
	}
}
