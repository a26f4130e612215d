package input

// Resolver performs the per-tick computation that turns a raw frame, the
// binding registry, and the ordered active contexts into the published
// logical state.
//
// Resolution walks the contexts top-to-bottom. The first context with a
// binding for a source claims it; lower contexts never observe a claimed
// source for the rest of the tick. A context with no binding for a source
// contributes nothing for it and does not block lower contexts. Edge
// detection compares each action's effective presence this tick against
// the phase it published last tick, so a source changing hands between
// contexts produces a fresh rising edge rather than a silent Held.
type Resolver struct {
	claimed     map[Source]string
	actionsDown map[string]bool
	axisSums    map[string]float64
}

// NewResolver creates a resolver.
func NewResolver() *Resolver {
	return &Resolver{
		claimed:     make(map[Source]string),
		actionsDown: make(map[string]bool),
		axisSums:    make(map[string]float64),
	}
}

// Resolve computes and publishes the logical state for one tick. The
// contexts must be ordered top-to-bottom; st is mutated in place.
func (r *Resolver) Resolve(frame *RawFrame, reg *Registry, contexts []Context, st *State) {
	clear(r.claimed)
	clear(r.actionsDown)
	clear(r.axisSums)

	if frame != nil && reg != nil {
		for _, ctx := range contexts {
			for src := range frame.down {
				if _, taken := r.claimed[src]; taken {
					continue
				}
				tgt, ok := reg.Lookup(ctx.Name, src)
				if !ok {
					continue
				}
				r.claimed[src] = ctx.Name
				r.record(tgt, true, 1)
			}
			for src, v := range frame.analog {
				if _, taken := r.claimed[src]; taken {
					continue
				}
				tgt, ok := reg.Lookup(ctx.Name, src)
				if !ok {
					continue
				}
				r.claimed[src] = ctx.Name
				r.record(tgt, false, v)
			}
		}
	}

	for _, a := range st.actions {
		a.Phase = nextPhase(a.Phase.Active(), r.actionsDown[a.Name])
	}
	for _, ax := range st.axes {
		if sum, ok := r.axisSums[ax.Name]; ok {
			ax.Value = ax.clamp(sum)
		} else {
			// No binding claimed the axis this tick (its owning context
			// may have been popped); it resets rather than going stale.
			ax.Value = 0
		}
	}
}

// record folds one claimed source's contribution into its target. Several
// claimed sources may feed one target in a tick: actions OR their
// presence, axes sum their values before the clamp. Both merges are
// order-independent, which keeps resolution deterministic regardless of
// frame iteration order.
func (r *Resolver) record(tgt Target, digital bool, value float64) {
	switch tgt.Kind {
	case TargetAction:
		down := digital || value != 0
		r.actionsDown[tgt.Name] = r.actionsDown[tgt.Name] || down
	case TargetAxis:
		contribution := value
		if digital {
			contribution = 1
		}
		r.axisSums[tgt.Name] += contribution
	}
}

// ClaimedBy reports which context claimed a source during the most recent
// Resolve. Intended for inspection tools.
func (r *Resolver) ClaimedBy(src Source) (string, bool) {
	ctx, ok := r.claimed[src]
	return ctx, ok
}
