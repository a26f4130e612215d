// Package input turns raw, backend-specific device events into a
// deterministic, context-aware logical input state that game code queries
// by name. One collect→resolve→publish cycle runs per tick, strictly
// before consumer systems.
package input

import (
	"fmt"
	"log/slog"
)

type commandKind uint8

const (
	cmdPush commandKind = iota
	cmdPop
	cmdPopTop
	cmdSetActive
	cmdRegister
	cmdUnregister
)

// command is one queued mutation. Mutations requested while a tick is in
// flight are applied together at the next tick boundary so resolution
// never observes a half-changed stack or registry.
type command struct {
	kind    commandKind
	context string
	active  bool
	source  Source
	target  Target
}

// Pipeline owns the full per-tick cycle: apply queued mutations, collect
// a raw frame, resolve it against the context stack and binding registry,
// and publish the logical state. Not safe for concurrent use; the tick
// driver calls Tick once per frame before gameplay systems run.
type Pipeline struct {
	collector *Collector
	registry  *Registry
	stack     *Stack
	resolver  *Resolver
	state     *State

	pending []command
	frame   *RawFrame
	ticks   uint64
}

// New creates a pipeline polling the given device backends.
func New(backends ...Backend) *Pipeline {
	return &Pipeline{
		collector: NewCollector(backends...),
		registry:  NewRegistry(),
		stack:     NewStack(),
		resolver:  NewResolver(),
		state:     NewState(),
	}
}

// Tick runs one resolution cycle. Queued context and binding mutations
// are applied first, then the backends are polled and the new logical
// state replaces the previous one for this tick.
func (p *Pipeline) Tick() {
	p.applyPending()
	p.frame = p.collector.Collect()
	p.resolver.Resolve(p.frame, p.registry, p.stack.OrderedActive(), p.state)
	p.ticks++
}

// DeclareAction registers an action name ahead of binding it.
func (p *Pipeline) DeclareAction(name string) error {
	return p.state.DeclareAction(name)
}

// DeclareAxis registers an axis name and its valid range.
func (p *Pipeline) DeclareAxis(name string, min, max float64) error {
	return p.state.DeclareAxis(name, min, max)
}

// PushContext queues the named context for the top of the stack at the
// next tick boundary. An empty name fails immediately.
func (p *Pipeline) PushContext(name string) error {
	if name == "" {
		return fmt.Errorf("push context: %w", ErrEmptyContextName)
	}
	p.pending = append(p.pending, command{kind: cmdPush, context: name})
	return nil
}

// PopContext queues removal of the named context. Popping a name that is
// not on the stack is a no-op.
func (p *Pipeline) PopContext(name string) {
	p.pending = append(p.pending, command{kind: cmdPop, context: name})
}

// PopTopContext queues removal of whatever context is on top when the
// queue is applied.
func (p *Pipeline) PopTopContext() {
	p.pending = append(p.pending, command{kind: cmdPopTop})
}

// ActivateContext queues re-activation of a context in place.
func (p *Pipeline) ActivateContext(name string) {
	p.pending = append(p.pending, command{kind: cmdSetActive, context: name, active: true})
}

// DeactivateContext queues deactivation of a context in place: it keeps
// its stack position but claims nothing until reactivated.
func (p *Pipeline) DeactivateContext(name string) {
	p.pending = append(p.pending, command{kind: cmdSetActive, context: name, active: false})
}

// RegisterBinding queues a binding of a physical source to an action or
// axis within a context. The names are validated immediately; the
// registry write lands at the next tick boundary. Targets that were never
// declared are declared on the spot, axes with a default range of
// [-1, 1].
func (p *Pipeline) RegisterBinding(context string, src Source, tgt Target) error {
	if context == "" {
		return fmt.Errorf("register binding for %s: %w", tgt.Name, ErrEmptyContextName)
	}
	if tgt.Name == "" {
		return fmt.Errorf("register binding in %q: %w", context, ErrEmptyTargetName)
	}
	p.declareTarget(tgt)
	p.pending = append(p.pending, command{kind: cmdRegister, context: context, source: src, target: tgt})
	return nil
}

// UnregisterBinding queues removal of the binding for (context, source).
func (p *Pipeline) UnregisterBinding(context string, src Source) {
	p.pending = append(p.pending, command{kind: cmdUnregister, context: context, source: src})
}

// Action returns the named action's phase from the published state.
func (p *Pipeline) Action(name string) ActionPhase {
	return p.state.Action(name)
}

// Axis returns the named axis's value from the published state.
func (p *Pipeline) Axis(name string) float64 {
	return p.state.Axis(name)
}

// State returns the published logical state.
func (p *Pipeline) State() *State {
	return p.state
}

// Registry returns the binding registry. Mutate through the pipeline so
// changes land on tick boundaries.
func (p *Pipeline) Registry() *Registry {
	return p.registry
}

// Stack returns the context stack. Mutate through the pipeline so changes
// land on tick boundaries.
func (p *Pipeline) Stack() *Stack {
	return p.stack
}

// LastFrame returns the raw frame from the most recent tick. Intended for
// inspection tools.
func (p *Pipeline) LastFrame() *RawFrame {
	return p.frame
}

// ClaimedBy reports which context claimed a source during the most recent
// tick.
func (p *Pipeline) ClaimedBy(src Source) (string, bool) {
	return p.resolver.ClaimedBy(src)
}

// Ticks returns how many resolution cycles have run.
func (p *Pipeline) Ticks() uint64 {
	return p.ticks
}

func (p *Pipeline) applyPending() {
	for _, cmd := range p.pending {
		switch cmd.kind {
		case cmdPush:
			if err := p.stack.Push(cmd.context); err != nil {
				slog.Warn("input: queued push dropped", "context", cmd.context, "err", err)
			}
		case cmdPop:
			p.stack.Pop(cmd.context)
		case cmdPopTop:
			p.stack.PopTop()
		case cmdSetActive:
			p.stack.SetActive(cmd.context, cmd.active)
		case cmdRegister:
			if err := p.registry.Register(cmd.context, cmd.source, cmd.target); err != nil {
				slog.Warn("input: queued binding dropped", "context", cmd.context, "err", err)
			}
		case cmdUnregister:
			p.registry.Unregister(cmd.context, cmd.source)
		}
	}
	p.pending = p.pending[:0]
}

func (p *Pipeline) declareTarget(tgt Target) {
	switch tgt.Kind {
	case TargetAction:
		if _, ok := p.state.actions[tgt.Name]; !ok {
			slog.Debug("input: auto-declaring action", "name", tgt.Name)
			_ = p.state.DeclareAction(tgt.Name)
		}
	case TargetAxis:
		if _, ok := p.state.axes[tgt.Name]; !ok {
			slog.Debug("input: auto-declaring axis", "name", tgt.Name)
			_ = p.state.DeclareAxis(tgt.Name, -1, 1)
		}
	}
}
