package input

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrEmptyTargetName marks a binding whose action or axis name is empty.
var ErrEmptyTargetName = errors.New("empty target name")

// Registry holds the physical-to-logical mapping table, scoped by context
// name. Bindings may be registered for contexts that are not currently on
// the stack; they become reachable when the context is pushed.
type Registry struct {
	byContext map[string]map[Source]Target
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byContext: make(map[string]map[Source]Target)}
}

// Register inserts or replaces the mapping for (context, source).
// Replacing an existing mapping is not an error: rebinding at runtime must
// stay cheap, so the old entry is overwritten and a warning is logged.
// The only failures are an empty context or target name.
func (r *Registry) Register(context string, src Source, tgt Target) error {
	if context == "" {
		return fmt.Errorf("register %s: %w", tgt.Name, ErrEmptyContextName)
	}
	if tgt.Name == "" {
		return fmt.Errorf("register %s in %q: %w", src, context, ErrEmptyTargetName)
	}

	m := r.byContext[context]
	if m == nil {
		m = make(map[Source]Target)
		r.byContext[context] = m
	}
	if old, ok := m[src]; ok {
		slog.Warn("input: binding replaced",
			"context", context,
			"source", src.String(),
			"old", old.Name,
			"new", tgt.Name)
	}
	m[src] = tgt
	return nil
}

// Unregister removes the mapping for (context, source). Removing a
// mapping that does not exist is a no-op.
func (r *Registry) Unregister(context string, src Source) {
	m := r.byContext[context]
	if m == nil {
		return
	}
	delete(m, src)
	if len(m) == 0 {
		delete(r.byContext, context)
	}
}

// Lookup returns the target bound to (context, source).
func (r *Registry) Lookup(context string, src Source) (Target, bool) {
	tgt, ok := r.byContext[context][src]
	return tgt, ok
}

// Bindings returns every binding registered for a context, in a stable
// order.
func (r *Registry) Bindings(context string) []Binding {
	m := r.byContext[context]
	if len(m) == 0 {
		return nil
	}
	srcs := make([]Source, 0, len(m))
	for src := range m {
		srcs = append(srcs, src)
	}
	sortSources(srcs)

	out := make([]Binding, 0, len(srcs))
	for _, src := range srcs {
		out = append(out, Binding{Context: context, Source: src, Target: m[src]})
	}
	return out
}
