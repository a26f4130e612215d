// Package profile loads binding profiles from yaml and applies them to a
// pipeline. A profile declares the logical vocabulary (actions, axes and
// their ranges), the per-context bindings, and the initial context stack.
package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/inputstack/input"
)

type Profile struct {
	Name string `yaml:"name"`
	// Stack lists the initial context stack bottom to top.
	Stack    []string      `yaml:"stack"`
	Actions  []string      `yaml:"actions"`
	Axes     []AxisSpec    `yaml:"axes"`
	Contexts []ContextSpec `yaml:"contexts"`
}

type ContextSpec struct {
	Name     string        `yaml:"name"`
	Bindings []BindingSpec `yaml:"bindings"`
}

type AxisSpec struct {
	Name string  `yaml:"name"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
}

// UnmarshalYAML fills the range in so a profile only has to spell it out
// for axes that are not the usual [-1, 1].
func (a *AxisSpec) UnmarshalYAML(value *yaml.Node) error {
	type raw struct {
		Name string   `yaml:"name"`
		Min  *float64 `yaml:"min"`
		Max  *float64 `yaml:"max"`
	}
	var r raw
	if err := value.Decode(&r); err != nil {
		return err
	}
	a.Name = r.Name
	a.Min, a.Max = -1, 1
	if r.Min != nil {
		a.Min = *r.Min
	}
	if r.Max != nil {
		a.Max = *r.Max
	}
	return nil
}

// BindingSpec binds one source to exactly one of an action or an axis.
type BindingSpec struct {
	Source string `yaml:"source"`
	Action string `yaml:"action,omitempty"`
	Axis   string `yaml:"axis,omitempty"`
}

func (b BindingSpec) target() (input.Target, error) {
	switch {
	case b.Action != "" && b.Axis != "":
		return input.Target{}, fmt.Errorf("source %s names both action %q and axis %q", b.Source, b.Action, b.Axis)
	case b.Action != "":
		return input.ActionTarget(b.Action), nil
	case b.Axis != "":
		return input.AxisTarget(b.Axis), nil
	}
	return input.Target{}, fmt.Errorf("source %s names no action or axis", b.Source)
}

// Parse decodes a profile document.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile: unmarshal: %w", err)
	}
	return &p, nil
}

// Applier is the slice of the pipeline a profile writes to.
type Applier interface {
	DeclareAction(name string) error
	DeclareAxis(name string, min, max float64) error
	RegisterBinding(context string, src input.Source, tgt input.Target) error
	PushContext(name string) error
}

// Apply declares the profile's vocabulary, registers its bindings, and
// pushes its initial stack. Mutations go through the pipeline, so they
// land on the next tick boundary like any other.
func (p *Profile) Apply(dst Applier) error {
	for _, name := range p.Actions {
		if err := dst.DeclareAction(name); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	for _, ax := range p.Axes {
		if err := dst.DeclareAxis(ax.Name, ax.Min, ax.Max); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	for _, ctx := range p.Contexts {
		for _, b := range ctx.Bindings {
			src, err := input.ParseSource(b.Source)
			if err != nil {
				return fmt.Errorf("profile %s: context %s: %w", p.Name, ctx.Name, err)
			}
			tgt, err := b.target()
			if err != nil {
				return fmt.Errorf("profile %s: context %s: %w", p.Name, ctx.Name, err)
			}
			if err := dst.RegisterBinding(ctx.Name, src, tgt); err != nil {
				return fmt.Errorf("profile %s: context %s: %w", p.Name, ctx.Name, err)
			}
		}
	}
	for _, name := range p.Stack {
		if err := dst.PushContext(name); err != nil {
			return fmt.Errorf("profile %s: %w", p.Name, err)
		}
	}
	return nil
}
