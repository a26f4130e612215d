package input

import (
	"errors"
	"fmt"
)

// ErrEmptyContextName marks a push or binding registration with an empty
// context name.
var ErrEmptyContextName = errors.New("empty context name")

// Context is one named scope on the stack. A context that is present but
// inactive keeps its position and claims nothing.
type Context struct {
	Name   string
	Active bool
}

// Stack is the ordered collection of input contexts. The last entry is
// the top of the stack: it is evaluated first and claims sources ahead of
// everything below it. Names are unique; depth is expected to stay in the
// single digits (gameplay, vehicle, UI, debug).
//
// The stack's own operations take effect immediately. The pipeline defers
// them to tick boundaries through its command queue, so resolution always
// observes one consistent order.
type Stack struct {
	entries []Context
}

// NewStack creates an empty context stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push puts the named context on top, active. If the name is already
// present anywhere in the stack it is moved to the top instead of added
// twice; pushing the current top is a no-op.
func (s *Stack) Push(name string) error {
	if name == "" {
		return fmt.Errorf("push context: %w", ErrEmptyContextName)
	}
	if i := s.index(name); i >= 0 {
		ctx := s.entries[i]
		ctx.Active = true
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		s.entries = append(s.entries, ctx)
		return nil
	}
	s.entries = append(s.entries, Context{Name: name, Active: true})
	return nil
}

// Pop removes the named context. Popping a name that is not present is a
// no-op.
func (s *Stack) Pop(name string) {
	if i := s.index(name); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
}

// PopTop removes and returns the topmost context name. It returns false
// on an empty stack.
func (s *Stack) PopTop() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.Name, true
}

// SetActive toggles a context in place without changing its position.
// Unknown names are a no-op.
func (s *Stack) SetActive(name string, active bool) {
	if i := s.index(name); i >= 0 {
		s.entries[i].Active = active
	}
}

// Contains reports whether the named context is on the stack, active or
// not.
func (s *Stack) Contains(name string) bool {
	return s.index(name) >= 0
}

// Len returns the number of contexts on the stack, active or not.
func (s *Stack) Len() int {
	return len(s.entries)
}

// OrderedActive returns the active contexts top-to-bottom. The returned
// order is the priority authority for the tick's resolution.
func (s *Stack) OrderedActive() []Context {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]Context, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Active {
			out = append(out, s.entries[i])
		}
	}
	return out
}

func (s *Stack) index(name string) int {
	for i := range s.entries {
		if s.entries[i].Name == name {
			return i
		}
	}
	return -1
}
