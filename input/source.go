package input

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceKind identifies the device family of a physical source.
type SourceKind uint8

const (
	KindKey SourceKind = iota
	KindMouseButton
	KindMousePosition
	KindMouseDelta
	KindScrollWheel
	KindGamepadButton
	KindGamepadAxis
)

// Component codes for two-channel sources (mouse position, mouse delta,
// scroll wheel). Each channel is its own Source so that every continuous
// source maps to exactly one float in a raw frame.
const (
	ComponentX = 0
	ComponentY = 1
)

// Source identifies one physical input: a key, a button, or a single
// continuous channel. Sources are immutable values and are used as map
// keys by the registry and the raw frame.
type Source struct {
	Kind SourceKind
	Code int
}

// MouseButton is a mouse button code.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

func (b MouseButton) Source() Source {
	return Source{Kind: KindMouseButton, Code: int(b)}
}

// GamepadButton is a standard-layout gamepad button code.
type GamepadButton int

func (b GamepadButton) Source() Source {
	return Source{Kind: KindGamepadButton, Code: int(b)}
}

// GamepadAxis is a gamepad analog axis id.
type GamepadAxis int

func (a GamepadAxis) Source() Source {
	return Source{Kind: KindGamepadAxis, Code: int(a)}
}

func MousePositionX() Source { return Source{Kind: KindMousePosition, Code: ComponentX} }
func MousePositionY() Source { return Source{Kind: KindMousePosition, Code: ComponentY} }
func MouseDeltaX() Source    { return Source{Kind: KindMouseDelta, Code: ComponentX} }
func MouseDeltaY() Source    { return Source{Kind: KindMouseDelta, Code: ComponentY} }
func ScrollX() Source        { return Source{Kind: KindScrollWheel, Code: ComponentX} }
func ScrollY() Source        { return Source{Kind: KindScrollWheel, Code: ComponentY} }

// Discrete reports whether the source is a button-like input that is
// either down or up, as opposed to a continuous channel.
func (s Source) Discrete() bool {
	switch s.Kind {
	case KindKey, KindMouseButton, KindGamepadButton:
		return true
	}
	return false
}

// Accumulates reports whether the source is a per-tick accumulator that
// resets to zero every tick (mouse delta, scroll wheel), as opposed to a
// sampled value that persists between events.
func (s Source) Accumulates() bool {
	return s.Kind == KindMouseDelta || s.Kind == KindScrollWheel
}

var mouseButtonNames = map[MouseButton]string{
	MouseLeft:    "left",
	MouseRight:   "right",
	MouseMiddle:  "middle",
	MouseBack:    "back",
	MouseForward: "forward",
}

// String renders the source in profile syntax, e.g. "key:Space",
// "mouse:left", "mouse:dx", "wheel:y", "pad:axis:0".
func (s Source) String() string {
	switch s.Kind {
	case KindKey:
		if name, ok := keyNames[Key(s.Code)]; ok {
			return "key:" + name
		}
		return "key:" + strconv.Itoa(s.Code)
	case KindMouseButton:
		if name, ok := mouseButtonNames[MouseButton(s.Code)]; ok {
			return "mouse:" + name
		}
		return "mouse:" + strconv.Itoa(s.Code)
	case KindMousePosition:
		return "mouse:" + componentName(s.Code)
	case KindMouseDelta:
		return "mouse:d" + componentName(s.Code)
	case KindScrollWheel:
		return "wheel:" + componentName(s.Code)
	case KindGamepadButton:
		return "pad:btn:" + strconv.Itoa(s.Code)
	case KindGamepadAxis:
		return "pad:axis:" + strconv.Itoa(s.Code)
	}
	return fmt.Sprintf("unknown:%d:%d", s.Kind, s.Code)
}

func componentName(code int) string {
	if code == ComponentY {
		return "y"
	}
	return "x"
}

// ParseSource parses the profile syntax produced by Source.String.
// Names are case-insensitive.
func ParseSource(text string) (Source, error) {
	raw := strings.TrimSpace(text)
	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		return Source{}, fmt.Errorf("parse source %q: missing device prefix", text)
	}

	device := strings.ToLower(strings.TrimSpace(parts[0]))
	rest := strings.ToLower(strings.TrimSpace(strings.Join(parts[1:], ":")))

	switch device {
	case "key":
		if k, ok := keyCodes[rest]; ok {
			return k.Source(), nil
		}
		if code, err := strconv.Atoi(rest); err == nil {
			return Key(code).Source(), nil
		}
		return Source{}, fmt.Errorf("parse source %q: unknown key %q", text, rest)
	case "mouse":
		switch rest {
		case "x":
			return MousePositionX(), nil
		case "y":
			return MousePositionY(), nil
		case "dx":
			return MouseDeltaX(), nil
		case "dy":
			return MouseDeltaY(), nil
		}
		for btn, name := range mouseButtonNames {
			if rest == name {
				return btn.Source(), nil
			}
		}
		if code, err := strconv.Atoi(rest); err == nil {
			return MouseButton(code).Source(), nil
		}
		return Source{}, fmt.Errorf("parse source %q: unknown mouse input %q", text, rest)
	case "wheel":
		switch rest {
		case "x":
			return ScrollX(), nil
		case "y":
			return ScrollY(), nil
		}
		return Source{}, fmt.Errorf("parse source %q: unknown wheel channel %q", text, rest)
	case "pad":
		sub, num, ok := strings.Cut(rest, ":")
		if !ok {
			return Source{}, fmt.Errorf("parse source %q: pad inputs are pad:btn:<n> or pad:axis:<n>", text)
		}
		code, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return Source{}, fmt.Errorf("parse source %q: bad pad code %q", text, num)
		}
		switch strings.TrimSpace(sub) {
		case "btn":
			return GamepadButton(code).Source(), nil
		case "axis":
			return GamepadAxis(code).Source(), nil
		}
		return Source{}, fmt.Errorf("parse source %q: pad inputs are pad:btn:<n> or pad:axis:<n>", text)
	}
	return Source{}, fmt.Errorf("parse source %q: unknown device %q", text, device)
}
