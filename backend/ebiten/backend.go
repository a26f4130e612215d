// Package ebitenbackend feeds ebiten's device state into the input
// pipeline as events. Poll it from the game's Update, before the
// pipeline tick.
package ebitenbackend

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/inputstack/input"
)

var mouseButtons = [...]struct {
	eb ebiten.MouseButton
	mb input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
	{ebiten.MouseButton3, input.MouseBack},
	{ebiten.MouseButton4, input.MouseForward},
}

// Backend translates ebiten's polled state into edge events: key and
// button transitions, cursor motion, wheel scroll, and the first
// standard-layout gamepad. It satisfies input.Backend.
type Backend struct {
	keys []ebiten.Key

	cursorX, cursorY int
	cursorSeen       bool

	pad        ebiten.GamepadID
	padOK      bool
	padButtons map[ebiten.StandardGamepadButton]struct{}
	padAxes    map[ebiten.StandardGamepadAxis]float64
	padScratch []ebiten.GamepadID
}

func New() *Backend {
	return &Backend{
		padButtons: make(map[ebiten.StandardGamepadButton]struct{}),
		padAxes:    make(map[ebiten.StandardGamepadAxis]float64),
	}
}

func (b *Backend) PollEvents() []input.Event {
	var events []input.Event
	events = b.pollKeys(events)
	events = b.pollMouse(events)
	events = b.pollGamepad(events)
	return events
}

func (b *Backend) pollKeys(events []input.Event) []input.Event {
	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		if mapped, ok := keyFromEbiten[k]; ok {
			events = append(events, input.DigitalEvent(mapped.Source(), true))
		}
	}
	b.keys = inpututil.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		if mapped, ok := keyFromEbiten[k]; ok {
			events = append(events, input.DigitalEvent(mapped.Source(), false))
		}
	}
	return events
}

func (b *Backend) pollMouse(events []input.Event) []input.Event {
	for _, m := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(m.eb) {
			events = append(events, input.DigitalEvent(m.mb.Source(), true))
		}
		if inpututil.IsMouseButtonJustReleased(m.eb) {
			events = append(events, input.DigitalEvent(m.mb.Source(), false))
		}
	}

	x, y := ebiten.CursorPosition()
	if !b.cursorSeen {
		b.cursorSeen = true
		b.cursorX, b.cursorY = x, y
		events = append(events,
			input.AnalogEvent(input.MousePositionX(), float64(x)),
			input.AnalogEvent(input.MousePositionY(), float64(y)))
	} else if x != b.cursorX || y != b.cursorY {
		dx, dy := x-b.cursorX, y-b.cursorY
		b.cursorX, b.cursorY = x, y
		events = append(events,
			input.AnalogEvent(input.MousePositionX(), float64(x)),
			input.AnalogEvent(input.MousePositionY(), float64(y)),
			input.MouseMotionEvent(float64(dx), float64(dy)))
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		events = append(events,
			input.AnalogEvent(input.ScrollX(), wx),
			input.AnalogEvent(input.ScrollY(), wy))
	}
	return events
}

func (b *Backend) pollGamepad(events []input.Event) []input.Event {
	if b.padOK && inpututil.IsGamepadJustDisconnected(b.pad) {
		events = b.dropPad(events)
	}
	if !b.padOK {
		b.padScratch = ebiten.AppendGamepadIDs(b.padScratch[:0])
		for _, id := range b.padScratch {
			// The button and axis codes assume the standard layout;
			// pads without it are skipped rather than misread.
			if ebiten.IsStandardGamepadLayoutAvailable(id) {
				b.pad = id
				b.padOK = true
				slog.Info("input: gamepad attached", "id", id, "name", ebiten.GamepadName(id))
				break
			}
		}
		if !b.padOK {
			return events
		}
	}

	for btn := ebiten.StandardGamepadButton(0); btn <= ebiten.StandardGamepadButtonMax; btn++ {
		if inpututil.IsStandardGamepadButtonJustPressed(b.pad, btn) {
			b.padButtons[btn] = struct{}{}
			events = append(events, input.DigitalEvent(input.GamepadButton(btn).Source(), true))
		}
		if inpututil.IsStandardGamepadButtonJustReleased(b.pad, btn) {
			delete(b.padButtons, btn)
			events = append(events, input.DigitalEvent(input.GamepadButton(btn).Source(), false))
		}
	}

	for axis := ebiten.StandardGamepadAxis(0); axis <= ebiten.StandardGamepadAxisMax; axis++ {
		v := ebiten.StandardGamepadAxisValue(b.pad, axis)
		if v != b.padAxes[axis] {
			b.padAxes[axis] = v
			events = append(events, input.AnalogEvent(input.GamepadAxis(axis).Source(), v))
		}
	}
	return events
}

// dropPad releases everything the detached pad was holding so actions and
// axes fed by it fall back to rest instead of sticking.
func (b *Backend) dropPad(events []input.Event) []input.Event {
	slog.Info("input: gamepad detached", "id", b.pad)
	for btn := range b.padButtons {
		events = append(events, input.DigitalEvent(input.GamepadButton(btn).Source(), false))
	}
	clear(b.padButtons)
	for axis, v := range b.padAxes {
		if v != 0 {
			events = append(events, input.AnalogEvent(input.GamepadAxis(axis).Source(), 0))
		}
	}
	clear(b.padAxes)
	b.padOK = false
	return events
}
