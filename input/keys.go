package input

import "strings"

// Key is a backend-agnostic keyboard key code. The values follow the GLFW
// convention: printable keys use their ASCII value, function keys sit in
// the 256+ range. Backends translate their own key enums into these codes.
type Key int

func (k Key) Source() Source {
	return Source{Kind: KindKey, Code: int(k)}
}

const (
	KeyUnknown Key = -1

	KeySpace        Key = 32
	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	Key0            Key = 48
	Key1            Key = 49
	Key2            Key = 50
	Key3            Key = 51
	Key4            Key = 52
	Key5            Key = 53
	Key6            Key = 54
	Key7            Key = 55
	Key8            Key = 56
	Key9            Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGraveAccent  Key = 96

	KeyEscape      Key = 256
	KeyEnter       Key = 257
	KeyTab         Key = 258
	KeyBackspace   Key = 259
	KeyInsert      Key = 260
	KeyDelete      Key = 261
	KeyRight       Key = 262
	KeyLeft        Key = 263
	KeyDown        Key = 264
	KeyUp          Key = 265
	KeyPageUp      Key = 266
	KeyPageDown    Key = 267
	KeyHome        Key = 268
	KeyEnd         Key = 269
	KeyCapsLock    Key = 280
	KeyScrollLock  Key = 281
	KeyNumLock     Key = 282
	KeyPrintScreen Key = 283
	KeyPause       Key = 284
	KeyF1          Key = 290
	KeyF2          Key = 291
	KeyF3          Key = 292
	KeyF4          Key = 293
	KeyF5          Key = 294
	KeyF6          Key = 295
	KeyF7          Key = 296
	KeyF8          Key = 297
	KeyF9          Key = 298
	KeyF10         Key = 299
	KeyF11         Key = 300
	KeyF12         Key = 301
	KeyPad0        Key = 320
	KeyPad1        Key = 321
	KeyPad2        Key = 322
	KeyPad3        Key = 323
	KeyPad4        Key = 324
	KeyPad5        Key = 325
	KeyPad6        Key = 326
	KeyPad7        Key = 327
	KeyPad8        Key = 328
	KeyPad9        Key = 329
	KeyPadDecimal  Key = 330
	KeyPadDivide   Key = 331
	KeyPadMultiply Key = 332
	KeyPadSubtract Key = 333
	KeyPadAdd      Key = 334
	KeyPadEnter    Key = 335
	KeyPadEqual    Key = 336
	KeyLeftShift   Key = 340
	KeyLeftCtrl    Key = 341
	KeyLeftAlt     Key = 342
	KeyLeftSuper   Key = 343
	KeyRightShift  Key = 344
	KeyRightCtrl   Key = 345
	KeyRightAlt    Key = 346
	KeyRightSuper  Key = 347
)

var keyNames = map[Key]string{
	KeySpace:        "Space",
	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	Key0:            "0",
	Key1:            "1",
	Key2:            "2",
	Key3:            "3",
	Key4:            "4",
	Key5:            "5",
	Key6:            "6",
	Key7:            "7",
	Key8:            "8",
	Key9:            "9",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equal",
	KeyA:            "A",
	KeyB:            "B",
	KeyC:            "C",
	KeyD:            "D",
	KeyE:            "E",
	KeyF:            "F",
	KeyG:            "G",
	KeyH:            "H",
	KeyI:            "I",
	KeyJ:            "J",
	KeyK:            "K",
	KeyL:            "L",
	KeyM:            "M",
	KeyN:            "N",
	KeyO:            "O",
	KeyP:            "P",
	KeyQ:            "Q",
	KeyR:            "R",
	KeyS:            "S",
	KeyT:            "T",
	KeyU:            "U",
	KeyV:            "V",
	KeyW:            "W",
	KeyX:            "X",
	KeyY:            "Y",
	KeyZ:            "Z",
	KeyLeftBracket:  "LeftBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RightBracket",
	KeyGraveAccent:  "GraveAccent",
	KeyEscape:       "Escape",
	KeyEnter:        "Enter",
	KeyTab:          "Tab",
	KeyBackspace:    "Backspace",
	KeyInsert:       "Insert",
	KeyDelete:       "Delete",
	KeyRight:        "Right",
	KeyLeft:         "Left",
	KeyDown:         "Down",
	KeyUp:           "Up",
	KeyPageUp:       "PageUp",
	KeyPageDown:     "PageDown",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyCapsLock:     "CapsLock",
	KeyScrollLock:   "ScrollLock",
	KeyNumLock:      "NumLock",
	KeyPrintScreen:  "PrintScreen",
	KeyPause:        "Pause",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyPad0:         "Pad0",
	KeyPad1:         "Pad1",
	KeyPad2:         "Pad2",
	KeyPad3:         "Pad3",
	KeyPad4:         "Pad4",
	KeyPad5:         "Pad5",
	KeyPad6:         "Pad6",
	KeyPad7:         "Pad7",
	KeyPad8:         "Pad8",
	KeyPad9:         "Pad9",
	KeyPadDecimal:   "PadDecimal",
	KeyPadDivide:    "PadDivide",
	KeyPadMultiply:  "PadMultiply",
	KeyPadSubtract:  "PadSubtract",
	KeyPadAdd:       "PadAdd",
	KeyPadEnter:     "PadEnter",
	KeyPadEqual:     "PadEqual",
	KeyLeftShift:    "LeftShift",
	KeyLeftCtrl:     "LeftCtrl",
	KeyLeftAlt:      "LeftAlt",
	KeyLeftSuper:    "LeftSuper",
	KeyRightShift:   "RightShift",
	KeyRightCtrl:    "RightCtrl",
	KeyRightAlt:     "RightAlt",
	KeyRightSuper:   "RightSuper",
}

var keyCodes = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// KeyName returns the canonical name for a key, or "" if the code has no
// registered name.
func KeyName(k Key) string {
	return keyNames[k]
}
