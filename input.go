package gcview

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyHome
	KeyEnd
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyMinus
	KeyEqual
	KeyKPPlus
	KeyKPMinus
)

var keyNames = map[Key]string{
	KeyA: "a", KeyB: "b", KeyC: "c", KeyD: "d", KeyE: "e", KeyF: "f",
	KeyG: "g", KeyH: "h", KeyI: "i", KeyJ: "j", KeyK: "k", KeyL: "l",
	KeyM: "m", KeyN: "n", KeyO: "o", KeyP: "p", KeyQ: "q", KeyR: "r",
	KeyS: "s", KeyT: "t", KeyU: "u", KeyV: "v", KeyW: "w", KeyX: "x",
	KeyY: "y", KeyZ: "z",
	KeySpace:    "space",
	KeyEnter:    "enter",
	KeyEscape:   "escape",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyRight:    "right",
	KeyLeft:     "left",
	KeyDown:     "down",
	KeyUp:       "up",
	KeyPageUp:   "pageup",
	KeyPageDown: "pagedown",
	KeyMinus:    "minus",
	KeyEqual:    "equal",
	KeyKPPlus:   "kp_plus",
	KeyKPMinus:  "kp_minus",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		m[n] = k
	}
	return m
}()

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey resolves a key name as written in a config file.
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Has reports whether every bit of m2 is held in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m2 != 0 && m&m2 == m2
}

var modifierNames = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModControl,
	"control": ModControl,
	"alt":     ModAlt,
	"super":   ModSuper,
	"cmd":     ModSuper,
}

// ParseModifier accepts "shift", "ctrl", "alt" or "super", optionally
// joined with "+".
func ParseModifier(s string) (Modifier, error) {
	var m Modifier
	for _, part := range strings.Split(s, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		bit, ok := modifierNames[p]
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", part)
		}
		m |= bit
	}
	return m, nil
}

func (m Modifier) String() string {
	var parts []string
	for name, bit := range map[string]Modifier{"shift": ModShift, "ctrl": ModControl, "alt": ModAlt, "super": ModSuper} {
		if m&bit != 0 {
			parts = append(parts, name)
		}
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// ButtonMask is the set of buttons held during an event.
type ButtonMask uint8

func (m ButtonMask) Has(b MouseButton) bool {
	return b != ButtonNone && m&Buttons(b) != 0
}

// Buttons builds a mask from individual buttons.
func Buttons(bs ...MouseButton) ButtonMask {
	var m ButtonMask
	for _, b := range bs {
		if b != ButtonNone {
			m |= 1 << uint(b-1)
		}
	}
	return m
}

type PointerAction int

const (
	PointerEnter PointerAction = iota
	PointerLeave
	PointerDown
	PointerMove
	PointerUp
)

// PointerEvent is a mouse event in window pixels, origin top-left.
// Button is the button that changed (down/up); Held is what is pressed
// after the event.
type PointerEvent struct {
	Action PointerAction
	X, Y   float64
	Button MouseButton
	Held   ButtonMask
	Mods   Modifier
}

// WheelEvent carries a signed wheel delta; positive scrolls up/away.
type WheelEvent struct {
	X, Y  float64
	Delta float64
	Mods  Modifier
}

type KeyEvent struct {
	Key  Key
	Mods Modifier
}

// ClickTracker turns button presses into double clicks for hosts whose
// windowing layer does not report them.
type ClickTracker struct {
	Interval time.Duration
	Slop     float64

	last    time.Time
	lastX   float64
	lastY   float64
	lastBtn MouseButton
}

func NewClickTracker() *ClickTracker {
	return &ClickTracker{Interval: 400 * time.Millisecond, Slop: 4}
}

// Press records a press at t and reports whether it completes a double
// click. A completed double click does not start a new one.
func (c *ClickTracker) Press(b MouseButton, x, y float64, t time.Time) bool {
	double := b == c.lastBtn &&
		!c.last.IsZero() &&
		t.Sub(c.last) <= c.Interval &&
		math.Abs(x-c.lastX) <= c.Slop &&
		math.Abs(y-c.lastY) <= c.Slop
	if double {
		c.last = time.Time{}
		return true
	}
	c.last, c.lastX, c.lastY, c.lastBtn = t, x, y, b
	return false
}
