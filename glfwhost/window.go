// Package glfwhost runs a Viewer inside a GLFW window and forwards the
// window's input callbacks to it.
package glfwhost

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/gcview"
)

// Window owns one GLFW window. All methods must be called from the
// goroutine that called Open.
type Window struct {
	Width  int
	Height int
	Title  string

	win    *glfw.Window
	viewer *gcview.Viewer
	log    gcview.Logger
	clicks *gcview.ClickTracker
	held   gcview.ButtonMask
	dirty  bool
}

// NewWindow describes a window. Zero sizes and an empty title get defaults.
func NewWindow(width, height int, title string, log gcview.Logger) *Window {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "gcview"
	}
	if log == nil {
		log = gcview.NewNopLogger()
	}
	return &Window{
		Width:  width,
		Height: height,
		Title:  title,
		log:    log,
		clicks: gcview.NewClickTracker(),
	}
}

// Open initialises GLFW and creates the window. It locks the calling
// goroutine to its OS thread.
func (w *Window) Open() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}

	// the viewer core renders nothing itself; no GL context needed
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(w.Width, w.Height, w.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("create window: %w", err)
	}
	w.win = win
	return nil
}

// Hooks returns viewer hooks backed by this window. click may be nil.
func (w *Window) Hooks(click func(gcview.PointerEvent)) gcview.Hooks {
	return gcview.Hooks{
		Redraw: w.RequestRedraw,
		Focus:  w.Focus,
		Click:  click,
	}
}

// Attach routes the window's callbacks to v and sizes v to the window.
func (w *Window) Attach(v *gcview.Viewer) {
	w.viewer = v

	w.win.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		x, y := w.win.GetCursorPos()
		action := gcview.PointerLeave
		if entered {
			action = gcview.PointerEnter
		}
		v.HandlePointer(gcview.PointerEvent{Action: action, X: x, Y: y, Held: w.held})
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		v.HandlePointer(gcview.PointerEvent{Action: gcview.PointerMove, X: x, Y: y, Held: w.held})
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := translateButton(button)
		if b == gcview.ButtonNone {
			return
		}
		x, y := w.win.GetCursorPos()
		ev := gcview.PointerEvent{X: x, Y: y, Button: b, Mods: translateMods(mods)}
		switch action {
		case glfw.Press:
			w.held |= gcview.Buttons(b)
			ev.Action, ev.Held = gcview.PointerDown, w.held
			v.HandlePointer(ev)
			if w.clicks.Press(b, x, y, time.Now()) {
				v.HandleDoubleClick(ev)
			}
		case glfw.Release:
			w.held &^= gcview.Buttons(b)
			ev.Action, ev.Held = gcview.PointerUp, w.held
			v.HandlePointer(ev)
		}
	})

	w.win.SetScrollCallback(func(gw *glfw.Window, _, yoff float64) {
		x, y := gw.GetCursorPos()
		v.HandleWheel(gcview.WheelEvent{X: x, Y: y, Delta: yoff, Mods: currentMods(gw)})
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		k := translateKey(key)
		if k == gcview.KeyUnknown {
			return
		}
		v.HandleKey(gcview.KeyEvent{Key: k, Mods: translateMods(mods)})
	})

	w.win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Width, w.Height = width, height
		v.Resize(width, height)
	})

	width, height := w.win.GetSize()
	w.Width, w.Height = width, height
	v.Resize(width, height)
}

// RequestRedraw marks the window dirty; Run repaints once per batch of
// events however many requests came in.
func (w *Window) RequestRedraw() { w.dirty = true }

func (w *Window) Focus() {
	if w.win != nil {
		w.win.Focus()
	}
}

// Run pumps events until the window is closed, calling onFrame whenever
// a redraw was requested.
func (w *Window) Run(onFrame func()) {
	w.dirty = true
	for !w.win.ShouldClose() {
		glfw.WaitEventsTimeout(0.1)
		if !w.dirty {
			continue
		}
		w.dirty = false
		if onFrame != nil {
			onFrame()
		}
	}
	w.log.Debugf("window closed")
}

func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}

// currentMods reads the modifier state for callbacks that do not carry it.
func currentMods(gw *glfw.Window) gcview.Modifier {
	var m gcview.Modifier
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if gw.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	if pressed(glfw.KeyLeftShift, glfw.KeyRightShift) {
		m |= gcview.ModShift
	}
	if pressed(glfw.KeyLeftControl, glfw.KeyRightControl) {
		m |= gcview.ModControl
	}
	if pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		m |= gcview.ModAlt
	}
	if pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		m |= gcview.ModSuper
	}
	return m
}
