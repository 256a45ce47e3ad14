package gcview

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/gcview/core"
)

type DragMode int

const (
	DragIdle DragMode = iota
	DragRotating
	DragPanning
)

func (m DragMode) String() string {
	switch m {
	case DragRotating:
		return "rotating"
	case DragPanning:
		return "panning"
	}
	return "idle"
}

// DragState is the transient pointer-drag state. Last is the window
// position of the previous drag event.
type DragState struct {
	Mode DragMode
	Last mgl64.Vec2
}

// Interaction turns raw input into camera and layer changes.
//
//	Idle --primary down/drag--> Rotating --primary up--> Idle
//	Idle --secondary down/drag--> Panning --secondary up--> Idle
//
// Dragging with a button that does not match the active mode drops back
// to Idle; the next event starts the new drag.
type Interaction struct {
	Drag DragState

	v *Viewer
}

func newInteraction(v *Viewer) *Interaction {
	return &Interaction{v: v}
}

// dragModeFor picks the mode a held button set asks for. The primary
// button wins when both are down.
func dragModeFor(held ButtonMask) DragMode {
	switch {
	case held.Has(ButtonLeft):
		return DragRotating
	case held.Has(ButtonRight):
		return DragPanning
	}
	return DragIdle
}

func (in *Interaction) Pointer(ev PointerEvent) {
	pos := mgl64.Vec2{ev.X, ev.Y}

	switch ev.Action {
	case PointerEnter:
		if in.v.hooks.Focus != nil {
			in.v.hooks.Focus()
		}

	case PointerDown:
		if in.Drag.Mode != DragIdle {
			return
		}
		switch ev.Button {
		case ButtonLeft:
			in.Drag = DragState{Mode: DragRotating, Last: pos}
		case ButtonRight:
			in.Drag = DragState{Mode: DragPanning, Last: pos}
		}

	case PointerMove:
		want := dragModeFor(ev.Held)
		switch {
		case want == DragIdle:
			in.Drag = DragState{}
		case in.Drag.Mode == DragIdle:
			in.Drag = DragState{Mode: want, Last: pos}
		case in.Drag.Mode != want:
			in.Drag = DragState{}
		case want == DragRotating:
			in.rotate(in.Drag.Last, pos)
			in.Drag.Last = pos
		case want == DragPanning:
			in.pan(in.Drag.Last, pos)
			in.Drag.Last = pos
		}

	case PointerUp:
		if (ev.Button == ButtonLeft && in.Drag.Mode == DragRotating) ||
			(ev.Button == ButtonRight && in.Drag.Mode == DragPanning) {
			in.Drag = DragState{}
		}

	case PointerLeave:
	}
}

func (in *Interaction) rotate(from, to mgl64.Vec2) {
	cam := in.v.camera
	w, h := cam.Size()
	p1 := core.NormalizePointer(from[0], from[1], float64(w), float64(h))
	p2 := core.NormalizePointer(to[0], to[1], float64(w), float64(h))
	q := core.Trackball(p1, p2, cam.BallRadius(in.v.ctl.ballDivisor))
	cam.RotateBy(q)
	in.v.redraw()
}

func (in *Interaction) pan(from, to mgl64.Vec2) {
	cam := in.v.camera
	if cam.Mode == core.Perspective {
		cam.PanBy(mgl64.Vec2{to[0] - from[0], -(to[1] - from[1])})
		in.v.redraw()
		return
	}
	a, err := cam.WindowToWorld(from[0], from[1])
	if err != nil {
		in.v.log.Debugf("pan dropped: %v", err)
		return
	}
	b, err := cam.WindowToWorld(to[0], to[1])
	if err != nil {
		in.v.log.Debugf("pan dropped: %v", err)
		return
	}
	cam.PanBy(b.Sub(a).Vec2())
	in.v.redraw()
}

// Wheel steps layers, or zooms about the pointer while the zoom modifier
// is held.
func (in *Interaction) Wheel(ev WheelEvent) {
	if ev.Delta == 0 {
		return
	}
	ctl := in.v.ctl
	if ev.Mods.Has(ctl.zoomModifier) {
		factor := ctl.wheelZoom
		if ev.Delta < 0 {
			factor = 1 / factor
		}
		in.v.ZoomAtWindow(factor, ev.X, ev.Y)
		return
	}
	if ev.Delta > 0 {
		in.v.LayerUp()
	} else {
		in.v.LayerDown()
	}
}

// Key runs every action bound to the key.
func (in *Interaction) Key(ev KeyEvent) {
	ctl := in.v.ctl
	step := ctl.keyZoom
	if ev.Mods.Has(ctl.fineModifier) {
		step = ctl.keyZoomFine
	}
	for _, a := range ctl.bindings[ev.Key] {
		switch a {
		case ActionLayerUp:
			in.v.LayerUp()
		case ActionLayerDown:
			in.v.LayerDown()
		case ActionZoomIn:
			in.v.ZoomAtCenter(step)
		case ActionZoomOut:
			in.v.ZoomAtCenter(1 / step)
		case ActionFit:
			in.v.Fit()
		case ActionReset:
			in.v.ResetView()
		}
	}
}

func (in *Interaction) DoubleClick(ev PointerEvent) {
	if in.v.hooks.Click != nil {
		in.v.hooks.Click(ev)
	}
}
