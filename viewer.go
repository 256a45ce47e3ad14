// Package gcview drives the camera and layer cursor of a g-code viewer
// from pointer and key input. Rendering is left to the host.
package gcview

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/gekko3d/gcview/core"
)

// Hooks are the host callbacks a Viewer fires. Any of them may be nil.
type Hooks struct {
	// Redraw asks the host to repaint. It may be called several times per
	// frame; hosts coalesce.
	Redraw func()
	// Focus asks the host to give the viewport keyboard focus.
	Focus func()
	// Click reports a double click.
	Click func(PointerEvent)
}

// ModelInfo is what the loader tells the viewer about a freshly loaded model.
type ModelInfo struct {
	Layers int
	Bounds core.Bounds
}

type loadedModel struct {
	info         ModelInfo
	cursor       *core.LayerCursor
	printedUntil int
}

// FrameState is everything the renderer needs for one frame.
type FrameState struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Viewport   core.Viewport
	Mode       core.ProjectionMode
	Zoom       float64

	HasModel     bool
	LayersToDraw int
	MaxLayers    int
	PrintedUntil int
	// AllLayers draws every layer alike; LastLayer highlights the final
	// layer of the model.
	AllLayers bool
	LastLayer bool
}

// Viewer is one open viewport: a camera, the input state machine and the
// layer cursor of the loaded model. It is driven from a single event
// thread and is not safe for concurrent use.
type Viewer struct {
	ID uuid.UUID

	ctl    controls
	hooks  Hooks
	log    Logger
	camera *core.Camera
	input  *Interaction
	model  *loadedModel
}

// NewViewer validates cfg and builds a viewer. A nil logger discards
// output; a *DefaultLogger is tagged with the viewer's short id.
func NewViewer(cfg Config, hooks Hooks, log Logger) (*Viewer, error) {
	ctl, err := cfg.controls()
	if err != nil {
		return nil, err
	}
	id := uuid.New()
	switch l := log.(type) {
	case nil:
		log = NewNopLogger()
	case *DefaultLogger:
		log = l.With(id.String()[:8])
	}
	v := &Viewer{
		ID:     id,
		ctl:    ctl,
		hooks:  hooks,
		log:    log,
		camera: core.NewCamera(ctl.mode, ctl.volume),
	}
	v.camera.SetFill(ctl.resetFill)
	v.input = newInteraction(v)
	v.log.Debugf("viewer %s created (%s, distance %.1f)", v.ID, ctl.mode, v.camera.Distance())
	return v, nil
}

func (v *Viewer) Camera() *core.Camera { return v.camera }

func (v *Viewer) Input() *Interaction { return v.input }

// Resize follows a viewport size change. It resets pan and zoom, as the
// projection's pixel box changed under them.
func (v *Viewer) Resize(width, height int) {
	v.camera.Reshape(width, height)
	w, h := v.camera.Size()
	v.log.Debugf("resize %dx%d, scale %.4f", w, h, v.camera.Nav.Scale)
	v.redraw()
}

// LoadModel adopts a new model and shows all of its layers.
func (v *Viewer) LoadModel(info ModelInfo) {
	v.model = &loadedModel{
		info:   info,
		cursor: core.NewLayerCursor(info.Layers),
	}
	v.log.Infof("model loaded: %d layers, bounds %v..%v", v.model.cursor.Max, info.Bounds.Min, info.Bounds.Max)
	v.redraw()
}

// ClearModel forgets the current model.
func (v *Viewer) ClearModel() {
	if v.model == nil {
		return
	}
	v.model = nil
	v.log.Infof("model cleared")
	v.redraw()
}

func (v *Viewer) HasModel() bool { return v.model != nil }

// Layers returns the layer cursor, or nil without a model.
func (v *Viewer) Layers() *core.LayerCursor {
	if v.model == nil {
		return nil
	}
	return v.model.cursor
}

// SetPrintProgress records how far the print simulation has got, as a
// vertex index into the model's tool path. Ignored without a model.
func (v *Viewer) SetPrintProgress(vertex int) {
	if v.model == nil || vertex == v.model.printedUntil {
		return
	}
	v.model.printedUntil = max(0, vertex)
	v.redraw()
}

// LayerUp shows one more layer. It reports whether a model was present.
func (v *Viewer) LayerUp() bool {
	if v.model == nil {
		return false
	}
	v.model.cursor.StepUp()
	v.redraw()
	return true
}

// LayerDown shows one layer fewer. It reports whether a model was present.
func (v *Viewer) LayerDown() bool {
	if v.model == nil {
		return false
	}
	v.model.cursor.StepDown()
	v.redraw()
	return true
}

// ShowLayer jumps the layer cursor to n, clamped into range. It reports
// whether a model was present.
func (v *Viewer) ShowLayer(n int) bool {
	if v.model == nil {
		return false
	}
	v.model.cursor.SetCurrent(n)
	v.redraw()
	return true
}

// Fit frames the loaded model. Without a model, or when the model has
// no extent to frame, it does nothing.
func (v *Viewer) Fit() bool {
	if v.model == nil {
		return false
	}
	if v.model.info.Bounds.Empty() {
		v.log.Debugf("fit skipped: empty bounds")
		return false
	}
	v.camera.FitToBounds(v.model.info.Bounds)
	v.log.Debugf("fit: scale %.4f pan %v", v.camera.Nav.Scale, v.camera.Nav.Pan)
	v.redraw()
	return true
}

// ResetView returns to the unrotated, unpanned default zoom.
func (v *Viewer) ResetView() {
	v.camera.Reset()
	v.camera.ResetView(v.ctl.resetFill)
	v.log.Debugf("view reset")
	v.redraw()
}

// ZoomAtWindow zooms by factor keeping the point under window pixel
// (x, y) in place.
func (v *Viewer) ZoomAtWindow(factor, x, y float64) bool {
	p, err := v.camera.WindowToWorld(x, y)
	if err != nil {
		v.log.Debugf("zoom at (%.0f, %.0f) dropped: %v", x, y, err)
		return false
	}
	about := p.Vec2()
	if !v.camera.ZoomBy(factor, &about) {
		return false
	}
	v.redraw()
	return true
}

// ZoomAtCenter zooms about the world point under the viewport centre.
func (v *Viewer) ZoomAtCenter(factor float64) bool {
	w, h := v.camera.Size()
	return v.ZoomAtWindow(factor, float64(w)/2, float64(h)/2)
}

// ModelVisible reports whether any part of the model is inside the view.
func (v *Viewer) ModelVisible() bool {
	if v.model == nil {
		return false
	}
	return v.camera.Frustum().Intersects(v.model.info.Bounds)
}

func (v *Viewer) HandlePointer(ev PointerEvent)     { v.input.Pointer(ev) }
func (v *Viewer) HandleWheel(ev WheelEvent)         { v.input.Wheel(ev) }
func (v *Viewer) HandleKey(ev KeyEvent)             { v.input.Key(ev) }
func (v *Viewer) HandleDoubleClick(ev PointerEvent) { v.input.DoubleClick(ev) }

// Frame snapshots the matrices and layer bound for the renderer.
func (v *Viewer) Frame() FrameState {
	f := FrameState{
		View:       v.camera.View(),
		Projection: v.camera.Projection(),
		Viewport:   v.camera.Viewport(),
		Mode:       v.camera.Mode,
		Zoom:       v.camera.Nav.Scale,
	}
	if v.model != nil {
		f.HasModel = true
		f.LayersToDraw = v.model.cursor.Current
		f.MaxLayers = v.model.cursor.Max
		f.PrintedUntil = v.model.printedUntil
		f.AllLayers = v.model.cursor.ShowsAll()
		f.LastLayer = v.model.cursor.HighlightsLast()
	}
	return f
}

func (v *Viewer) redraw() {
	if v.hooks.Redraw != nil {
		v.hooks.Redraw()
	}
}
