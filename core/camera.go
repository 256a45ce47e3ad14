// Package core holds the viewer's camera math and its layer cursor.
package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type ProjectionMode int

const (
	Orthographic ProjectionMode = iota
	Perspective
)

func (m ProjectionMode) String() string {
	switch m {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	}
	return fmt.Sprintf("ProjectionMode(%d)", int(m))
}

// ParseProjectionMode accepts "orthographic"/"ortho" and
// "perspective"/"persp", case-insensitively.
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "orthographic", "ortho":
		return Orthographic, nil
	case "perspective", "persp":
		return Perspective, nil
	}
	return Orthographic, fmt.Errorf("unknown projection mode %q", s)
}

const (
	// DefaultFill leaves a 10% margin around the plate.
	DefaultFill = 0.9

	PerspectiveFovY = 60.0

	// MinZoom and MaxZoom bound the scale relative to the reset scale.
	MinZoom = 1e-3
	MaxZoom = 1e3
	orthoNear       = 0.1
	perspNear       = 10.0
)

// Camera is the state of one viewport: accumulated orientation, pan and
// zoom, projection mode and size. It produces plain matrices for the
// renderer and never touches graphics API state.
type Camera struct {
	Orientation Quat
	Nav         Navigation
	Mode        ProjectionMode

	volume    BuildVolume
	distance  float64
	fill      float64
	baseScale float64
	width     int
	height    int
	proj      mgl64.Mat4
}

func NewCamera(mode ProjectionMode, volume BuildVolume) *Camera {
	c := &Camera{
		Orientation: QuatIdent(),
		Nav:         NewNavigation(),
		Mode:        mode,
		volume:      volume,
		distance:    volume.Distance(),
		fill:        DefaultFill,
	}
	c.Reshape(1, 1)
	return c
}

func (c *Camera) Distance() float64 { return c.distance }

func (c *Camera) Size() (int, int) { return c.width, c.height }

// SetBuildVolume changes the printer the camera frames and rebuilds the
// projection for the new distance.
func (c *Camera) SetBuildVolume(v BuildVolume) {
	c.volume = v
	c.distance = v.Distance()
	c.Reshape(c.width, c.height)
}

// SetFill changes the plate fill that Reshape resets to and applies it
// now. Values that are not strictly positive are ignored.
func (c *Camera) SetFill(fill float64) {
	if !(fill > 0) || math.IsInf(fill, 0) {
		return
	}
	c.fill = fill
	c.ResetView(fill)
}

func (c *Camera) Fill() float64 { return c.fill }

// SetMode switches projection and rebuilds the projection matrix.
func (c *Camera) SetMode(mode ProjectionMode) {
	c.Mode = mode
	c.Reshape(c.width, c.height)
}

// Reshape adopts a new viewport size, rebuilds the projection and resets
// the navigation to the camera's fill.
func (c *Camera) Reshape(width, height int) {
	c.width = max(1, width)
	c.height = max(1, height)
	w, h := float64(c.width), float64(c.height)
	far := 3 * c.distance

	if c.Mode == Perspective {
		c.proj = mgl64.Perspective(mgl64.DegToRad(PerspectiveFovY), w/h, perspNear, far)
	} else {
		c.proj = mgl64.Ortho(-w/2, w/2, -h/2, h/2, orthoNear, far)
	}

	c.ResetView(c.fill)
}

// ResetView clears pan and sets the zoom so the plate fills fill of the
// smaller viewport side. Perspective relies on the field of view instead
// and keeps a unit scale.
func (c *Camera) ResetView(fill float64) {
	if !(fill > 0) {
		fill = c.fill
	}
	c.Nav = NewNavigation()
	if c.Mode == Orthographic {
		c.Nav.Scale = fill * float64(min(c.width, c.height)) / c.distance
	}
	c.baseScale = c.Nav.Scale
}

// Reset puts the orientation back to identity and clears pan. Zoom is
// left alone; pair it with ResetView.
func (c *Camera) Reset() {
	c.Orientation = QuatIdent()
	c.Nav.Pan = mgl64.Vec2{}
}

func (c *Camera) RotateBy(inc Quat) {
	c.Orientation = Compose(inc, c.Orientation)
}

// PanBy shifts the view by d in navigation space.
func (c *Camera) PanBy(d mgl64.Vec2) {
	if math.IsNaN(d[0]) || math.IsNaN(d[1]) {
		return
	}
	c.Nav = c.Nav.Translated(d)
}

// ZoomBy multiplies the zoom by factor. With about set, that navigation
// space point stays under the same pixel. The resulting scale is clamped
// to [MinZoom, MaxZoom] times the reset scale. Factors that are not
// strictly positive, and zooms that the clamp reduces to nothing, are
// refused and ZoomBy reports false.
func (c *Camera) ZoomBy(factor float64, about *mgl64.Vec2) bool {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return false
	}
	// a fit may already sit outside the range; never push further out
	lo := math.Min(c.baseScale*MinZoom, c.Nav.Scale)
	hi := math.Max(c.baseScale*MaxZoom, c.Nav.Scale)
	scale := mgl64.Clamp(c.Nav.Scale*factor, lo, hi)
	factor = scale / c.Nav.Scale
	if factor == 1 || !(factor > 0) {
		return false
	}
	var p mgl64.Vec2
	if about != nil {
		if math.IsNaN(about[0]) || math.IsNaN(about[1]) {
			return false
		}
		p = *about
	}
	c.Nav = c.Nav.ScaledAbout(factor, p)
	c.Nav.Scale = scale
	return true
}

// FitToBounds centres the model b on the plate centre and, in
// orthographic mode, zooms so its larger planar extent fills the view.
func (c *Camera) FitToBounds(b Bounds) {
	c.ResetView(1.0)

	center := b.Center()
	plate := c.volume.PlateCenter()
	pan := mgl64.Vec2{plate[0] - center[0], plate[1] - center[1]}

	if c.Mode == Orthographic {
		ext := b.Extent()
		if m := math.Max(ext[0], ext[1]); m > 0 {
			c.Nav.Scale *= c.distance / m
		}
	}
	c.Nav = c.Nav.Translated(pan)
}

func (c *Camera) Projection() mgl64.Mat4 { return c.proj }

// Navigation is the pan/zoom matrix at the front of View.
func (c *Camera) Navigation() mgl64.Mat4 { return c.Nav.Matrix() }

// View composes navigation, the step back from the plate, the trackball
// rotation and the move of the plate centre to the origin.
func (c *Camera) View() mgl64.Mat4 {
	plate := c.volume.PlateCenter()
	back := mgl64.Translate3D(0, 0, -c.distance)
	rot := RotationMatrix(c.Orientation)
	origin := mgl64.Translate3D(-plate[0], -plate[1], 0)
	return c.Navigation().Mul4(back).Mul4(rot).Mul4(origin)
}

func (c *Camera) Viewport() Viewport {
	return Viewport{Width: c.width, Height: c.height}
}

// WindowToWorld unprojects a window pixel (origin top-left) through the
// navigation matrix. The projection is inverted on its own and the
// navigation with its closed-form inverse, so extreme zoom never makes
// the product look singular.
func (c *Camera) WindowToWorld(x, y float64) (mgl64.Vec3, error) {
	eye, err := ScreenToWorld(x, float64(c.height)-y, mgl64.Ident4(), c.proj, c.Viewport())
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.TransformCoordinate(eye, c.Nav.Inverse()), nil
}

// Frustum returns the clip planes of the full view in model coordinates.
func (c *Camera) Frustum() Frustum {
	return ExtractFrustum(c.proj.Mul4(c.View()))
}

// BallRadius is the trackball radius for the current distance.
func (c *Camera) BallRadius(divisor float64) float64 {
	return BallRadius(c.distance, divisor)
}
