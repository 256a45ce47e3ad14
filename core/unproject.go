package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// UnprojectDepth is the window-space depth used for every unprojection.
// Nothing reads a depth buffer; the far plane is a fixed point along the
// pick ray.
const UnprojectDepth = 1.0

// Viewport is a pixel rectangle, origin bottom-left.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// Center returns the middle pixel of the viewport.
func (v Viewport) Center() (float64, float64) {
	return float64(v.X) + float64(v.Width)/2, float64(v.Y) + float64(v.Height)/2
}

// ScreenToWorld maps a pixel (y measured from the bottom) back into the
// space in front of view. Singular matrices return an error; anything
// else degenerate propagates as NaN.
func ScreenToWorld(x, y float64, view, proj mgl64.Mat4, vp Viewport) (mgl64.Vec3, error) {
	obj, err := mgl64.UnProject(
		mgl64.Vec3{x, y, UnprojectDepth},
		view, proj,
		vp.X, vp.Y, vp.Width, vp.Height,
	)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("unproject (%g, %g): %w", x, y, err)
	}
	return obj, nil
}

// WorldToScreen is the forward mapping of ScreenToWorld. The returned
// depth is in window space [0, 1].
func WorldToScreen(p mgl64.Vec3, view, proj mgl64.Mat4, vp Viewport) mgl64.Vec3 {
	return mgl64.Project(p, view, proj, vp.X, vp.Y, vp.Width, vp.Height)
}
