package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned box in model (plate) coordinates.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b Bounds) Extent() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// Empty reports a box with no positive extent on every axis.
func (b Bounds) Empty() bool {
	e := b.Extent()
	return e[0] <= 0 && e[1] <= 0 && e[2] <= 0
}

// BuildVolume describes the printer: plate width (x), depth (y) and
// height (z), plus the plate origin offset.
type BuildVolume struct {
	Width, Depth, Height      float64
	OffsetX, OffsetY, OffsetZ float64
}

// DefaultBuildVolume is a 200x200x100 mm printer at the origin.
func DefaultBuildVolume() BuildVolume {
	return BuildVolume{Width: 200, Depth: 200, Height: 100}
}

// Distance is the camera's reference distance for this printer.
func (v BuildVolume) Distance() float64 {
	d := math.Max(v.Width, v.Depth)
	if d <= 0 {
		return DefaultBuildVolume().Width
	}
	return d
}

// PlateCenter is the middle of the plate in model coordinates.
func (v BuildVolume) PlateCenter() mgl64.Vec2 {
	return mgl64.Vec2{v.OffsetX + v.Width/2, v.OffsetY + v.Depth/2}
}
