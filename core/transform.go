package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Navigation is the pan/zoom part of the view: a uniform scale in the
// screen plane followed by a planar translation.
type Navigation struct {
	Pan   mgl64.Vec2
	Scale float64
}

func NewNavigation() Navigation {
	return Navigation{
		Pan:   mgl64.Vec2{0, 0},
		Scale: 1,
	}
}

// Matrix returns S(scale, scale, 1) * T(pan).
func (n Navigation) Matrix() mgl64.Mat4 {
	scale := mgl64.Scale3D(n.Scale, n.Scale, 1)
	translate := mgl64.Translate3D(n.Pan.X(), n.Pan.Y(), 0)
	return scale.Mul4(translate)
}

// Inverse returns inv(Matrix()) without a general 4x4 inversion.
func (n Navigation) Inverse() mgl64.Mat4 {
	invTranslate := mgl64.Translate3D(-n.Pan.X(), -n.Pan.Y(), 0)
	invScale := mgl64.Scale3D(1/n.Scale, 1/n.Scale, 1)
	return invTranslate.Mul4(invScale)
}

// Translated is Matrix() * T(d).
func (n Navigation) Translated(d mgl64.Vec2) Navigation {
	n.Pan = n.Pan.Add(d)
	return n
}

// ScaledAbout is Matrix() * T(p) * S(f) * T(-p): a zoom by f that keeps
// the navigation-space point p where it is.
func (n Navigation) ScaledAbout(f float64, p mgl64.Vec2) Navigation {
	// S(s)T(pan)T(p)S(f)T(-p) = S(s*f)T((pan + p - f*p) / f)
	n.Pan = n.Pan.Add(p).Sub(p.Mul(f)).Mul(1 / f)
	n.Scale *= f
	return n
}
