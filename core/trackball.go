package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultBallRadiusDivisor turns the camera distance into a trackball
// radius: radius = distance / divisor.
const DefaultBallRadiusDivisor = 250.0

const invSqrt2 = 0.70710678118654752440

// ProjectToSphere lifts (x, y) onto a ball of radius r. Near the centre the
// point lands on the sphere; past r/√2 it lands on the hyperbolic sheet
// z = (r/√2)²/d, which meets the sphere without a jump.
func ProjectToSphere(r, x, y float64) float64 {
	d := math.Sqrt(x*x + y*y)
	if d < r*invSqrt2 {
		return math.Sqrt(r*r - d*d)
	}
	t := r * invSqrt2
	return t * t / d
}

// Trackball returns the incremental rotation for a drag from p1 to p2.
// Both points are in normalized viewport space (see NormalizePointer).
func Trackball(p1, p2 mgl64.Vec2, r float64) Quat {
	if p1 == p2 {
		return QuatIdent()
	}

	a := mgl64.Vec3{p1[0], p1[1], ProjectToSphere(r, p1[0], p1[1])}
	b := mgl64.Vec3{p2[0], p2[1], ProjectToSphere(r, p2[0], p2[1])}
	axis := Cross(b, a)

	t := a.Sub(b).Len() / (2 * r)
	t = mgl64.Clamp(t, -1, 1)
	phi := 2 * math.Asin(t)

	return AxisToQuat(axis, phi)
}

// NormalizePointer maps a window pixel (origin top-left) into [-1, 1]²
// with y pointing up.
func NormalizePointer(x, y, width, height float64) mgl64.Vec2 {
	return mgl64.Vec2{
		x/(width/2) - 1,
		1 - y/(height/2),
	}
}

// BallRadius derives the trackball radius from the camera distance.
// A non-positive divisor falls back to DefaultBallRadiusDivisor.
func BallRadius(distance, divisor float64) float64 {
	if divisor <= 0 {
		divisor = DefaultBallRadiusDivisor
	}
	return distance / divisor
}
