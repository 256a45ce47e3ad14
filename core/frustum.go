package core

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Frustum holds the six clip planes of a view-projection matrix in the
// order Left, Right, Bottom, Top, Near, Far. Each plane is Ax+By+Cz+D
// with the normal pointing inside.
type Frustum [6]mgl64.Vec4

// ExtractFrustum pulls the planes out of vp (OpenGL -1..1 depth).
func ExtractFrustum(vp mgl64.Mat4) Frustum {
	var f Frustum
	row := func(i int) mgl64.Vec4 {
		return mgl64.Vec4{vp.At(i, 0), vp.At(i, 1), vp.At(i, 2), vp.At(i, 3)}
	}
	w := row(3)
	f[0] = w.Add(row(0))
	f[1] = w.Sub(row(0))
	f[2] = w.Add(row(1))
	f[3] = w.Sub(row(1))
	f[4] = w.Add(row(2))
	f[5] = w.Sub(row(2))

	for i := range f {
		length := f[i].Vec3().Len()
		if length > 0 {
			f[i] = f[i].Mul(1 / length)
		}
	}
	return f
}

// Intersects reports whether any part of b lies inside the frustum.
// It tests the most-inside corner of b against each plane.
func (f Frustum) Intersects(b Bounds) bool {
	for _, plane := range f {
		var p mgl64.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane[axis] > 0 {
				p[axis] = b.Max[axis]
			} else {
				p[axis] = b.Min[axis]
			}
		}
		if plane.Vec3().Dot(p)+plane[3] < 0 {
			return false
		}
	}
	return true
}
