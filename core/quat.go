package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a rotation quaternion. V holds x, y, z and W the scalar part.
type Quat = mgl64.Quat

// QuatIdent returns the identity rotation.
func QuatIdent() Quat {
	return mgl64.QuatIdent()
}

// Cross returns a × b.
func Cross(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Cross(b)
}

// AxisToQuat builds the rotation of angle radians about axis.
// The axis is normalized first; a zero axis yields NaN components.
func AxisToQuat(axis mgl64.Vec3, angle float64) Quat {
	l := axis.Len()
	n := axis.Mul(1 / l)
	s, c := math.Sincos(angle / 2)
	return Quat{W: c, V: n.Mul(s)}
}

// Multiply returns the Hamilton product q1·q2.
func Multiply(q1, q2 Quat) Quat {
	return Quat{
		W: q1.W*q2.W - q1.V[0]*q2.V[0] - q1.V[1]*q2.V[1] - q1.V[2]*q2.V[2],
		V: mgl64.Vec3{
			q1.W*q2.V[0] + q1.V[0]*q2.W + q1.V[1]*q2.V[2] - q1.V[2]*q2.V[1],
			q1.W*q2.V[1] + q1.V[1]*q2.W + q1.V[2]*q2.V[0] - q1.V[0]*q2.V[2],
			q1.W*q2.V[2] + q1.V[2]*q2.W + q1.V[0]*q2.V[1] - q1.V[1]*q2.V[0],
		},
	}
}

// RotationMatrix expands a unit quaternion into a homogeneous rotation
// matrix (column-major, ready to hand to a graphics API).
//
// The layout is the classic trackball one: it is the transpose of
// q.Mat4(), so it rotates the eye by q rather than the model.
// q is used as-is; callers keep it normalized.
func RotationMatrix(q Quat) mgl64.Mat4 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	return mgl64.Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (z*x + y*w), 0,
		2 * (x*y + z*w), 1 - 2*(z*z+x*x), 2 * (y*z - x*w), 0,
		2 * (z*x - y*w), 2 * (y*z + x*w), 1 - 2*(y*y+x*x), 0,
		0, 0, 0, 1,
	}
}

// Compose applies the incremental rotation inc on top of the accumulated
// orientation and renormalizes the result so drift never builds up.
func Compose(inc, orientation Quat) Quat {
	q := Multiply(orientation, inc)
	l := q.Len()
	if l == 0 || math.IsNaN(l) {
		return orientation
	}
	return q.Scale(1 / l)
}
