package transform

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/ivlev/animcore/internal/value"
)

// Matrices are f64.Mat4 in row-major order acting on column vectors:
//
//	| m0  m1  m2  m3  |
//	| m4  m5  m6  m7  |
//	| m8  m9  m10 m11 |
//	| m12 m13 m14 m15 |
//
// so the translation lives in m3, m7 and m11.

// Identity returns the identity matrix.
func Identity() f64.Mat4 {
	return f64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation returns a matrix translating by v in the XY plane.
func Translation(v value.Vector2D) f64.Mat4 {
	return f64.Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a matrix rotating by angle radians about the Z axis.
func RotationZ(angle float64) f64.Mat4 {
	sin, cos := math.Sincos(angle)
	return f64.Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scaling returns a matrix scaling X and Y by the components of v.
func Scaling(v value.Vector2D) f64.Mat4 {
	return f64.Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Multiply returns a*b, which applies b first.
func Multiply(a, b f64.Mat4) f64.Mat4 {
	var m f64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4]*b[c] + a[r*4+1]*b[4+c] + a[r*4+2]*b[8+c] + a[r*4+3]*b[12+c]
		}
	}
	return m
}

// Apply transforms the point p (z = 0, w = 1).
func Apply(m f64.Mat4, p value.Vector2D) value.Vector2D {
	return value.Vec(
		m[0]*p.X+m[1]*p.Y+m[3],
		m[4]*p.X+m[5]*p.Y+m[7],
	)
}

// Affine returns the 2D part of m as an x/image affine matrix.
func Affine(m f64.Mat4) f64.Aff3 {
	return f64.Aff3{
		m[0], m[1], m[3],
		m[4], m[5], m[7],
	}
}
