package value

import "math"

// Vector2D is a 2D point or displacement.
type Vector2D struct {
	X, Y float64
}

// Origin is the zero vector, used wherever an optional position is absent.
var Origin = Vector2D{}

// Vec constructs a Vector2D.
func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// Blend implements Blender componentwise.
func (v Vector2D) Blend(other Vector2D, t float64) Vector2D {
	return Vector2D{
		X: (v.X-other.X)*t + other.X,
		Y: (v.Y-other.Y)*t + other.Y,
	}
}

// Add returns v + w.
func (v Vector2D) Add(w Vector2D) Vector2D {
	return Vector2D{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2D) Sub(w Vector2D) Vector2D {
	return Vector2D{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales v by s.
func (v Vector2D) Mul(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Div divides v by s.
func (v Vector2D) Div(s float64) Vector2D {
	return Vector2D{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector2D) Neg() Vector2D {
	return Vector2D{X: -v.X, Y: -v.Y}
}

// AngleFromXAxis returns the angle between the positive X axis and v,
// in degrees, in (-180, 180].
func (v Vector2D) AngleFromXAxis() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}
