// Package value defines the property value types an animation can carry
// and how two values of the same type are blended.
//
// Every type implements Blender with the same contract: a.Blend(b, t)
// returns (a - b) * t + b, so t = 0 yields b and t = 1 yields a.
package value

// Blender is implemented by every animatable value type.
type Blender[T any] interface {
	// Blend mixes t of the receiver into other.
	Blend(other T, t float64) T
}

// BlendChecker is implemented by value types where not every pair of values
// can be blended. Validation calls it once per keyframe segment so that
// Blend itself never has to fail.
type BlendChecker[T any] interface {
	CheckBlend(other T) error
}

// Scalar is a plain number: opacity, rotation in degrees, stroke width.
type Scalar float64

// Blend implements Blender.
func (s Scalar) Blend(other Scalar, t float64) Scalar {
	return (s-other)*Scalar(t) + other
}
