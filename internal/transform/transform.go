// Package transform composes a layer's animated anchor, position, scale and
// rotation into a single matrix per frame.
package transform

import (
	"errors"
	"math"

	"golang.org/x/image/math/f64"

	"github.com/ivlev/animcore/internal/animated"
	"github.com/ivlev/animcore/internal/opt"
	"github.com/ivlev/animcore/internal/value"
)

// Vector is an animated 2D property.
type Vector = animated.Animated[value.Vector2D]

// Scalar is an animated scalar property.
type Scalar = animated.Animated[value.Scalar]

// Transform describes how a layer is placed. Scale is in percent. Rotation
// is in degrees. Absent anchor and position read as the origin.
type Transform struct {
	Anchor     opt.Option[*Vector]
	Position   opt.Option[*Vector]
	Scale      *Vector
	Rotation   *Scalar
	AutoOrient bool
}

// DefaultScale is the 100% scale used when a document omits one.
func DefaultScale() *Vector {
	return animated.Static(value.Vec(100, 100))
}

// DefaultRotation is the zero rotation used when a document omits one.
func DefaultRotation() *Scalar {
	return animated.Static(value.Scalar(0))
}

// New returns a transform with default scale and rotation and no anchor or
// position.
func New() Transform {
	return Transform{
		Scale:    DefaultScale(),
		Rotation: DefaultRotation(),
	}
}

// Validate reports missing required sub-properties.
func (t Transform) Validate() error {
	if t.Scale == nil {
		return errors.New("transform has no scale")
	}
	if t.Rotation == nil {
		return errors.New("transform has no rotation")
	}
	if a, ok := t.Anchor.Get(); ok && a == nil {
		return errors.New("transform anchor is present but nil")
	}
	if p, ok := t.Position.Get(); ok && p == nil {
		return errors.New("transform position is present but nil")
	}
	return nil
}

// Compose returns the layer matrix at frame:
//
//	T(position) · Rz(rotation) · S(scale/100) · T(-anchor)
//
// i.e. the layer is scaled and rotated about its anchor, then moved to its
// position.
func (t Transform) Compose(frame int) f64.Mat4 {
	scale := t.Scale.Value(frame).Div(100)
	rotation := float64(t.Rotation.Value(frame)) + t.AutoOrientAngle(frame)

	anchor := value.Origin
	if a, ok := t.Anchor.Get(); ok {
		anchor = a.Value(frame)
	}
	position := value.Origin
	if p, ok := t.Position.Get(); ok {
		position = p.Value(frame)
	}

	m := Translation(position)
	m = Multiply(m, RotationZ(rotation*math.Pi/180))
	m = Multiply(m, Scaling(scale))
	return Multiply(m, Translation(anchor.Neg()))
}

// AutoOrientAngle returns the extra rotation, in degrees, that turns the
// layer along its direction of motion. The heading comes from the raw
// position keyframes of the active segment, not from the eased path, and
// is zero when auto-orient is off, the position is static, or the clamped
// frame is not inside any segment (which includes the last keyframe).
func (t Transform) AutoOrientAngle(frame int) float64 {
	if !t.AutoOrient {
		return 0
	}
	pos, ok := t.Position.Get()
	if !ok || !pos.IsAnimated() {
		return 0
	}
	last := pos.Len() - 1
	frame = max(pos.StartFrame(0), frame)
	frame = min(pos.StartFrame(last), frame)
	i := pos.Segment(frame)
	if i < 0 {
		return 0
	}
	return pos.Keyframe(i + 1).Value.Sub(pos.Keyframe(i).Value).AngleFromXAxis()
}

// IsAnimated reports whether any sub-property changes over time.
func (t Transform) IsAnimated() bool {
	anchor := false
	if a, ok := t.Anchor.Get(); ok {
		anchor = a.IsAnimated()
	}
	position := false
	if p, ok := t.Position.Get(); ok {
		position = p.IsAnimated()
	}
	return anchor || position || t.Scale.IsAnimated() || t.Rotation.IsAnimated()
}
