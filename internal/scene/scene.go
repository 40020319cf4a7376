// Package scene loads layered animation documents and turns them into
// validated animated properties.
//
// All structural checks happen in Build. A *Scene that Build returns can be
// evaluated at any frame without further error handling.
package scene

import (
	"fmt"

	"github.com/ivlev/animcore/internal/animated"
	"github.com/ivlev/animcore/internal/transform"
	"github.com/ivlev/animcore/internal/value"
)

// Scene is a validated, immutable set of layers.
type Scene struct {
	Name      string
	FrameRate float64
	InPoint   int
	OutPoint  int
	Layers    []*Layer
}

// Layer is one validated layer.
type Layer struct {
	Name       string
	Transform  transform.Transform
	Properties []Property
}

// Property is a named animated value of one of the supported kinds. Only
// the field matching Kind is set.
type Property struct {
	Name   string
	Kind   Kind
	Scalar *animated.Animated[value.Scalar]
	Vector *animated.Animated[value.Vector2D]
	Color  *animated.Animated[value.Color]
	Path   *animated.Animated[value.Path]
}

// Sample is a property value at one frame.
type Sample struct {
	Name   string
	Kind   Kind
	Scalar value.Scalar
	Vector value.Vector2D
	Color  value.Color
	Path   value.Path
}

// Layer returns the layer with the given name.
func (s *Scene) Layer(name string) (*Layer, bool) {
	for _, l := range s.Layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// IsAnimated reports whether the layer's transform or any property changes
// over time.
func (l *Layer) IsAnimated() bool {
	if l.Transform.IsAnimated() {
		return true
	}
	for _, p := range l.Properties {
		if p.IsAnimated() {
			return true
		}
	}
	return false
}

// IsAnimated reports whether the property changes over time.
func (p Property) IsAnimated() bool {
	switch p.Kind {
	case KindScalar:
		return p.Scalar.IsAnimated()
	case KindVector:
		return p.Vector.IsAnimated()
	case KindColor:
		return p.Color.IsAnimated()
	case KindPath:
		return p.Path.IsAnimated()
	}
	panic(fmt.Sprintf("scene: property %q has unknown kind %q", p.Name, p.Kind))
}

// At evaluates the property at frame.
func (p Property) At(frame int) Sample {
	s := Sample{Name: p.Name, Kind: p.Kind}
	switch p.Kind {
	case KindScalar:
		s.Scalar = p.Scalar.Value(frame)
	case KindVector:
		s.Vector = p.Vector.Value(frame)
	case KindColor:
		s.Color = p.Color.Value(frame)
	case KindPath:
		s.Path = p.Path.Value(frame)
	default:
		panic(fmt.Sprintf("scene: property %q has unknown kind %q", p.Name, p.Kind))
	}
	return s
}
