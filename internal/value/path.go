package value

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when two paths with different element counts
// are blended.
var ErrShapeMismatch = errors.New("path element counts differ")

// Path is the payload of a shape keyframe: a bezier outline given as
// vertices with a parallel in-tangent and out-tangent per vertex.
// Tangents are relative to their vertex.
type Path struct {
	Closed      bool
	Vertices    []Vector2D
	InTangents  []Vector2D
	OutTangents []Vector2D
}

// Validate checks that the three sequences are parallel.
func (p Path) Validate() error {
	n := len(p.Vertices)
	if len(p.InTangents) != n || len(p.OutTangents) != n {
		return fmt.Errorf("path has %d vertices, %d in-tangents, %d out-tangents",
			n, len(p.InTangents), len(p.OutTangents))
	}
	return nil
}

// CheckBlend implements BlendChecker.
func (p Path) CheckBlend(other Path) error {
	if len(p.Vertices) != len(other.Vertices) ||
		len(p.InTangents) != len(other.InTangents) ||
		len(p.OutTangents) != len(other.OutTangents) {
		return fmt.Errorf("%w: %d/%d/%d vs %d/%d/%d", ErrShapeMismatch,
			len(p.Vertices), len(p.InTangents), len(p.OutTangents),
			len(other.Vertices), len(other.InTangents), len(other.OutTangents))
	}
	return nil
}

// BlendPath blends two paths elementwise. It never truncates: paths with
// different counts are rejected with ErrShapeMismatch.
func BlendPath(p, other Path, t float64) (Path, error) {
	if err := p.CheckBlend(other); err != nil {
		return Path{}, err
	}
	return Path{
		Closed:      p.Closed,
		Vertices:    blendPoints(p.Vertices, other.Vertices, t),
		InTangents:  blendPoints(p.InTangents, other.InTangents, t),
		OutTangents: blendPoints(p.OutTangents, other.OutTangents, t),
	}, nil
}

// Blend implements Blender. Keyframes are validated with CheckBlend when an
// animation is built, so a mismatch here is a programming error and panics.
func (p Path) Blend(other Path, t float64) Path {
	out, err := BlendPath(p, other, t)
	if err != nil {
		panic(err)
	}
	return out
}

func blendPoints(a, b []Vector2D, t float64) []Vector2D {
	if a == nil {
		return nil
	}
	out := make([]Vector2D, len(a))
	for i := range a {
		out[i] = a[i].Blend(b[i], t)
	}
	return out
}
