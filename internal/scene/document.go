package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a scene.
type Document struct {
	Version   string     `yaml:"version"`
	Name      string     `yaml:"name,omitempty"`
	FrameRate float64    `yaml:"frame_rate,omitempty"` // frames per second
	InPoint   int        `yaml:"in_point"`             // first frame
	OutPoint  int        `yaml:"out_point"`            // last frame, inclusive
	Layers    []LayerDoc `yaml:"layers"`
}

// LayerDoc describes one layer: where it sits and what else it animates.
type LayerDoc struct {
	Name       string        `yaml:"name"`
	Transform  TransformDoc  `yaml:"transform"`
	Properties []PropertyDoc `yaml:"properties,omitempty"`
}

// TransformDoc holds the transform tracks. Values are vectors except
// rotation, which is a scalar in degrees.
type TransformDoc struct {
	Anchor     *Track `yaml:"anchor,omitempty"`
	Position   *Track `yaml:"position,omitempty"`
	Scale      *Track `yaml:"scale,omitempty"` // percent
	Rotation   *Track `yaml:"rotation,omitempty"`
	AutoOrient bool   `yaml:"auto_orient,omitempty"`
}

// PropertyDoc is a named extra property of a given kind.
type PropertyDoc struct {
	Name  string `yaml:"name"`
	Kind  Kind   `yaml:"kind"`
	Track `yaml:",inline"`
}

// Track is a keyframe sequence. Animated defaults to true when there is
// more than one keyframe.
type Track struct {
	Animated  *bool         `yaml:"animated,omitempty"`
	Keyframes []KeyframeDoc `yaml:"keyframes"`
}

// KeyframeDoc is one keyframe. Value is decoded according to the kind of
// the track it belongs to.
type KeyframeDoc struct {
	Frame *int      `yaml:"frame,omitempty"`
	Value yaml.Node `yaml:"value"`
	Out   Point     `yaml:"out,omitempty,flow"`
	In    Point     `yaml:"in,omitempty,flow"`
	Hold  bool      `yaml:"hold,omitempty"`
}

// Point is an [x, y] pair.
type Point []float64

// PathDoc is the YAML form of a path keyframe value.
type PathDoc struct {
	Closed   bool    `yaml:"closed,omitempty"`
	Vertices []Point `yaml:"vertices"`
	In       []Point `yaml:"in"`
	Out      []Point `yaml:"out"`
}

// Kind names the value type of a property.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindVector Kind = "vector"
	KindColor  Kind = "color"
	KindPath   Kind = "path"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindScalar, KindVector, KindColor, KindPath:
		return true
	}
	return false
}

// NewKeyframe builds a KeyframeDoc whose value is v encoded as YAML.
func NewKeyframe(frame int, v any) (KeyframeDoc, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return KeyframeDoc{}, fmt.Errorf("encode keyframe value: %w", err)
	}
	return KeyframeDoc{Frame: &frame, Value: node}, nil
}

func (t *Track) isAnimated() bool {
	if t.Animated != nil {
		return *t.Animated
	}
	return len(t.Keyframes) > 1
}
