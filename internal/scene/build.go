package scene

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/animcore/internal/animated"
	"github.com/ivlev/animcore/internal/opt"
	"github.com/ivlev/animcore/internal/transform"
	"github.com/ivlev/animcore/internal/value"
)

// ErrMissingValue is reported for a keyframe without a value.
var ErrMissingValue = errors.New("missing value")

// BuildError locates a structural problem in a document.
type BuildError struct {
	Layer string // empty for document-level problems
	Path  string // e.g. "transform.position" or "properties[2]"
	Err   error
}

func (e *BuildError) Error() string {
	switch {
	case e.Layer == "" && e.Path == "":
		return fmt.Sprintf("scene: %v", e.Err)
	case e.Layer == "":
		return fmt.Sprintf("scene: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("scene: layer %q: %s: %v", e.Layer, e.Path, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// Build validates doc and constructs the scene.
func Build(doc *Document) (*Scene, error) {
	if doc.OutPoint < doc.InPoint {
		return nil, &BuildError{Path: "out_point", Err: fmt.Errorf("out point %d is before in point %d", doc.OutPoint, doc.InPoint)}
	}
	if doc.FrameRate < 0 {
		return nil, &BuildError{Path: "frame_rate", Err: fmt.Errorf("negative frame rate %v", doc.FrameRate)}
	}

	s := &Scene{
		Name:      doc.Name,
		FrameRate: doc.FrameRate,
		InPoint:   doc.InPoint,
		OutPoint:  doc.OutPoint,
		Layers:    make([]*Layer, 0, len(doc.Layers)),
	}
	seen := make(map[string]bool, len(doc.Layers))
	for i := range doc.Layers {
		ld := &doc.Layers[i]
		if ld.Name == "" {
			return nil, &BuildError{Path: fmt.Sprintf("layers[%d]", i), Err: errors.New("layer has no name")}
		}
		if seen[ld.Name] {
			return nil, &BuildError{Path: fmt.Sprintf("layers[%d]", i), Err: fmt.Errorf("duplicate layer name %q", ld.Name)}
		}
		seen[ld.Name] = true

		l, err := buildLayer(ld)
		if err != nil {
			return nil, err
		}
		s.Layers = append(s.Layers, l)
	}
	return s, nil
}

func buildLayer(ld *LayerDoc) (*Layer, error) {
	fail := func(path string, err error) error {
		return &BuildError{Layer: ld.Name, Path: path, Err: err}
	}

	tr := transform.New()
	tr.AutoOrient = ld.Transform.AutoOrient
	if t := ld.Transform.Anchor; t != nil {
		a, err := buildTrack(t, decodeVector)
		if err != nil {
			return nil, fail("transform.anchor", err)
		}
		tr.Anchor = opt.Some(a)
	}
	if t := ld.Transform.Position; t != nil {
		p, err := buildTrack(t, decodeVector)
		if err != nil {
			return nil, fail("transform.position", err)
		}
		tr.Position = opt.Some(p)
	}
	if t := ld.Transform.Scale; t != nil {
		sc, err := buildTrack(t, decodeVector)
		if err != nil {
			return nil, fail("transform.scale", err)
		}
		tr.Scale = sc
	}
	if t := ld.Transform.Rotation; t != nil {
		r, err := buildTrack(t, decodeScalar)
		if err != nil {
			return nil, fail("transform.rotation", err)
		}
		tr.Rotation = r
	}

	if err := tr.Validate(); err != nil {
		return nil, fail("transform", err)
	}

	l := &Layer{Name: ld.Name, Transform: tr}
	names := make(map[string]bool, len(ld.Properties))
	for i := range ld.Properties {
		pd := &ld.Properties[i]
		path := fmt.Sprintf("properties[%d]", i)
		if pd.Name == "" {
			return nil, fail(path, errors.New("property has no name"))
		}
		if names[pd.Name] {
			return nil, fail(path, fmt.Errorf("duplicate property name %q", pd.Name))
		}
		names[pd.Name] = true

		p, err := buildProperty(pd)
		if err != nil {
			return nil, fail(path, err)
		}
		l.Properties = append(l.Properties, p)
	}
	return l, nil
}

func buildProperty(pd *PropertyDoc) (Property, error) {
	p := Property{Name: pd.Name, Kind: pd.Kind}
	var err error
	switch pd.Kind {
	case KindScalar:
		p.Scalar, err = buildTrack(&pd.Track, decodeScalar)
	case KindVector:
		p.Vector, err = buildTrack(&pd.Track, decodeVector)
	case KindColor:
		p.Color, err = buildTrack(&pd.Track, decodeColor)
	case KindPath:
		p.Path, err = buildTrack(&pd.Track, decodePath)
	default:
		err = fmt.Errorf("unknown kind %q", pd.Kind)
	}
	return p, err
}

func buildTrack[T value.Blender[T]](t *Track, decode func(*yaml.Node) (T, error)) (*animated.Animated[T], error) {
	keys := make([]animated.KeyFrame[T], len(t.Keyframes))
	for i := range t.Keyframes {
		kd := &t.Keyframes[i]
		if isNull(&kd.Value) {
			return nil, fmt.Errorf("keyframe %d: %w", i, ErrMissingValue)
		}
		v, err := decode(&kd.Value)
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: %w", i, err)
		}
		out, err := kd.Out.handle()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: out: %w", i, err)
		}
		in, err := kd.In.handle()
		if err != nil {
			return nil, fmt.Errorf("keyframe %d: in: %w", i, err)
		}
		keys[i] = animated.KeyFrame[T]{
			Value:      v,
			StartFrame: opt.FromPtr(kd.Frame),
			EasingOut:  out,
			EasingIn:   in,
			Hold:       kd.Hold,
		}
	}
	return animated.New(keys, t.isAnimated())
}

// isNull reports whether a keyframe's value was omitted or written as null.
func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func (p Point) vector() (value.Vector2D, error) {
	if len(p) != 2 {
		return value.Vector2D{}, fmt.Errorf("want [x, y], got %d numbers", len(p))
	}
	return value.Vec(p[0], p[1]), nil
}

func (p Point) handle() (opt.Option[value.Vector2D], error) {
	if p == nil {
		return opt.None[value.Vector2D](), nil
	}
	v, err := p.vector()
	if err != nil {
		return opt.None[value.Vector2D](), err
	}
	return opt.Some(v), nil
}

func decodeScalar(n *yaml.Node) (value.Scalar, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, fmt.Errorf("scalar value: %w", err)
	}
	return value.Scalar(f), nil
}

func decodeVector(n *yaml.Node) (value.Vector2D, error) {
	var p Point
	if err := n.Decode(&p); err != nil {
		return value.Vector2D{}, fmt.Errorf("vector value: %w", err)
	}
	return p.vector()
}

// decodeColor accepts "#rrggbb" strings and [r, g, b] or [r, g, b, a]
// component lists in [0, 1]. Alpha is ignored.
func decodeColor(n *yaml.Node) (value.Color, error) {
	if n.Kind == yaml.ScalarNode {
		var s string
		if err := n.Decode(&s); err != nil {
			return value.Color{}, fmt.Errorf("color value: %w", err)
		}
		return value.ParseColor(s)
	}
	var c []float64
	if err := n.Decode(&c); err != nil {
		return value.Color{}, fmt.Errorf("color value: %w", err)
	}
	if len(c) != 3 && len(c) != 4 {
		return value.Color{}, fmt.Errorf("color value: want 3 or 4 components, got %d", len(c))
	}
	return value.RGB(c[0], c[1], c[2]), nil
}

func decodePath(n *yaml.Node) (value.Path, error) {
	var pd PathDoc
	if err := n.Decode(&pd); err != nil {
		return value.Path{}, fmt.Errorf("path value: %w", err)
	}
	p := value.Path{Closed: pd.Closed}
	var err error
	if p.Vertices, err = vectors(pd.Vertices); err != nil {
		return value.Path{}, fmt.Errorf("path vertices: %w", err)
	}
	if p.InTangents, err = vectors(pd.In); err != nil {
		return value.Path{}, fmt.Errorf("path in-tangents: %w", err)
	}
	if p.OutTangents, err = vectors(pd.Out); err != nil {
		return value.Path{}, fmt.Errorf("path out-tangents: %w", err)
	}
	return p, nil
}

func vectors(points []Point) ([]value.Vector2D, error) {
	out := make([]value.Vector2D, len(points))
	for i, p := range points {
		v, err := p.vector()
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
