// Package animated evaluates keyframed properties at integer frames.
//
// An Animated value is validated once, when it is built; evaluation then
// assumes well-formed data and never fails. All methods are safe for
// concurrent use because nothing is mutated after New returns.
package animated

import (
	"fmt"
	"sort"

	"github.com/ivlev/animcore/internal/easing"
	"github.com/ivlev/animcore/internal/opt"
	"github.com/ivlev/animcore/internal/value"
)

// KeyFrame anchors a value at a frame. EasingOut leaves this keyframe and
// EasingIn enters the next one; together they shape the segment that starts
// here. A Hold keyframe keeps its value until the next keyframe starts.
type KeyFrame[T any] struct {
	Value      T
	StartFrame opt.Option[int]
	EasingOut  opt.Option[value.Vector2D]
	EasingIn   opt.Option[value.Vector2D]
	Hold       bool
}

// Animated is a property whose value may change over time.
type Animated[T value.Blender[T]] struct {
	keyframes []KeyFrame[T]
	starts    []int
	curves    []easing.Curve
	animated  bool
}

type validator interface {
	Validate() error
}

// New validates keyframes and builds an Animated. When animated is false
// only the first keyframe's value is used and the rest is not checked.
//
// For an animated sequence every keyframe needs a start frame (a single
// keyframe may omit it), start frames must strictly increase, and every
// keyframe except the last needs both easing handles unless it holds.
func New[T value.Blender[T]](keyframes []KeyFrame[T], animated bool) (*Animated[T], error) {
	if len(keyframes) == 0 {
		return nil, invalid(-1, ErrEmpty)
	}
	a := &Animated[T]{
		keyframes: append([]KeyFrame[T](nil), keyframes...),
		starts:    make([]int, len(keyframes)),
		animated:  animated,
	}
	for i, kf := range a.keyframes {
		a.starts[i] = kf.StartFrame.Or(0)
		if v, ok := any(kf.Value).(validator); ok && (animated || i == 0) {
			if err := v.Validate(); err != nil {
				return nil, invalid(i, err)
			}
		}
	}
	if !animated || len(keyframes) == 1 {
		return a, nil
	}

	a.curves = make([]easing.Curve, len(keyframes)-1)
	for i, kf := range a.keyframes {
		if !kf.StartFrame.IsSome() {
			return nil, invalid(i, ErrMissingStartFrame)
		}
		if i > 0 && a.starts[i] <= a.starts[i-1] {
			return nil, invalid(i, fmt.Errorf("%w: %d after %d", ErrNonMonotonic, a.starts[i], a.starts[i-1]))
		}
		if i == len(keyframes)-1 {
			break
		}
		if c, ok := any(a.keyframes[i+1].Value).(value.BlendChecker[T]); ok {
			if err := c.CheckBlend(kf.Value); err != nil {
				return nil, invalid(i+1, err)
			}
		}
		if kf.Hold {
			continue
		}
		out, okOut := kf.EasingOut.Get()
		in, okIn := kf.EasingIn.Get()
		if !okOut || !okIn {
			return nil, invalid(i, ErrMissingEasing)
		}
		a.curves[i] = easing.NewCurve(out, in)
	}
	return a, nil
}

// MustNew is New for statically known keyframes; it panics on invalid input.
func MustNew[T value.Blender[T]](keyframes []KeyFrame[T], animated bool) *Animated[T] {
	a, err := New(keyframes, animated)
	if err != nil {
		panic(err)
	}
	return a
}

// Static returns a non-animated property holding v.
func Static[T value.Blender[T]](v T) *Animated[T] {
	return MustNew([]KeyFrame[T]{{Value: v}}, false)
}

// InitialValue returns the first keyframe's value.
func (a *Animated[T]) InitialValue() T {
	return a.keyframes[0].Value
}

// IsAnimated reports whether the value changes over time.
func (a *Animated[T]) IsAnimated() bool {
	return a.animated
}

// Len returns the number of keyframes.
func (a *Animated[T]) Len() int {
	return len(a.keyframes)
}

// Keyframe returns keyframe i.
func (a *Animated[T]) Keyframe(i int) KeyFrame[T] {
	return a.keyframes[i]
}

// StartFrame returns the start frame of keyframe i, 0 when absent.
func (a *Animated[T]) StartFrame(i int) int {
	return a.starts[i]
}

// Segment returns the index i of the keyframe pair (i, i+1) whose half-open
// frame range [start(i), start(i+1)) contains frame, or -1 when the frame is
// outside every segment or the property is not animated.
func (a *Animated[T]) Segment(frame int) int {
	if !a.animated {
		return -1
	}
	j := sort.Search(len(a.starts), func(i int) bool { return a.starts[i] > frame })
	if j == 0 || j == len(a.starts) {
		return -1
	}
	return j - 1
}

// Value returns the property value at frame.
//
// Inside a segment the later keyframe's value is blended toward the
// earlier one by the eased ratio, p1.Blend(p0, r), which yields p0 at the
// segment start. Frames at or after the last keyframe return its value;
// frames before the first return the first value.
func (a *Animated[T]) Value(frame int) T {
	if !a.animated {
		return a.InitialValue()
	}
	if i := a.Segment(frame); i >= 0 {
		p0, p1 := &a.keyframes[i], &a.keyframes[i+1]
		if p0.Hold {
			return p0.Value
		}
		x := float64(frame-a.starts[i]) / float64(a.starts[i+1]-a.starts[i])
		return p1.Value.Blend(p0.Value, a.curves[i].Ratio(x))
	}
	last := len(a.keyframes) - 1
	if frame >= a.starts[last] {
		return a.keyframes[last].Value
	}
	return a.keyframes[0].Value
}
