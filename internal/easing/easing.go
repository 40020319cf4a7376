// Package easing resolves keyframe easing handles into eased time ratios.
//
// An ease curve is the cubic bezier from (0,0) to (1,1) whose interior
// control points are the out-handle of a keyframe and the in-handle of the
// next one. The horizontal axis is elapsed time, the vertical axis the
// eased fraction of the value change.
package easing

import (
	"math"
	"sort"

	"github.com/ivlev/animcore/internal/value"
)

const (
	// rootTolerance bounds |x(t) - x| for an accepted curve parameter.
	rootTolerance = 1e-9
	newtonSteps   = 8
	bisectSteps   = 64
)

// Curve is an ease curve in polynomial form. The zero value is not usable;
// build one with NewCurve.
type Curve struct {
	// x(t) = ((ax*t + bx)*t + cx)*t, likewise for y.
	ax, bx, cx float64
	ay, by, cy float64
}

// NewCurve builds the ease curve with the given handles.
func NewCurve(out, in value.Vector2D) Curve {
	return Curve{
		ax: 3*out.X - 3*in.X + 1,
		bx: -6*out.X + 3*in.X,
		cx: 3 * out.X,
		ay: 3*out.Y - 3*in.Y + 1,
		by: -6*out.Y + 3*in.Y,
		cy: 3 * out.Y,
	}
}

// Linear returns the identity ease curve.
func Linear() Curve {
	return NewCurve(value.Vec(1.0/3, 1.0/3), value.Vec(2.0/3, 2.0/3))
}

// Ratio is a shorthand for NewCurve(out, in).Ratio(x).
func Ratio(out, in value.Vector2D, x float64) float64 {
	return NewCurve(out, in).Ratio(x)
}

// Point evaluates the curve at parameter t.
func (c Curve) Point(t float64) value.Vector2D {
	return value.Vec(c.x(t), c.y(t))
}

// Ratio intersects the curve with the vertical line at time fraction x and
// returns the vertical coordinate of the first intersection. When the curve
// does not cross the line, x itself is returned.
func (c Curve) Ratio(x float64) float64 {
	switch {
	case x == 0:
		return 0
	case x == 1:
		return 1
	}
	t, ok := c.solve(x)
	if !ok {
		return x
	}
	return c.y(t)
}

// solve finds the smallest t in [0, 1] with x(t) == x.
func (c Curve) solve(x float64) (float64, bool) {
	roots := solveCubic(c.ax, c.bx, c.cx, -x)
	sort.Float64s(roots)
	for _, t := range roots {
		if t < -1e-6 || t > 1+1e-6 || !finite(t) {
			continue
		}
		t = c.polish(clamp01(t), x)
		if math.Abs(c.x(t)-x) <= rootTolerance {
			return t, true
		}
	}
	return c.bisect(x)
}

// polish refines a root of x(t) - x with a few Newton steps.
func (c Curve) polish(t, x float64) float64 {
	for i := 0; i < newtonSteps; i++ {
		f := c.x(t) - x
		if math.Abs(f) <= rootTolerance/16 {
			break
		}
		d := c.dx(t)
		if d == 0 || !finite(d) {
			break
		}
		t = clamp01(t - f/d)
	}
	return t
}

// bisect is the fallback when the closed form loses precision. It needs a
// sign change over [0, 1], which exists whenever x lies in [0, 1].
func (c Curve) bisect(x float64) (float64, bool) {
	lo, hi := 0.0, 1.0
	flo, fhi := c.x(lo)-x, c.x(hi)-x
	if !finite(flo) || !finite(fhi) || flo*fhi > 0 {
		return 0, false
	}
	for i := 0; i < bisectSteps; i++ {
		mid := 0.5 * (lo + hi)
		fmid := c.x(mid) - x
		if (fmid <= 0) == (flo <= 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}

func (c Curve) x(t float64) float64 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

func (c Curve) y(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

func (c Curve) dx(t float64) float64 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

func clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}
