package easing

import "math"

// Real-root solvers for the polynomials that describe an ease curve.
// The cubic solver follows Blinn's "How to Solve a Cubic Equation" in the
// form popularized by kurbo.

// solveCubic returns the real roots of a*t^3 + b*t^2 + c*t + d = 0,
// unsorted. A vanishing leading coefficient degrades to the quadratic.
func solveCubic(a, b, c, d float64) []float64 {
	const third = 1.0 / 3.0
	inv := 1 / a
	c2 := b * third * inv
	c1 := c * third * inv
	c0 := d * inv
	if !finite(c2) || !finite(c1) || !finite(c0) {
		return solveQuadratic(b, c, d)
	}

	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	de := -2*c2*d0 + d1

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		return []float64{math.Cbrt(r+sq) + math.Cbrt(r-sq) - c2}
	case disc == 0:
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return []float64{t1 - c2, -2*t1 - c2}
	}

	th := math.Atan2(math.Sqrt(disc), -de) * third
	sin, cos := math.Sincos(th)
	ss3 := sin * math.Sqrt(3)
	m := 2 * math.Sqrt(-d0)
	return []float64{
		m*cos - c2,
		m*0.5*(-cos+ss3) - c2,
		m*0.5*(-cos-ss3) - c2,
	}
}

// solveQuadratic returns the real roots of a*t^2 + b*t + c = 0.
func solveQuadratic(a, b, c float64) []float64 {
	s0 := c / a
	s1 := b / a
	if !finite(s0) || !finite(s1) {
		root := -c / b
		if finite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := s1*s1 - 4*s0
	switch {
	case !finite(arg):
		r := -s1
		return []float64{r, s0 / r}
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * s1}
	}
	// numerically stable pair, avoids cancellation
	r := -0.5 * (s1 + math.Copysign(math.Sqrt(arg), s1))
	return []float64{r, s0 / r}
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
