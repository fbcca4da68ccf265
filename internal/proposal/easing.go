package proposal

import "math"

// CubicBezier is a CSS-style timing function through (0,0), (X1,Y1), (X2,Y2), (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Ease is cubic-bezier(0.25, 0.1, 0.25, 1).
var Ease = CubicBezier{X1: 0.25, Y1: 0.1, X2: 0.25, Y2: 1}

// At returns eased progress for linear progress t in [0,1].
func (b CubicBezier) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	s := b.solveX(t)
	return bezier(s, b.Y1, b.Y2)
}

// solveX finds the curve parameter whose x equals t. Newton first, bisection
// if the slope flattens out.
func (b CubicBezier) solveX(t float64) float64 {
	const epsilon = 1e-6
	s := t
	for range 8 {
		x := bezier(s, b.X1, b.X2) - t
		if math.Abs(x) < epsilon {
			return s
		}
		d := bezierSlope(s, b.X1, b.X2)
		if math.Abs(d) < epsilon {
			break
		}
		s -= x / d
	}
	lo, hi := 0.0, 1.0
	s = t
	for range 32 {
		x := bezier(s, b.X1, b.X2)
		if math.Abs(x-t) < epsilon {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}
