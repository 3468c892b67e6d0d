package easing

import (
	"math"
	"strconv"
)

const (
	bezierEpsilon       = 1e-6
	bezierNewtonRounds  = 8
	bezierBisectRounds  = 64
	bezierMinDerivative = 1e-6
)

// Point is a 2D control point of a cubic bezier easing.
type Point struct {
	X, Y float64
}

// cubicBezier is the curve from (0, 0) to (1, 1) through c1 and c2, with the
// polynomial coefficients precomputed for both axes.
type cubicBezier struct {
	c1, c2     Point
	ax, bx, cx float64
	ay, by, cy float64
}

// CubicBezier builds an easing following the CSS cubic-bezier() curve with
// control points c1 and c2. The x coordinates are conventionally in [0, 1]
// but are not clamped.
func CubicBezier(c1, c2 Point) Easing {
	b := &cubicBezier{c1: c1, c2: c2}
	b.cx = 3 * c1.X
	b.bx = 3*(c2.X-c1.X) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * c1.Y
	b.by = 3*(c2.Y-c1.Y) - b.cy
	b.ay = 1 - b.cy - b.by
	return Easing{kind: kindBezier, bezier: b}
}

func (b *cubicBezier) x(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

func (b *cubicBezier) y(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b *cubicBezier) dx(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

// solve finds the curve parameter whose x coordinate equals x.
func (b *cubicBezier) solve(x float64) float64 {
	t := x
	for i := 0; i < bezierNewtonRounds; i++ {
		err := b.x(t) - x
		if math.Abs(err) < bezierEpsilon {
			return t
		}
		d := b.dx(t)
		if math.Abs(d) < bezierMinDerivative {
			break
		}
		t -= err / d
	}

	// Newton did not converge: bisect over the parameter range.
	lo, hi := 0.0, 1.0
	if x < 0 {
		return lo
	}
	if x > 1 {
		return hi
	}
	t = x
	for i := 0; i < bezierBisectRounds; i++ {
		v := b.x(t)
		if math.Abs(v-x) < bezierEpsilon {
			break
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

func (b *cubicBezier) evaluate(progress float32) float32 {
	return float32(b.y(b.solve(float64(progress))))
}

func (b *cubicBezier) name() string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return "cubic-bezier(" + f(b.c1.X) + ", " + f(b.c1.Y) + ", " + f(b.c2.X) + ", " + f(b.c2.Y) + ")"
}
