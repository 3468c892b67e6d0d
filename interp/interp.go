// Package interp provides interpolators and relative-end factories for
// common value types.
package interp

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

// Numeric is the set of built-in number types.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Number interpolates linearly in float64. Integer results are truncated
// toward zero; unsigned results below zero are clamped to zero.
func Number[N Numeric](from, to N, easedProgress float32) N {
	result := float64(from) + (float64(to)-float64(from))*float64(easedProgress)
	var zero, one N = 0, 1
	if zero-one > zero && result < 0 {
		return zero
	}
	return N(result)
}

// Offset is the relative-end factory for numbers: the end value is the start
// value plus by.
func Offset[N Numeric](by N) tween.RelativeFunc[N] {
	return func(from N) N { return from + by }
}

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// PointLinear interpolates both coordinates independently.
func PointLinear(from, to Point, easedProgress float32) Point {
	return Point{
		X: Number(from.X, to.X, easedProgress),
		Y: Number(from.Y, to.Y, easedProgress),
	}
}

// PointOffset is the relative-end factory for points.
func PointOffset(by Point) tween.RelativeFunc[Point] {
	return func(from Point) Point { return Point{X: from.X + by.X, Y: from.Y + by.Y} }
}

// ColorRGB blends colours in linear RGB components.
func ColorRGB(from, to colorful.Color, easedProgress float32) colorful.Color {
	return from.BlendRgb(to, float64(easedProgress))
}

// ColorHCL blends colours in HCL space, taking the shortest hue path.
func ColorHCL(from, to colorful.Color, easedProgress float32) colorful.Color {
	return from.BlendHcl(to, float64(easedProgress))
}

// ColorLab blends colours in CIE L*a*b* space.
func ColorLab(from, to colorful.Color, easedProgress float32) colorful.Color {
	return from.BlendLab(to, float64(easedProgress))
}

// Color returns the colour interpolator for a blend mode name: "rgb", "hcl"
// or "lab". Unknown names fall back to hcl.
func Color(mode string) tween.Interpolator[colorful.Color] {
	switch mode {
	case "rgb":
		return ColorRGB
	case "lab":
		return ColorLab
	default:
		return ColorHCL
	}
}
