package util

import (
	"github.com/matt-g-everett/ledtween/easing"
)

// SampleEasing evaluates e at samples evenly spaced progress ratios, from 0
// to 1 inclusive. Fewer than two samples yields just e(0).
func SampleEasing(e easing.Easing, samples int) []float32 {
	if samples < 2 {
		return []float32{e.Apply(0)}
	}
	out := make([]float32, samples)
	step := 1 / float32(samples-1)
	for i := range out {
		out[i] = e.Apply(float32(i) * step)
	}
	out[samples-1] = e.Apply(1)
	return out
}

// GenerateLut builds a symmetric rise-and-fall gain table of length entries
// shaped by e: it climbs from e(0) to e(1) over the first half and mirrors
// back down over the second half.
func GenerateLut(length int, e easing.Easing) []float64 {
	lut := make([]float64, length)
	if length < 2 {
		return lut
	}
	increment := 1.0 / float64(length/2)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(e.Apply(float32(float64(i) * increment)))
		lut[i] = value
		lut[j] = value
	}
	if length%2 == 1 {
		lut[length/2] = float64(e.Apply(1))
	}
	return lut
}
