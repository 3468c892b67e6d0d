package stream

import (
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientStop is one key point of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// GradientTable stores a look-up table of colours interpolated by hue.
type GradientTable []GradientStop

// DefaultGradient is the rainbow used by trail tracks without a gradient.
var DefaultGradient = GradientTable{
	{0.0, 0.0},
	{6.0, 0.04},   // Pink
	{87.0, 0.14},  // Red
	{88.0, 0.28},  // Orange
	{98.0, 0.42},  // Yellow
	{180.0, 0.56}, // Green
	{190.0, 0.70}, // Turquiose
	{320.0, 0.84}, // Blue
	{328.0, 0.91}, // Violet
	{360.0, 1.0},  // Pink wrap
}

// Validate checks that the table has at least two stops in increasing position order.
func (g GradientTable) Validate() error {
	if len(g) < 2 {
		return errors.New("gradient needs at least two stops")
	}
	for i := 1; i < len(g); i++ {
		if g[i].Pos < g[i-1].Pos {
			return errors.New("gradient stops must be sorted by position")
		}
	}
	return nil
}

// GetColor gets a colour at the specified point on the look-up table.
func (g GradientTable) GetColor(t, s, l float64) colorful.Color {
	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			if c2.Pos == c1.Pos {
				return colorful.Hcl(c1.Hue, s, l)
			}
			// We are in between c1 and c2. Go blend them!
			h := (((t - c1.Pos) / (c2.Pos - c1.Pos)) * (c2.Hue - c1.Hue)) + c1.Hue
			return colorful.Hcl(h, s, l)
		}
	}

	// Nothing found? Means we're at (or past) the last gradient keypoint.
	return colorful.Hcl(g[len(g)-1].Hue, s, l)
}

// TrailColor returns the colour of pixel i of a trail of trailLength pixels
// shifted by offset, a fraction of the trail length.
func (g GradientTable) TrailColor(i, trailLength int, offset, s, l float64) colorful.Color {
	length := float64(trailLength)
	t := math.Mod(float64(i)-offset*length, length) / length
	if t < 0 {
		t++
	}
	return g.GetColor(t, s, l)
}
