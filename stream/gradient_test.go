package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestGradientGetColor(t *testing.T) {
	g := GradientTable{{Hue: 0, Pos: 0}, {Hue: 100, Pos: 0.5}, {Hue: 200, Pos: 1}}

	assert.Equal(t, colorful.Hcl(0, 1, 0.5), g.GetColor(0, 1, 0.5))
	assert.Equal(t, colorful.Hcl(50, 1, 0.5), g.GetColor(0.25, 1, 0.5))
	assert.Equal(t, colorful.Hcl(150, 1, 0.5), g.GetColor(0.75, 1, 0.5))
	assert.Equal(t, colorful.Hcl(200, 1, 0.5), g.GetColor(2, 1, 0.5))
}

func TestGradientValidate(t *testing.T) {
	assert.NoError(t, DefaultGradient.Validate())
	assert.Error(t, GradientTable{{Hue: 0, Pos: 0}}.Validate())
	assert.Error(t, GradientTable{{Hue: 0, Pos: 1}, {Hue: 10, Pos: 0}}.Validate())
}

func TestTrailColorWraps(t *testing.T) {
	g := GradientTable{{Hue: 0, Pos: 0}, {Hue: 360, Pos: 1}}

	assert.Equal(t, g.GetColor(0.5, 1, 0.5), g.TrailColor(2, 4, 0, 1, 0.5))
	assert.Equal(t, g.GetColor(0.75, 1, 0.5), g.TrailColor(0, 4, 0.25, 1, 0.5))
}
