package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameMarshalBinary(t *testing.T) {
	f := NewFrame(2)
	f.Fill(0, 1, colorful.Color{R: 1})
	f.Fill(1, 2, colorful.Color{B: 1.5})

	b, err := f.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 0, 0, 255}, b)
}

func TestFrameTooLong(t *testing.T) {
	_, err := NewFrame(70000).MarshalBinary()
	assert.Error(t, err)
}

func TestFrameFillClips(t *testing.T) {
	f := NewFrame(3)
	f.Fill(-2, 10, colorful.Color{G: 1})
	assert.Equal(t, []string{"#00ff00", "#00ff00", "#00ff00"}, f.Hex(0, 1, 2))
}

func TestFramePaint(t *testing.T) {
	f := NewFrame(3)
	f.Paint(1, 3, func(i int) colorful.Color { return colorful.Color{R: float64(i) / 2} })
	assert.Equal(t, []string{"#000000", "#800000", "#ff0000"}, f.Hex(0, 1, 2))
}

func TestFrameClone(t *testing.T) {
	f := NewFrame(1)
	c := f.Clone()
	f.Fill(0, 1, colorful.Color{R: 1})
	assert.Equal(t, "#000000", c.Hex(0)[0])
	assert.Equal(t, 1, c.Len())
}

func TestInterpolateFrame(t *testing.T) {
	red := NewFrame(2)
	red.Fill(0, 2, colorful.Color{R: 1})

	assert.Equal(t, []string{"#ff0000", "#ff0000"}, red.InterpolateFrame(NewFrame(2), 0).Hex(0, 1))
	assert.Equal(t, []string{"#000000", "#000000"}, red.InterpolateFrame(NewFrame(2), 1).Hex(0, 1))
}
