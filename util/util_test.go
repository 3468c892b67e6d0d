package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtween/easing"
)

func TestSampleEasing_Linear(t *testing.T) {
	samples := SampleEasing(easing.Linear, 5)
	require.Len(t, samples, 5)
	for i, want := range []float32{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, want, samples[i], 1e-6)
	}
}

func TestSampleEasing_Degenerate(t *testing.T) {
	assert.Equal(t, []float32{0}, SampleEasing(easing.Linear, 1))
	assert.Equal(t, []float32{0}, SampleEasing(easing.Linear, 0))
}

func TestGenerateLut_Symmetric(t *testing.T) {
	lut := GenerateLut(10, easing.InOutQuad)
	require.Len(t, lut, 10)
	for i, j := 0, len(lut)-1; i < j; i, j = i+1, j-1 {
		assert.Equal(t, lut[i], lut[j], "index %d vs %d", i, j)
	}
	assert.Equal(t, 0.0, lut[0])
	assert.Greater(t, lut[4], lut[1])
}

func TestGenerateLut_OddLengthPeaks(t *testing.T) {
	lut := GenerateLut(5, easing.Linear)
	assert.Equal(t, 1.0, lut[2])
	assert.Equal(t, 0.0, lut[0])
	assert.Equal(t, 0.0, lut[4])
}
