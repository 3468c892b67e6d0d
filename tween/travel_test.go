package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelAccessors(t *testing.T) {
	ft := FromTo(1.0, 2.0)
	assert.Equal(t, TravelFromTo, ft.Kind())
	from, ok := ft.From()
	assert.True(t, ok)
	assert.Equal(t, 1.0, from)
	_, ok = ft.By()
	assert.False(t, ok)

	to := To(5.0, func() float64 { return 0 })
	assert.Equal(t, TravelTo, to.Kind())
	_, ok = to.From()
	assert.False(t, ok)
	end, ok := to.To()
	assert.True(t, ok)
	assert.Equal(t, 5.0, end)

	by := By(3.0, func() float64 { return 0 }, offset)
	assert.Equal(t, TravelBy, by.Kind())
	_, ok = by.To()
	assert.False(t, ok)
	step, ok := by.By()
	assert.True(t, ok)
	assert.Equal(t, 3.0, step)
}

func TestTravelData(t *testing.T) {
	d := By(3.0, func() float64 { return 4 }, offset).Data(lerp)
	from := d.resolveFrom()
	assert.Equal(t, 4.0, from)
	assert.Equal(t, 7.0, d.EndFor(from))
	assert.Equal(t, 5.5, d.Interpolate(from, d.EndFor(from), 0.5))

	d = FromTo(1.0, 3.0).Data(lerp)
	assert.Equal(t, 1.0, d.resolveFrom())
	assert.Equal(t, 3.0, d.EndFor(100))
}

func TestTarget(t *testing.T) {
	read := func() float64 { return 10 }

	assert.Equal(t, TravelFromTo, TargetFromTo(0.0, 1.0).Travel(read, offset).Kind())

	to := TargetTo(4.0).Travel(read, offset).Data(lerp)
	assert.Equal(t, 10.0, to.resolveFrom())
	assert.Equal(t, 4.0, to.EndFor(10))

	by := TargetBy(2.0)
	assert.Equal(t, TravelBy, by.Kind())
	d := by.Travel(read, offset).Data(lerp)
	assert.Equal(t, 12.0, d.EndFor(d.resolveFrom()))
}
