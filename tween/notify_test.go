package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotifierKeepsLatest(t *testing.T) {
	n := newNotifier[int]()
	n.publish(1)
	n.publish(2)
	n.publish(3)

	assert.Equal(t, 3, <-n.events())
	_, ok := latest(n.events())
	assert.False(t, ok)
}

func TestNotifierFinish(t *testing.T) {
	n := newNotifier[int]()
	n.once(7)
	n.publish(8)
	n.finish()

	v, ok := <-n.events()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = <-n.events()
	assert.False(t, ok)
}
