package tween

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	id    uuid.UUID
	order *[]string
	name  string
}

func (r *recorder) ID() uuid.UUID { return r.id }

func (r *recorder) Update(float64) { *r.order = append(*r.order, r.name) }

func TestManagerRegister(t *testing.T) {
	m := NewManager()
	var order []string
	a := &recorder{id: uuid.New(), order: &order, name: "a"}
	b := &recorder{id: uuid.New(), order: &order, name: "b"}

	m.Register(a)
	m.Register(b)
	m.Register(a)
	assert.Equal(t, 2, m.Len())

	m.Tick(0.1)
	assert.Equal(t, []string{"a", "b"}, order)

	m.Unregister(a)
	m.Unregister(a)
	assert.Equal(t, 1, m.Len())

	order = nil
	m.Tick(0.1)
	assert.Equal(t, []string{"b"}, order)
}

func TestManagerDrivesTweens(t *testing.T) {
	m := NewManager()
	tw := newFloat(t, FromTo(0.0, 10.0), 1, WithRegistry(m))
	assert.Equal(t, 1, m.Len())

	m.Tick(0.5)
	v, _ := tw.Value()
	assert.InDelta(t, 5, v, 1e-4)

	m.Tick(0.5)
	assert.True(t, tw.IsComplete())
	assert.Equal(t, 0, m.Len(), "completed tweens unregister themselves")
}

func TestManagerStopUnregisters(t *testing.T) {
	m := NewManager()
	tw := newFloat(t, FromTo(0.0, 10.0), 1, WithRegistry(m))
	tw.Stop(false)
	assert.Equal(t, 0, m.Len())
}

func TestManualTweensAreNotRegistered(t *testing.T) {
	m := NewManager()
	newFloat(t, FromTo(0.0, 10.0), 1)
	assert.Equal(t, 0, m.Len())
}

func TestInsertRevokesRegistration(t *testing.T) {
	m := NewManager()
	tw := newFloat(t, FromTo(0.0, 10.0), 1, WithRegistry(m))
	seq := NewSequence(WithRegistry(m))
	assert.Equal(t, 2, m.Len())

	require.NoError(t, seq.Append(tw))
	assert.Equal(t, 1, m.Len())

	m.Tick(0.25)
	assert.Equal(t, 0.25, tw.ElapsedTime(), "driven once, through the sequence")

	m.Tick(1)
	assert.True(t, seq.IsComplete())
	assert.Equal(t, 0, m.Len())
}

func TestManagerRun(t *testing.T) {
	m := NewManager()
	tw := newFloat(t, FromTo(0.0, 1.0), 0.02, WithRegistry(m))

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- m.Run(ctx, time.Millisecond) }()

	wait, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	assert.True(t, tw.WaitForCompletion(wait))

	cancel()
	assert.True(t, errors.Is(<-errs, context.Canceled))
}

func TestManagerRunUsesClock(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	m := NewManager(WithClock(clock))
	tw := newFloat(t, FromTo(0.0, 1.0), 1, WithRegistry(m))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = m.Run(ctx, time.Millisecond) }()

	wait, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	assert.True(t, tw.WaitForCompletion(wait), "one simulated second per tick")
}
