package stream

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu       sync.Mutex
	topics   []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(topic string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func streamerConfig(t *testing.T, repeat bool) Config {
	t.Helper()
	cfg, err := ParseConfig([]byte(`
stream:
  pixels: 2
scene:
  background: "#000000"
  blend: rgb
  tracks:
    - duration: 1
      to: "#ff0000"
`))
	require.NoError(t, err)
	cfg.Stream.Repeat = repeat
	return cfg
}

func TestStreamerStep(t *testing.T) {
	pub := new(fakePublisher)
	s, err := NewStreamer(streamerConfig(t, false), pub, nil)
	require.NoError(t, err)

	require.NoError(t, s.Step(0.5))
	require.NoError(t, s.Step(0.5))
	require.NoError(t, s.Step(0.5))

	require.Len(t, pub.payloads, 3)
	assert.Equal(t, []byte{2, 0, 128, 0, 0, 128, 0, 0}, pub.payloads[0])
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 255, 0, 0}, pub.payloads[1])
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 255, 0, 0}, pub.payloads[2], "finished scene holds its last frame")
	assert.Equal(t, "home/xmastree/stream", pub.topics[0])
	assert.Equal(t, 0, s.Manager().Len())
}

func TestStreamerRepeatWithTransitionKeepsManagerBounded(t *testing.T) {
	cfg := streamerConfig(t, true)
	cfg.Stream.Transition = 0.5
	s, err := NewStreamer(cfg, new(fakePublisher), nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.Manager().Len(), "scene and transition")

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Step(1))
		assert.Equal(t, 2, s.Manager().Len(), "step %d", i)
	}
}

func TestStreamerRepeat(t *testing.T) {
	pub := new(fakePublisher)
	s, err := NewStreamer(streamerConfig(t, true), pub, nil)
	require.NoError(t, err)
	first := s.Scene()

	require.NoError(t, s.Step(1))
	assert.NotSame(t, first, s.Scene())
	require.NoError(t, s.Step(0.5))

	require.Len(t, pub.payloads, 2)
	assert.Equal(t, []byte{2, 0, 255, 0, 0, 255, 0, 0}, pub.payloads[0])
	assert.Equal(t, []byte{2, 0, 128, 0, 0, 128, 0, 0}, pub.payloads[1])
}

func TestStreamerPublishError(t *testing.T) {
	pub := &fakePublisher{err: errors.New("offline")}
	s, err := NewStreamer(streamerConfig(t, false), pub, nil)
	require.NoError(t, err)
	assert.Error(t, s.Step(0.1))
}

func TestStreamerRun(t *testing.T) {
	cfg := streamerConfig(t, false)
	cfg.Stream.FrameRate = 200
	pub := new(fakePublisher)
	s, err := NewStreamer(cfg, pub, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return pub.count() >= 3 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
