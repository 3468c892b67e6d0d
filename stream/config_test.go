package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/ledtween/tween"
)

const sampleConfig = `
mqtt:
  url: tcp://broker:1883
  username: tree
  password: secret
stream:
  pixels: 100
  frameRate: 25
  transition: 2
  repeat: true
scene:
  blend: lab
  tracks:
    - kind: fade
      duration: 3
      easing: in-out-sine
      to: "#ff8000"
      pixels: [10, 20]
    - kind: trail
      at: 1.5
      duration: 4
      loop:
        mode: pingPong
        count: 2
    - kind: twinkle
      duration: 2
      to: "#ffffff"
      seed: 7
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "tcp://broker:1883", cfg.Mqtt.URL)
	assert.Equal(t, "ledtween", cfg.Mqtt.ClientID)
	assert.Equal(t, "home/xmastree/stream", cfg.Mqtt.Topic)
	assert.Equal(t, 100, cfg.Stream.Pixels)
	assert.Equal(t, 25.0, cfg.Stream.FrameRate)
	assert.True(t, cfg.Stream.Repeat)
	assert.Equal(t, "#000005", cfg.Scene.Background)
	assert.Equal(t, "lab", cfg.Scene.Blend)
	require.Len(t, cfg.Scene.Tracks, 3)

	fade := cfg.Scene.Tracks[0]
	assert.Equal(t, "in-out-sine", fade.Easing.String())
	assert.Nil(t, fade.At)
	assert.Equal(t, []int{10, 20}, fade.Pixels)

	trail := cfg.Scene.Tracks[1]
	require.NotNil(t, trail.At)
	assert.Equal(t, 1.5, *trail.At)
	assert.Equal(t, []int{0, 100}, trail.Pixels)
	assert.Equal(t, 100, trail.Length)
	assert.Equal(t, DefaultGradient, trail.Gradient)
	assert.Equal(t, 1.0, trail.Saturation)
	assert.Equal(t, 0.05, trail.Luminance)
	looping, err := trail.Loop.Looping()
	require.NoError(t, err)
	assert.Equal(t, tween.PingPong(2), looping)

	twinkle := cfg.Scene.Tracks[2]
	assert.Equal(t, 10, twinkle.Particles)
	assert.Equal(t, int64(7), twinkle.Seed)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Scene.Tracks, 3)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "stream: [",
		"bad background": "scene:\n  background: nope\n",
		"bad blend":      "scene:\n  blend: cmyk\n",
		"bad qos":        "mqtt:\n  qos: 3\n",
		"bad easing":     "scene:\n  tracks:\n    - duration: 1\n      to: \"#fff\"\n      easing: wobbly\n",
		"zero duration":  "scene:\n  tracks:\n    - to: \"#fff\"\n",
		"bad kind":       "scene:\n  tracks:\n    - kind: sparkle\n      duration: 1\n",
		"bad colour":     "scene:\n  tracks:\n    - duration: 1\n      to: red\n",
		"bad loop":       "scene:\n  tracks:\n    - duration: 1\n      to: \"#fff\"\n      loop:\n        mode: sideways\n",
		"bad pixels":     "scene:\n  tracks:\n    - duration: 1\n      to: \"#fff\"\n      pixels: [5, 2]\n",
		"negative at":    "scene:\n  tracks:\n    - duration: 1\n      to: \"#fff\"\n      at: -1\n",
		"looped twinkle": "scene:\n  tracks:\n    - kind: twinkle\n      duration: 1\n      to: \"#fff\"\n      loop:\n        mode: repeat\n        count: 2\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestConfigZeroDurationIsInvalidDuration(t *testing.T) {
	_, err := ParseConfig([]byte("scene:\n  tracks:\n    - to: \"#fff\"\n"))
	assert.ErrorIs(t, err, tween.ErrInvalidDuration)
}
