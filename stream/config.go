package stream

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledtween/easing"
	"github.com/matt-g-everett/ledtween/tween"
)

// Config is the YAML configuration of the streamer.
type Config struct {
	Mqtt   MqttConfig   `yaml:"mqtt"`
	Stream StreamConfig `yaml:"stream"`
	Scene  SceneConfig  `yaml:"scene"`
}

// MqttConfig holds the broker connection and the frame topic.
type MqttConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientId"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// StreamConfig sets the strip size and frame pacing.
type StreamConfig struct {
	Pixels     int     `yaml:"pixels"`
	FrameRate  float64 `yaml:"frameRate"`
	Transition float64 `yaml:"transition"`
	Repeat     bool    `yaml:"repeat"`
}

// SceneConfig describes the animation played on the strip.
type SceneConfig struct {
	Background string        `yaml:"background"`
	Blend      string        `yaml:"blend"`
	Tracks     []TrackConfig `yaml:"tracks"`
}

// Track kinds.
const (
	TrackFade    = "fade"
	TrackTrail   = "trail"
	TrackTwinkle = "twinkle"
)

// TrackConfig is one tween of a scene. At places it on the scene timeline;
// when omitted the track is appended after everything before it.
type TrackConfig struct {
	Kind     string        `yaml:"kind"`
	At       *float64      `yaml:"at"`
	Duration float64       `yaml:"duration"`
	Easing   easing.Easing `yaml:"easing"`
	Loop     LoopConfig    `yaml:"loop"`
	Pixels   []int         `yaml:"pixels"`

	// Fade and twinkle tracks.
	From string `yaml:"from"`
	To   string `yaml:"to"`

	// Twinkle tracks. Seed 0 picks a time-based seed.
	Particles int   `yaml:"particles"`
	Seed      int64 `yaml:"seed"`

	// Trail tracks.
	Gradient   GradientTable `yaml:"gradient"`
	Length     int           `yaml:"length"`
	Saturation float64       `yaml:"saturation"`
	Luminance  float64       `yaml:"luminance"`
}

// LoopConfig is the YAML form of tween.Looping.
type LoopConfig struct {
	Mode  string `yaml:"mode"`
	Count uint   `yaml:"count"`
}

// Looping converts the config into a tween.Looping.
func (l LoopConfig) Looping() (tween.Looping, error) {
	mode, err := tween.ParseLoopMode(l.Mode)
	if err != nil {
		return tween.Looping{}, err
	}
	return tween.Looping{Mode: mode, Count: l.Count}, nil
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("stream: open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("stream: decode config %s: %w", path, err)
	}
	return cfg.finish()
}

// ParseConfig decodes and validates YAML config data.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("stream: decode config: %w", err)
	}
	return cfg.finish()
}

func (c Config) finish() (Config, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtween"
	}
	if c.Mqtt.Topic == "" {
		c.Mqtt.Topic = "home/xmastree/stream"
	}
	if c.Stream.Pixels == 0 {
		c.Stream.Pixels = DefaultPixels
	}
	if c.Stream.FrameRate == 0 {
		c.Stream.FrameRate = 30
	}
	if c.Scene.Background == "" {
		c.Scene.Background = "#000005"
	}
	if c.Scene.Blend == "" {
		c.Scene.Blend = "hcl"
	}
	for i := range c.Scene.Tracks {
		tr := &c.Scene.Tracks[i]
		if tr.Kind == "" {
			tr.Kind = TrackFade
		}
		if len(tr.Pixels) == 0 {
			tr.Pixels = []int{0, c.Stream.Pixels}
		}
		if tr.Kind == TrackTrail {
			if len(tr.Gradient) == 0 {
				tr.Gradient = DefaultGradient
			}
			if tr.Length == 0 {
				tr.Length = tr.Pixels[len(tr.Pixels)-1] - tr.Pixels[0]
			}
			if tr.Saturation == 0 {
				tr.Saturation = 1.0
			}
			if tr.Luminance == 0 {
				tr.Luminance = 0.05
			}
		}
		if tr.Kind == TrackTwinkle && tr.Particles == 0 {
			tr.Particles = (tr.Pixels[len(tr.Pixels)-1] - tr.Pixels[0]) / 10
			if tr.Particles < 1 {
				tr.Particles = 1
			}
		}
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Stream.Pixels < 0 || c.Stream.Pixels > 0xFFFF {
		return fmt.Errorf("stream: pixels %d out of range", c.Stream.Pixels)
	}
	if c.Stream.FrameRate < 0 {
		return fmt.Errorf("stream: negative frame rate %v", c.Stream.FrameRate)
	}
	if c.Stream.Transition < 0 {
		return fmt.Errorf("stream: negative transition %v", c.Stream.Transition)
	}
	if c.Mqtt.QoS > 2 {
		return fmt.Errorf("stream: qos %d out of range", c.Mqtt.QoS)
	}
	if _, err := colorful.Hex(c.Scene.Background); err != nil {
		return fmt.Errorf("stream: background: %w", err)
	}
	switch c.Scene.Blend {
	case "rgb", "hcl", "lab":
	default:
		return fmt.Errorf("stream: unknown blend %q", c.Scene.Blend)
	}
	for i, tr := range c.Scene.Tracks {
		if err := tr.validate(); err != nil {
			return fmt.Errorf("stream: track %d: %w", i, err)
		}
	}
	return nil
}

func (tr TrackConfig) validate() error {
	if tr.Duration <= 0 {
		return tween.ErrInvalidDuration
	}
	if tr.At != nil && *tr.At < 0 {
		return fmt.Errorf("negative start %v", *tr.At)
	}
	if len(tr.Pixels) != 2 || tr.Pixels[0] < 0 || tr.Pixels[1] < tr.Pixels[0] {
		return fmt.Errorf("pixels must be [start, end], got %v", tr.Pixels)
	}
	if _, err := tr.Loop.Looping(); err != nil {
		return err
	}

	switch tr.Kind {
	case TrackFade:
		if _, err := colorful.Hex(tr.To); err != nil {
			return fmt.Errorf("to: %w", err)
		}
		if tr.From != "" {
			if _, err := colorful.Hex(tr.From); err != nil {
				return fmt.Errorf("from: %w", err)
			}
		}
	case TrackTwinkle:
		if _, err := colorful.Hex(tr.To); err != nil {
			return fmt.Errorf("to: %w", err)
		}
		if tr.Loop.Mode != "" && tr.Loop.Mode != "none" {
			return errors.New("twinkle tracks cannot loop")
		}
		if tr.Particles < 0 {
			return fmt.Errorf("negative particle count %d", tr.Particles)
		}
	case TrackTrail:
		if tr.Length <= 0 {
			return errors.New("trail length must be positive")
		}
		if err := tr.Gradient.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown kind %q", tr.Kind)
	}
	return nil
}
