package stream

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	cfg        Config
	publisher  Publisher
	manager    *tween.Manager
	controller *Controller
	scene      *Scene
	logger     *slog.Logger
	now        func() time.Time
}

// NewStreamer creates an instance of a Streamer playing the scene of cfg.
// The scene fades in from the background colour.
func NewStreamer(cfg Config, publisher Publisher, logger *slog.Logger) (*Streamer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	background, err := colorful.Hex(cfg.Scene.Background)
	if err != nil {
		return nil, fmt.Errorf("stream: background: %w", err)
	}

	s := new(Streamer)
	s.cfg = cfg
	s.publisher = publisher
	s.logger = logger
	s.now = time.Now
	s.manager = tween.NewManager(tween.WithManagerLogger(logger))
	s.controller = NewController(NewSolid(cfg.Stream.Pixels, background), cfg.Stream.Transition, s.manager, logger)

	if err := s.startScene(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Streamer) startScene() error {
	scene, err := BuildScene(s.cfg.Scene, s.cfg.Stream.Pixels,
		tween.WithRegistry(s.manager),
		tween.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.scene = scene
	s.logger.Info("scene started", "tracks", len(s.cfg.Scene.Tracks), "duration", scene.Sequence().TotalDuration())
	return s.controller.SetAnimation(scene)
}

// Manager returns the manager driving the scene and transitions.
func (s *Streamer) Manager() *tween.Manager {
	return s.manager
}

// Scene returns the scene currently playing.
func (s *Streamer) Scene() *Scene {
	return s.scene
}

// Step advances every animation by dt seconds and sends one frame. With
// repeat set, a finished scene is rebuilt after its last frame is sent.
func (s *Streamer) Step(dt float64) error {
	s.manager.Tick(dt)

	if err := s.SendFrame(); err != nil {
		return err
	}

	if s.cfg.Stream.Repeat {
		select {
		case <-s.scene.Done():
			return s.startScene()
		default:
		}
	}
	return nil
}

// SendFrame sends the current frame as binary to an ledrx device.
func (s *Streamer) SendFrame() error {
	f := s.controller.CalculateFrame()
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.publisher.Publish(s.cfg.Mqtt.Topic, b)
}

// Run causes the Streamer to send Frames continuously until ctx is done.
// Publish failures are logged and streaming carries on.
func (s *Streamer) Run(ctx context.Context) error {
	interval := time.Duration(float64(time.Second) / s.cfg.Stream.FrameRate)
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			now := s.now()
			dt := now.Sub(last).Seconds()
			last = now
			if err := s.Step(dt); err != nil {
				s.logger.Warn("frame dropped", "error", err)
			}
		}
	}
}
