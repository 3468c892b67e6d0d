package tween

import (
	"log/slog"

	"github.com/matt-g-everett/ledtween/easing"
)

type settings struct {
	easing   easing.Easing
	looping  Looping
	registry Registry
	logger   *slog.Logger
}

// Option configures a Tween or a Sequence.
type Option func(*settings)

func newSettings(opts []Option) settings {
	s := settings{
		easing:  easing.Linear,
		looping: NoLoop(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithEasing sets the easing of a tween. Defaults to easing.Linear.
func WithEasing(e easing.Easing) Option {
	return func(s *settings) { s.easing = e }
}

// WithLooping sets the repetition policy of a tween. Defaults to NoLoop.
func WithLooping(l Looping) Option {
	return func(s *settings) { s.looping = l }
}

// WithRegistry registers the tween or sequence with r so that it is driven
// automatically. Without it the caller drives it through Update.
func WithRegistry(r Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithLogger sets the logger used for lifecycle debug messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
