package stream

import (
	"fmt"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/interp"
	"github.com/matt-g-everett/ledtween/tween"
)

// A Scene is an Animation driven by a sequence of tweens, each painting a
// range of pixels of a shared frame.
type Scene struct {
	mu    sync.Mutex
	frame *Frame
	seq   *tween.Sequence
}

// BuildScene creates the tracks of cfg on a strip of pixels and places them
// on one sequence. opts configure the sequence and every track; pass
// tween.WithRegistry to have the scene driven automatically.
func BuildScene(cfg SceneConfig, pixels int, opts ...tween.Option) (*Scene, error) {
	background, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("stream: background: %w", err)
	}

	sc := new(Scene)
	sc.frame = NewFrame(pixels)
	sc.frame.Fill(0, pixels, background)
	sc.seq = tween.NewSequence(opts...)

	for i, tr := range cfg.Tracks {
		m, err := sc.buildTrack(tr, cfg.Blend, opts)
		if err != nil {
			sc.seq.Stop(false)
			return nil, fmt.Errorf("stream: track %d: %w", i, err)
		}
		if tr.At != nil {
			err = sc.seq.Insert(*tr.At, m)
		} else {
			err = sc.seq.Append(m)
		}
		if err != nil {
			m.Stop(false)
			sc.seq.Stop(false)
			return nil, fmt.Errorf("stream: track %d: %w", i, err)
		}
	}

	return sc, nil
}

func (sc *Scene) buildTrack(tr TrackConfig, blend string, opts []tween.Option) (tween.Member, error) {
	looping, err := tr.Loop.Looping()
	if err != nil {
		return nil, err
	}
	start, end := tr.Pixels[0], tr.Pixels[1]
	trackOpts := append(append([]tween.Option{}, opts...),
		tween.WithEasing(tr.Easing),
		tween.WithLooping(looping))

	switch tr.Kind {
	case TrackFade:
		to, err := colorful.Hex(tr.To)
		if err != nil {
			return nil, err
		}
		travel := tween.To(to, func() colorful.Color { return sc.pixel(start) })
		if tr.From != "" {
			from, err := colorful.Hex(tr.From)
			if err != nil {
				return nil, err
			}
			travel = tween.FromTo(from, to)
		}
		data := travel.Data(interp.Color(blend)).OnApply(func(c colorful.Color) {
			sc.fill(start, end, c)
		})
		tw, err := tween.New(data, tr.Duration, trackOpts...)
		if err != nil {
			return nil, err
		}
		return tw, nil

	case TrackTrail:
		gradient, length := tr.Gradient, tr.Length
		s, l := tr.Saturation, tr.Luminance
		data := tween.FromTo(0.0, 1.0).Data(interp.Number[float64]).OnApply(func(offset float64) {
			sc.paint(start, end, func(i int) colorful.Color {
				return gradient.TrailColor(i-start, length, offset, s, l)
			})
		})
		tw, err := tween.New(data, tr.Duration, trackOpts...)
		if err != nil {
			return nil, err
		}
		return tw, nil

	case TrackTwinkle:
		particles, err := sc.buildTwinkle(tr, blend, opts)
		if err != nil {
			return nil, err
		}
		return particles, nil
	}
	return nil, fmt.Errorf("unknown kind %q", tr.Kind)
}

func (sc *Scene) pixel(i int) colorful.Color {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if i >= sc.frame.Len() {
		return colorful.Color{}
	}
	return sc.frame.Pixel(i)
}

func (sc *Scene) fill(start, end int, c colorful.Color) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.frame.Fill(start, end, c)
}

func (sc *Scene) paint(start, end int, colour func(i int) colorful.Color) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.frame.Paint(start, end, colour)
}

// Sequence returns the timeline of the scene.
func (sc *Scene) Sequence() *tween.Sequence {
	return sc.seq
}

// Update advances a manually driven scene by dt seconds.
func (sc *Scene) Update(dt float64) {
	sc.seq.Update(dt)
}

// Done is closed once the scene timeline stops.
func (sc *Scene) Done() <-chan struct{} {
	return sc.seq.Done()
}

// CalculateFrame returns a copy of the current frame.
func (sc *Scene) CalculateFrame() *Frame {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.frame.Clone()
}
