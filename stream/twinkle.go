package stream

import (
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/interp"
	"github.com/matt-g-everett/ledtween/tween"
)

// buildTwinkle creates a nested sequence of particles that each flash a
// distinct random pixel of [start, end) to the track colour and back. Every
// particle lasts half the track and starts somewhere in its first half.
func (sc *Scene) buildTwinkle(tr TrackConfig, blend string, opts []tween.Option) (*tween.Sequence, error) {
	colour, err := colorful.Hex(tr.To)
	if err != nil {
		return nil, err
	}

	seed := tr.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	particles := tween.NewSequence(opts...)
	start, end := tr.Pixels[0], tr.Pixels[1]
	half := tr.Duration / 2
	perm := rng.Perm(end - start)
	for i := 0; i < tr.Particles && i < len(perm); i++ {
		pixel := start + perm[i]
		at := rng.Float64() * half

		data := tween.To(colour, func() colorful.Color { return sc.pixel(pixel) }).
			Data(interp.Color(blend)).
			OnApply(func(c colorful.Color) { sc.fill(pixel, pixel+1, c) })
		p, err := tween.New(data, half/2,
			append(append([]tween.Option{}, opts...),
				tween.WithEasing(tr.Easing),
				tween.WithLooping(tween.PingPong(2)))...)
		if err != nil {
			particles.Stop(false)
			return nil, err
		}
		if err := particles.Insert(at, p); err != nil {
			p.Stop(false)
			particles.Stop(false)
			return nil, err
		}
	}
	return particles, nil
}
