// Package easing maps a linear progress ratio to an eased progress ratio.
//
// Easing functions are pure and are not required to keep their output in
// [0, 1]: back and elastic curves overshoot on purpose. Callers that need a
// bounded value must clamp it themselves.
package easing

import (
	"errors"

	"github.com/fogleman/ease"
)

var (
	// ErrTooFewSteps is returned when building a steps easing with less than one step.
	ErrTooFewSteps = errors.New("too few steps")

	// ErrUnknownEasing is returned when decoding a name that matches no easing.
	ErrUnknownEasing = errors.New("unknown easing")

	// ErrEncodingCustom is returned when encoding an easing built with Custom.
	ErrEncodingCustom = errors.New("custom easing cannot be encoded")
)

// Func evaluates an easing for a progress ratio.
type Func func(progress float32) float32

type kind int

const (
	kindNamed kind = iota
	kindSteps
	kindBezier
	kindCustom
)

// Easing describes a time-to-progress remapping. The zero value is Linear.
type Easing struct {
	kind   kind
	name   string
	fn     func(float64) float64
	steps  uint
	jump   JumpType
	bezier *cubicBezier
	custom Func
}

func named(name string, fn func(float64) float64) Easing {
	return Easing{kind: kindNamed, name: name, fn: fn}
}

// The named easing families.
var (
	Linear = named("linear", ease.Linear)

	InQuad    = named("in-quad", ease.InQuad)
	OutQuad   = named("out-quad", ease.OutQuad)
	InOutQuad = named("in-out-quad", ease.InOutQuad)

	InCubic    = named("in-cubic", ease.InCubic)
	OutCubic   = named("out-cubic", ease.OutCubic)
	InOutCubic = named("in-out-cubic", ease.InOutCubic)

	InQuart    = named("in-quart", ease.InQuart)
	OutQuart   = named("out-quart", ease.OutQuart)
	InOutQuart = named("in-out-quart", ease.InOutQuart)

	InQuint    = named("in-quint", ease.InQuint)
	OutQuint   = named("out-quint", ease.OutQuint)
	InOutQuint = named("in-out-quint", ease.InOutQuint)

	InSine    = named("in-sine", ease.InSine)
	OutSine   = named("out-sine", ease.OutSine)
	InOutSine = named("in-out-sine", ease.InOutSine)

	InExpo    = named("in-expo", ease.InExpo)
	OutExpo   = named("out-expo", ease.OutExpo)
	InOutExpo = named("in-out-expo", ease.InOutExpo)

	InCirc    = named("in-circ", ease.InCirc)
	OutCirc   = named("out-circ", ease.OutCirc)
	InOutCirc = named("in-out-circ", ease.InOutCirc)

	InBack    = named("in-back", ease.InBack)
	OutBack   = named("out-back", ease.OutBack)
	InOutBack = named("in-out-back", ease.InOutBack)

	InElastic    = named("in-elastic", ease.InElastic)
	OutElastic   = named("out-elastic", ease.OutElastic)
	InOutElastic = named("in-out-elastic", ease.InOutElastic)

	InBounce    = named("in-bounce", ease.InBounce)
	OutBounce   = named("out-bounce", ease.OutBounce)
	InOutBounce = named("in-out-bounce", ease.InOutBounce)
)

// All lists every named easing, in declaration order.
var All = []Easing{
	Linear,
	InQuad, OutQuad, InOutQuad,
	InCubic, OutCubic, InOutCubic,
	InQuart, OutQuart, InOutQuart,
	InQuint, OutQuint, InOutQuint,
	InSine, OutSine, InOutSine,
	InExpo, OutExpo, InOutExpo,
	InCirc, OutCirc, InOutCirc,
	InBack, OutBack, InOutBack,
	InElastic, OutElastic, InOutElastic,
	InBounce, OutBounce, InOutBounce,
}

// Custom wraps an arbitrary function. Custom easings work everywhere except
// MarshalText, which fails with ErrEncodingCustom.
func Custom(name string, fn Func) Easing {
	return Easing{kind: kindCustom, name: name, custom: fn}
}

// Apply evaluates the easing at progress.
func (e Easing) Apply(progress float32) float32 {
	switch e.kind {
	case kindSteps:
		return evaluateSteps(e.steps, e.jump, progress)
	case kindBezier:
		return e.bezier.evaluate(progress)
	case kindCustom:
		return e.custom(progress)
	}
	if e.fn == nil {
		return progress
	}
	return float32(e.fn(float64(progress)))
}

// Func returns Apply as a standalone function.
func (e Easing) Func() Func {
	return e.Apply
}

// IsCustom reports whether the easing was built with Custom.
func (e Easing) IsCustom() bool {
	return e.kind == kindCustom
}

// String returns the canonical name of the easing, as accepted by Parse.
func (e Easing) String() string {
	switch e.kind {
	case kindSteps:
		return stepsName(e.steps, e.jump)
	case kindBezier:
		return e.bezier.name()
	}
	if e.name == "" {
		return Linear.name
	}
	return e.name
}
