package tween

// Interpolator produces the value at easedProgress between from and to.
// easedProgress is not clamped: back and elastic easings leave [0, 1].
type Interpolator[T any] func(from, to T, easedProgress float32) T

// DeferredFunc recovers a start value when the tween actually starts. It may
// block, for example to read the current value of the object being animated.
type DeferredFunc[T any] func() T

// RelativeFunc computes the end value from the resolved start value.
type RelativeFunc[T any] func(from T) T

// RelativeFactory builds the RelativeFunc for a "by" offset.
type RelativeFactory[T any] func(by T) RelativeFunc[T]

// Data is the resolved form of a Travel: how to obtain the start value, how
// to derive the end value from it, and how to interpolate between them.
type Data[T any] struct {
	deferredFrom DeferredFunc[T]
	to           RelativeFunc[T]
	interpolator Interpolator[T]
	hook         func(T)
}

// NewData builds Data from its three functions.
func NewData[T any](deferredFrom DeferredFunc[T], to RelativeFunc[T], interpolator Interpolator[T]) Data[T] {
	return Data[T]{deferredFrom: deferredFrom, to: to, interpolator: interpolator}
}

// EndFor returns the end value for a given start value.
func (d Data[T]) EndFor(from T) T {
	return d.to(from)
}

// Interpolate applies the interpolator.
func (d Data[T]) Interpolate(from, to T, easedProgress float32) T {
	return d.interpolator(from, to, easedProgress)
}

// OnApply returns a copy of d that also hands every value the tween produces
// to fn, in the same call that produced it. fn runs while the tween is
// locked and must not call back into it.
func (d Data[T]) OnApply(fn func(T)) Data[T] {
	d.hook = fn
	return d
}

func (d Data[T]) resolveFrom() T {
	return d.deferredFrom()
}

func (d Data[T]) apply(from T, easedProgress float32) T {
	return d.interpolator(from, d.to(from), easedProgress)
}

// TravelKind identifies the Travel variant.
type TravelKind int

const (
	// TravelFromTo uses absolute start and end values.
	TravelFromTo TravelKind = iota
	// TravelTo uses an absolute end value and a deferred start value.
	TravelTo
	// TravelBy computes the end value relative to a deferred start value.
	TravelBy
)

// Travel describes how a tween resolves its start and end values.
type Travel[T any] struct {
	kind         TravelKind
	from, to, by T
	deferredFrom DeferredFunc[T]
	relative     RelativeFactory[T]
}

// FromTo travels between two known values.
func FromTo[T any](from, to T) Travel[T] {
	return Travel[T]{kind: TravelFromTo, from: from, to: to}
}

// To travels to a known value from whatever deferredFrom returns when the
// tween starts.
func To[T any](to T, deferredFrom DeferredFunc[T]) Travel[T] {
	return Travel[T]{kind: TravelTo, to: to, deferredFrom: deferredFrom}
}

// By travels from whatever deferredFrom returns when the tween starts to
// relative(by) applied to that start value.
func By[T any](by T, deferredFrom DeferredFunc[T], relative RelativeFactory[T]) Travel[T] {
	return Travel[T]{kind: TravelBy, by: by, deferredFrom: deferredFrom, relative: relative}
}

// Kind returns the Travel variant.
func (tr Travel[T]) Kind() TravelKind { return tr.kind }

// From returns the absolute start value of a TravelFromTo travel.
func (tr Travel[T]) From() (T, bool) {
	return tr.from, tr.kind == TravelFromTo
}

// To returns the absolute end value of a TravelFromTo or TravelTo travel.
func (tr Travel[T]) To() (T, bool) {
	return tr.to, tr.kind != TravelBy
}

// By returns the offset of a TravelBy travel.
func (tr Travel[T]) By() (T, bool) {
	return tr.by, tr.kind == TravelBy
}

// Data resolves the travel into tween Data using interpolator.
func (tr Travel[T]) Data(interpolator Interpolator[T]) Data[T] {
	switch tr.kind {
	case TravelTo:
		to := tr.to
		return NewData(tr.deferredFrom, func(T) T { return to }, interpolator)
	case TravelBy:
		return NewData(tr.deferredFrom, tr.relative(tr.by), interpolator)
	default:
		from, to := tr.from, tr.to
		return NewData(func() T { return from }, func(T) T { return to }, interpolator)
	}
}

// Target is a Travel without accessors, for hosts that know how to read the
// animated value themselves.
type Target[T any] struct {
	kind         TravelKind
	from, to, by T
}

// TargetFromTo targets two known values.
func TargetFromTo[T any](from, to T) Target[T] {
	return Target[T]{kind: TravelFromTo, from: from, to: to}
}

// TargetTo targets an absolute end value.
func TargetTo[T any](to T) Target[T] {
	return Target[T]{kind: TravelTo, to: to}
}

// TargetBy targets an offset from the start value.
func TargetBy[T any](by T) Target[T] {
	return Target[T]{kind: TravelBy, by: by}
}

// Kind returns the Target variant.
func (tg Target[T]) Kind() TravelKind { return tg.kind }

// Travel binds the host accessors to build a full Travel.
func (tg Target[T]) Travel(deferredFrom DeferredFunc[T], relative RelativeFactory[T]) Travel[T] {
	switch tg.kind {
	case TravelTo:
		return To(tg.to, deferredFrom)
	case TravelBy:
		return By(tg.by, deferredFrom, relative)
	default:
		return FromTo(tg.from, tg.to)
	}
}
