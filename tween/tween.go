package tween

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/matt-g-everett/ledtween/easing"
)

// Tween interpolates a value of type T over time.
//
// A Tween is safe for concurrent use: Update, Stop and the queries are
// serialized by a per-instance mutex. Hooks installed with Data.OnApply run while
// that mutex is held and must not call back into the same Tween.
type Tween[T any] struct {
	mu sync.Mutex

	id       uuid.UUID
	data     Data[T]
	duration float64
	easing   easing.Easing
	looping  Looping
	registry Registry
	owner    *Sequence
	logger   *slog.Logger
	hook     func(T)
	step     func(dt float64)

	elapsed  float64
	loop     uint
	running  bool
	complete bool
	started  bool

	from         T
	fromResolved bool
	value        T
	hasValue     bool

	onStart      *notifier[struct{}]
	onUpdate     *notifier[T]
	onLoop       *notifier[uint]
	onCompletion *notifier[struct{}]
	done         chan struct{}
}

// New creates a tween lasting duration seconds per loop. Unless WithRegistry
// is given the tween is driven manually through Update.
func New[T any](data Data[T], duration float64, opts ...Option) (*Tween[T], error) {
	if !(duration > 0) {
		return nil, fmt.Errorf("tween: %w: %v", ErrInvalidDuration, duration)
	}
	s := newSettings(opts)

	t := new(Tween[T])
	t.id = uuid.New()
	t.data = data
	t.duration = duration
	t.easing = s.easing
	t.looping = s.looping
	t.logger = s.logger
	t.loop = 1
	t.running = true

	t.hook = data.hook

	switch {
	case t.looping.Mode == LoopPingPong && t.looping.IsLooping():
		t.step = t.pingPongStep
	case t.looping.IsLooping():
		t.step = t.loopingStep
	default:
		t.step = t.singleLoopStep
	}

	t.onStart = newNotifier[struct{}]()
	t.onUpdate = newNotifier[T]()
	t.onLoop = newNotifier[uint]()
	t.onCompletion = newNotifier[struct{}]()
	t.done = make(chan struct{})

	if s.registry != nil {
		t.registry = s.registry
		t.registry.Register(t)
	}
	return t, nil
}

// NewTravel creates a tween from a Travel and an interpolator.
func NewTravel[T any](travel Travel[T], interpolator Interpolator[T], duration float64, opts ...Option) (*Tween[T], error) {
	return New(travel.Data(interpolator), duration, opts...)
}

// ID identifies the tween in registries and logs.
func (t *Tween[T]) ID() uuid.UUID { return t.id }

// Duration is the length of one loop in seconds.
func (t *Tween[T]) Duration() float64 { return t.duration }

// Easing returns the easing applied to the progress ratio.
func (t *Tween[T]) Easing() easing.Easing { return t.easing }

// Looping returns the repetition policy.
func (t *Tween[T]) Looping() Looping { return t.looping }

// LoopCount is the number of executions, 0 meaning infinite.
func (t *Tween[T]) LoopCount() uint { return t.looping.LoopCount() }

// Data returns the start/end resolution and interpolation of the tween.
func (t *Tween[T]) Data() Data[T] { return t.data }

// IsRunning reports whether the tween still accepts updates.
func (t *Tween[T]) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

// IsComplete reports whether the tween reached its end, naturally or through Stop(true).
func (t *Tween[T]) IsComplete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.complete
}

// ElapsedTime is the time elapsed inside the current loop.
func (t *Tween[T]) ElapsedTime() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// CurrentLoop is the 1-based number of the loop in progress.
func (t *Tween[T]) CurrentLoop() uint {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loop
}

// Value returns the last value produced, if any.
func (t *Tween[T]) Value() (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value, t.hasValue
}

// StartValue returns the resolved start value. ok is false until the tween has started.
func (t *Tween[T]) StartValue() (from T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.from, t.fromResolved
}

// OnStart receives one value when the tween starts, then closes.
func (t *Tween[T]) OnStart() <-chan struct{} { return t.onStart.events() }

// OnUpdate receives the values produced by the tween. Only the most recent
// unconsumed value is kept. The channel closes when the tween stops.
func (t *Tween[T]) OnUpdate() <-chan T { return t.onUpdate.events() }

// OnLoopCompletion receives the number of each loop that completes, except
// the last one, which ends with OnCompletion instead.
func (t *Tween[T]) OnLoopCompletion() <-chan uint { return t.onLoop.events() }

// OnCompletion receives one value if the tween completes, then closes. A
// closed channel without a value means the tween was stopped early.
func (t *Tween[T]) OnCompletion() <-chan struct{} { return t.onCompletion.events() }

// Done is closed once the tween stops, whether it completed or not.
func (t *Tween[T]) Done() <-chan struct{} { return t.done }

// WaitForCompletion blocks until the tween stops and reports whether it
// completed. It returns false if ctx ends first.
func (t *Tween[T]) WaitForCompletion(ctx context.Context) bool {
	select {
	case <-t.done:
		return t.IsComplete()
	case <-ctx.Done():
		return false
	}
}

// Update advances the tween by dt seconds. Non-positive or infinite deltas
// and updates after the tween stopped are ignored.
func (t *Tween[T]) Update(dt float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running || t.complete || !(dt > 0) || math.IsInf(dt, 1) {
		return
	}

	if !t.started {
		t.resolveFrom()
		t.started = true
		t.onStart.once(struct{}{})
		t.logger.Debug("tween started", "id", t.id)
	}

	t.step(dt)

	if t.complete {
		t.stop(true)
		return
	}
	t.emit(t.easing.Apply(float32(t.elapsed / t.duration)))
}

// Stop ends the tween. With complete set the tween jumps to its final value
// and reports completion; otherwise it freezes where it is. Stopping an
// already stopped tween does nothing.
func (t *Tween[T]) Stop(complete bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stop(complete)
}

func (t *Tween[T]) stop(complete bool) {
	if !t.running {
		return
	}
	t.running = false

	if complete {
		t.complete = true
		progress := float32(1)
		t.elapsed = t.duration
		if t.looping.endsBackward() {
			progress = 0
			t.elapsed = 0
		}
		if n := t.looping.LoopCount(); n > 0 {
			t.loop = n
		}
		t.resolveFrom()
		t.emit(t.easing.Apply(progress))
		t.onCompletion.publish(struct{}{})
	}

	t.onStart.finish()
	t.onUpdate.finish()
	t.onLoop.finish()
	t.onCompletion.finish()
	close(t.done)

	if t.registry != nil {
		t.registry.Unregister(t)
		t.registry = nil
	}
	t.logger.Debug("tween stopped", "id", t.id, "complete", complete)
}

func (t *Tween[T]) resolveFrom() {
	if t.fromResolved {
		return
	}
	t.from = t.data.resolveFrom()
	t.fromResolved = true
}

func (t *Tween[T]) emit(eased float32) {
	v := t.data.apply(t.from, eased)
	t.value = v
	t.hasValue = true
	t.onUpdate.publish(v)
	if t.hook != nil {
		t.hook(v)
	}
}

func (t *Tween[T]) isLastLoop() bool {
	n := t.looping.LoopCount()
	return n > 1 && t.loop == n
}

func (t *Tween[T]) movingForward() bool {
	return t.looping.Mode != LoopPingPong || t.loop%2 == 1
}

// skipLoops fast-forwards an infinite tween over whole periods of parity
// loops so that a huge delta does not walk every loop boundary. At least one
// period is left to walk.
func (t *Tween[T]) skipLoops(dt float64, parity uint) float64 {
	period := t.duration * float64(parity)
	if !t.looping.IsInfinite() || dt <= 2*period {
		return dt
	}
	remaining := math.Mod(dt, period) + period
	skip := uint(math.MaxUint) - uint(math.MaxUint)%parity
	if periods := math.Round((dt - remaining) / period); periods < 1<<62 {
		skip = uint(periods) * parity
	}
	t.advanceLoops(skip)
	return remaining
}

// advanceLoops adds n to the loop number. It saturates near math.MaxUint
// while keeping the parity a full addition would give, so a ping-pong tween
// keeps alternating direction.
func (t *Tween[T]) advanceLoops(n uint) {
	const top = uint(math.MaxUint)
	if n <= top-t.loop {
		t.loop += n
		return
	}
	t.loop = top - 1 + (t.loop+n)%2
}

func (t *Tween[T]) singleLoopStep(dt float64) {
	t.elapsed += dt
	if t.elapsed >= t.duration {
		t.elapsed = t.duration
		t.complete = true
	}
}

func (t *Tween[T]) loopingStep(dt float64) {
	remaining := t.skipLoops(dt, 1)
	for {
		room := t.duration - t.elapsed
		if remaining < room {
			t.elapsed += remaining
			return
		}
		remaining -= room
		if t.isLastLoop() {
			t.elapsed = t.duration
			t.complete = true
			return
		}
		t.onLoop.publish(t.loop)
		t.advanceLoops(1)
		t.elapsed = 0
	}
}

func (t *Tween[T]) pingPongStep(dt float64) {
	remaining := t.skipLoops(dt, 2)
	for {
		forward := t.movingForward()
		if forward {
			room := t.duration - t.elapsed
			if remaining < room {
				t.elapsed += remaining
				return
			}
			remaining -= room
			t.elapsed = t.duration
		} else {
			if remaining < t.elapsed {
				t.elapsed -= remaining
				return
			}
			remaining -= t.elapsed
			t.elapsed = 0
		}

		if t.isLastLoop() {
			t.complete = true
			return
		}
		t.onLoop.publish(t.loop)
		t.advanceLoops(1)
	}
}

// span is the time the tween occupies on a sequence timeline. Infinite
// tweens do not bound a sequence and report 0.
func (t *Tween[T]) span() float64 {
	n := t.looping.LoopCount()
	if n == 0 {
		return 0
	}
	return t.duration * float64(n)
}

func (t *Tween[T]) adopt(owner *Sequence) error {
	t.mu.Lock()
	if t.owner != nil {
		t.mu.Unlock()
		return ErrAlreadyOwned
	}
	t.owner = owner
	reg := t.registry
	t.registry = nil
	t.mu.Unlock()

	if reg != nil {
		reg.Unregister(t)
	}
	return nil
}
