package tween

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/google/uuid"
)

// Member is anything that can be placed on a Sequence timeline: a *Tween[T]
// of any T, or a nested *Sequence.
type Member interface {
	Driven
	Stop(complete bool)

	span() float64
	adopt(owner *Sequence) error
}

// Entry is a member placed at an offset on a sequence timeline.
type Entry struct {
	StartAt  float64
	Duration float64
	Member   Member
}

func (e Entry) end() float64 {
	return e.StartAt + e.Duration
}

// Sequence plays tweens and nested sequences on one shared timeline.
//
// Sequences differ from tweens in that they cannot loop, they have no value
// stream, and their duration is defined by their content: the latest end of
// their entries, where infinitely looping tweens count as zero length.
type Sequence struct {
	mu sync.Mutex

	id       uuid.UUID
	registry Registry
	owner    *Sequence
	logger   *slog.Logger

	entries       []Entry
	totalDuration float64
	elapsed       float64
	started       bool
	running       bool
	complete      bool

	onStart      *notifier[struct{}]
	onCompletion *notifier[struct{}]
	done         chan struct{}
}

// NewSequence creates an empty sequence. Unless WithRegistry is given the
// sequence is driven manually through Update. Easing and looping options
// are ignored.
func NewSequence(opts ...Option) *Sequence {
	s := newSettings(opts)

	seq := new(Sequence)
	seq.id = uuid.New()
	seq.logger = s.logger
	seq.running = true
	seq.onStart = newNotifier[struct{}]()
	seq.onCompletion = newNotifier[struct{}]()
	seq.done = make(chan struct{})

	if s.registry != nil {
		seq.registry = s.registry
		seq.registry.Register(seq)
	}
	return seq
}

// ID identifies the sequence in registries and logs.
func (s *Sequence) ID() uuid.UUID { return s.id }

// Insert places m at offset at seconds on the timeline. The sequence takes
// ownership of m: m stops being driven by its registry. Insert fails with
// ErrModificationAfterStart once the sequence has progressed.
func (s *Sequence) Insert(at float64, m Member) error {
	insertMu.Lock()
	defer insertMu.Unlock()
	if err := s.checkCycle(m); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(at, m)
}

// Append places m right after the current end of the sequence.
func (s *Sequence) Append(m Member) error {
	insertMu.Lock()
	defer insertMu.Unlock()
	if err := s.checkCycle(m); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(s.totalDuration, m)
}

// insertMu serializes insertions so that the nesting checked by checkCycle
// cannot change before the member is adopted.
var insertMu sync.Mutex

// checkCycle rejects inserting s into itself or into one of its descendants.
// It runs under insertMu, before s is locked.
func (s *Sequence) checkCycle(m Member) error {
	if other, ok := m.(*Sequence); ok && other.encloses(s) {
		return fmt.Errorf("sequence %s: %w", s.id, ErrAlreadyOwned)
	}
	return nil
}

func (s *Sequence) insert(at float64, m Member) error {
	if s.started {
		return fmt.Errorf("sequence %s: %w", s.id, ErrModificationAfterStart)
	}
	if !(at >= 0) || math.IsInf(at, 1) {
		return fmt.Errorf("sequence %s: invalid start offset %v", s.id, at)
	}
	if m == nil {
		return fmt.Errorf("sequence %s: nil member", s.id)
	}
	if err := m.adopt(s); err != nil {
		return fmt.Errorf("sequence %s: %w", s.id, err)
	}

	entry := Entry{StartAt: at, Duration: m.span(), Member: m}
	s.entries = append(s.entries, entry)
	if end := entry.end(); end > s.totalDuration {
		s.totalDuration = end
	}
	s.logger.Debug("sequence entry inserted", "id", s.id, "member", m.ID(), "at", at, "duration", entry.Duration)
	return nil
}

// encloses reports whether target is s or nested anywhere inside s. Locks
// are taken one sequence at a time, top down.
func (s *Sequence) encloses(target *Sequence) bool {
	if s == target {
		return true
	}
	s.mu.Lock()
	children := make([]*Sequence, 0, len(s.entries))
	for _, e := range s.entries {
		if child, ok := e.Member.(*Sequence); ok {
			children = append(children, child)
		}
	}
	s.mu.Unlock()

	for _, child := range children {
		if child.encloses(target) {
			return true
		}
	}
	return false
}

// Entries returns a copy of the timeline entries.
func (s *Sequence) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalDuration is the latest end of all entries.
func (s *Sequence) TotalDuration() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDuration
}

// ElapsedTime is the position of the sequence on its timeline.
func (s *Sequence) ElapsedTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// IsRunning reports whether the sequence still accepts updates.
func (s *Sequence) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// IsComplete reports whether the sequence reached its end.
func (s *Sequence) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.complete
}

// OnStart receives one value when the sequence starts, then closes.
func (s *Sequence) OnStart() <-chan struct{} { return s.onStart.events() }

// OnCompletion receives one value if the sequence completes, then closes.
func (s *Sequence) OnCompletion() <-chan struct{} { return s.onCompletion.events() }

// Done is closed once the sequence stops, whether it completed or not.
func (s *Sequence) Done() <-chan struct{} { return s.done }

// WaitForCompletion blocks until the sequence stops and reports whether it
// completed. It returns false if ctx ends first.
func (s *Sequence) WaitForCompletion(ctx context.Context) bool {
	select {
	case <-s.done:
		return s.IsComplete()
	case <-ctx.Done():
		return false
	}
}

// Update advances the sequence by dt seconds and forwards to every entry the
// part of dt that overlaps its window on the timeline.
func (s *Sequence) Update(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.advance(dt) {
		s.stop(true)
	}
}

// advance moves the timeline and reports whether it reached its end.
func (s *Sequence) advance(dt float64) bool {
	if !s.running || s.complete || !(dt > 0) || math.IsInf(dt, 1) || len(s.entries) == 0 {
		return false
	}

	if !s.started {
		s.started = true
		s.onStart.once(struct{}{})
		s.logger.Debug("sequence started", "id", s.id, "duration", s.totalDuration)
	}

	previous := s.elapsed
	applied := dt
	shouldComplete := false
	if s.totalDuration > 0 {
		if remaining := s.totalDuration - s.elapsed; remaining <= dt {
			applied = remaining
			shouldComplete = true
		}
	}
	s.elapsed += applied
	if shouldComplete {
		s.elapsed = s.totalDuration
	}

	for _, e := range s.entries {
		if e.StartAt > s.elapsed {
			continue
		}
		windowStart := math.Max(previous, e.StartAt)
		if share := math.Min(applied, s.elapsed-windowStart); share > 0 {
			e.Member.Update(share)
		}
	}
	return shouldComplete
}

// Stop ends the sequence and stops every entry without completing them.
// With complete set the sequence first plays the rest of its timeline and
// reports completion.
func (s *Sequence) Stop(complete bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop(complete)
}

func (s *Sequence) stop(complete bool) {
	if !s.running {
		return
	}
	if complete {
		if remaining := s.totalDuration - s.elapsed; s.totalDuration > 0 && remaining > 0 {
			s.advance(remaining)
		}
		s.complete = true
	}
	s.running = false

	for _, e := range s.entries {
		e.Member.Stop(false)
	}

	if complete {
		s.onCompletion.publish(struct{}{})
	}
	s.onStart.finish()
	s.onCompletion.finish()
	close(s.done)

	if s.registry != nil {
		s.registry.Unregister(s)
		s.registry = nil
	}
	s.logger.Debug("sequence stopped", "id", s.id, "complete", complete)
}

func (s *Sequence) span() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalDuration
}

func (s *Sequence) adopt(owner *Sequence) error {
	s.mu.Lock()
	if s.owner != nil {
		s.mu.Unlock()
		return ErrAlreadyOwned
	}
	s.owner = owner
	reg := s.registry
	s.registry = nil
	s.mu.Unlock()

	if reg != nil {
		reg.Unregister(s)
	}
	return nil
}
