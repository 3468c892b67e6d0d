package tween

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Driven is a top-level timeline member fed by a Registry.
type Driven interface {
	ID() uuid.UUID
	Update(dt float64)
}

// Registry tracks the tweens and sequences that are driven automatically.
// Tweens and sequences register themselves on creation when given one, and
// unregister when they stop or are inserted into a sequence, possibly from
// inside their own Update call.
type Registry interface {
	Register(d Driven)
	Unregister(d Driven)
}

// Manager is a Registry that feeds elapsed time to its members, either one
// Tick at a time or from its own ticker loop in Run.
type Manager struct {
	mu      sync.Mutex
	members map[uuid.UUID]Driven
	order   []uuid.UUID
	logger  *slog.Logger
	now     func() time.Time
}

// ManagerOption customizes Manager construction.
type ManagerOption func(*Manager)

// WithManagerLogger sets the logger used for registration messages.
func WithManagerLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock replaces time.Now for measuring elapsed time in Run.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates an empty Manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := new(Manager)
	m.members = make(map[uuid.UUID]Driven)
	m.logger = slog.Default()
	m.now = time.Now
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Register adds d to the driven set. Registering twice has no effect.
func (m *Manager) Register(d Driven) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := d.ID()
	if _, ok := m.members[id]; ok {
		return
	}
	m.members[id] = d
	m.order = append(m.order, id)
	m.logger.Debug("registered", "id", id, "members", len(m.members))
}

// Unregister removes d from the driven set.
func (m *Manager) Unregister(d Driven) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := d.ID()
	if _, ok := m.members[id]; !ok {
		return
	}
	delete(m.members, id)
	for i, other := range m.order {
		if other == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.logger.Debug("unregistered", "id", id, "members", len(m.members))
}

// Len returns the number of driven members.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.members)
}

// Tick feeds dt seconds to every member, in registration order. Members may
// unregister themselves, or register new members, during the tick.
func (m *Manager) Tick(dt float64) {
	m.mu.Lock()
	snapshot := make([]Driven, 0, len(m.order))
	for _, id := range m.order {
		snapshot = append(snapshot, m.members[id])
	}
	m.mu.Unlock()

	for _, d := range snapshot {
		d.Update(dt)
	}
}

// Run ticks the members every interval with the real time elapsed since the
// previous tick, until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := m.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := m.now()
			if dt := now.Sub(last).Seconds(); dt > 0 {
				m.Tick(dt)
			}
			last = now
		}
	}
}
