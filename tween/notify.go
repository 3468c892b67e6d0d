package tween

// notifier is a single-slot, most-recent-only event channel. Publishing never
// blocks: an unconsumed value is replaced by the newer one. Callers must
// serialize publish and finish (the owning instance's mutex does).
type notifier[V any] struct {
	ch     chan V
	closed bool
}

func newNotifier[V any]() *notifier[V] {
	return &notifier[V]{ch: make(chan V, 1)}
}

func (n *notifier[V]) publish(v V) {
	if n.closed {
		return
	}
	for {
		select {
		case n.ch <- v:
			return
		default:
		}
		// Slot is full: drop the stale value and retry.
		select {
		case <-n.ch:
		default:
		}
	}
}

// once publishes v and closes the channel.
func (n *notifier[V]) once(v V) {
	n.publish(v)
	n.finish()
}

func (n *notifier[V]) finish() {
	if n.closed {
		return
	}
	n.closed = true
	close(n.ch)
}

func (n *notifier[V]) events() <-chan V {
	return n.ch
}
