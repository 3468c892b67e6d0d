package tween

import (
	"fmt"
	"strings"
)

// LoopMode selects how a tween repeats.
type LoopMode int

const (
	// LoopNone executes the tween once.
	LoopNone LoopMode = iota
	// LoopNormal restarts from the start value on every loop.
	LoopNormal
	// LoopPingPong alternates forward (odd loops) and backward (even loops).
	LoopPingPong
)

func (m LoopMode) String() string {
	switch m {
	case LoopNone:
		return "none"
	case LoopNormal:
		return "normal"
	case LoopPingPong:
		return "pingPong"
	}
	return fmt.Sprintf("LoopMode(%d)", int(m))
}

// ParseLoopMode parses the names returned by LoopMode.String, case-insensitively.
func ParseLoopMode(s string) (LoopMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return LoopNone, nil
	case "normal", "repeat":
		return LoopNormal, nil
	case "pingpong", "ping-pong":
		return LoopPingPong, nil
	}
	return 0, fmt.Errorf("unknown loop mode %q", s)
}

// Looping describes the repetition of a tween. Count is ignored for
// LoopNone; otherwise 0 loops forever, 1 does not repeat and any larger
// value executes the tween exactly Count times.
type Looping struct {
	Mode  LoopMode
	Count uint
}

// NoLoop executes a tween once.
func NoLoop() Looping {
	return Looping{Mode: LoopNone}
}

// Repeat loops a tween count times, restarting from the start value each time.
func Repeat(count uint) Looping {
	return Looping{Mode: LoopNormal, Count: count}
}

// PingPong loops a tween count times, alternating direction.
func PingPong(count uint) Looping {
	return Looping{Mode: LoopPingPong, Count: count}
}

// LoopCount is the number of executions: 1 for LoopNone, 0 for infinite.
func (l Looping) LoopCount() uint {
	if l.Mode == LoopNone {
		return 1
	}
	return l.Count
}

// IsLooping reports whether the tween runs more than once.
func (l Looping) IsLooping() bool {
	n := l.LoopCount()
	return n == 0 || n > 1
}

// IsInfinite reports whether the tween never ends on its own.
func (l Looping) IsInfinite() bool {
	return l.LoopCount() == 0
}

// endsBackward reports whether the last loop runs backward, which happens
// for ping-pong tweens with an even, finite loop count.
func (l Looping) endsBackward() bool {
	return l.Mode == LoopPingPong && l.Count > 1 && l.Count%2 == 0
}

func (l Looping) String() string {
	if l.Mode == LoopNone {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", l.Mode, l.Count)
}
