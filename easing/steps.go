package easing

import (
	"fmt"
	"math"
)

// JumpType controls whether a steps easing touches 0 and 1 at its first and
// last step. See https://developer.mozilla.org/en-US/docs/Web/CSS/easing-function/steps.
type JumpType int

const (
	// JumpEnd holds 0 on the first band and never reaches 1.
	JumpEnd JumpType = iota
	// JumpStart jumps away from 0 immediately and ends on 1.
	JumpStart
	// JumpNone starts on 0 and ends on 1.
	JumpNone
	// JumpBoth touches neither 0 nor 1.
	JumpBoth
)

var jumpNames = map[JumpType]string{
	JumpEnd:   "jump-end",
	JumpStart: "jump-start",
	JumpNone:  "jump-none",
	JumpBoth:  "jump-both",
}

func (j JumpType) String() string {
	if name, ok := jumpNames[j]; ok {
		return name
	}
	return fmt.Sprintf("JumpType(%d)", int(j))
}

// ParseJumpType parses a jump-type name. The CSS aliases "start" and "end"
// are accepted too.
func ParseJumpType(s string) (JumpType, error) {
	switch s {
	case "jump-end", "end":
		return JumpEnd, nil
	case "jump-start", "start":
		return JumpStart, nil
	case "jump-none":
		return JumpNone, nil
	case "jump-both":
		return JumpBoth, nil
	}
	return 0, fmt.Errorf("%w: jump type %q", ErrUnknownEasing, s)
}

// interval returns the output values of the first and last band.
func (j JumpType) interval(count uint) (float32, float32) {
	n := float32(count)
	switch j {
	case JumpStart:
		return 1 / n, 1
	case JumpBoth:
		start := 1 / (n + 1)
		return start, 1 - start
	case JumpNone:
		return 0, 1
	default:
		return 0, 1 - 1/n
	}
}

// Steps quantizes progress into count equal bands.
func Steps(count uint, jump JumpType) (Easing, error) {
	if count < 1 {
		return Easing{}, fmt.Errorf("easing: steps(%d): %w", count, ErrTooFewSteps)
	}
	if _, ok := jumpNames[jump]; !ok {
		return Easing{}, fmt.Errorf("%w: %v", ErrUnknownEasing, jump)
	}
	return Easing{kind: kindSteps, steps: count, jump: jump}, nil
}

// MustSteps is like Steps but panics on error.
func MustSteps(count uint, jump JumpType) Easing {
	e, err := Steps(count, jump)
	if err != nil {
		panic(err)
	}
	return e
}

func evaluateSteps(count uint, jump JumpType, progress float32) float32 {
	start, end := jump.interval(count)
	if count == 1 {
		return start
	}

	band := math.Floor(float64(progress) * float64(count))
	band = math.Max(0, math.Min(band, float64(count-1)))
	return start + (end-start)*float32(band)/float32(count-1)
}

func stepsName(count uint, jump JumpType) string {
	return fmt.Sprintf("steps(%d, %s)", count, jump)
}
