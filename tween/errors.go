package tween

import "errors"

var (
	// ErrInvalidDuration is returned when building a tween with a duration that is not positive.
	ErrInvalidDuration = errors.New("duration must be positive")

	// ErrModificationAfterStart is returned when inserting into a sequence that already progressed.
	ErrModificationAfterStart = errors.New("sequence modified after start")

	// ErrAlreadyOwned is returned when inserting a member that already belongs to a sequence.
	ErrAlreadyOwned = errors.New("member already owned by a sequence")
)
