package animated

import (
	"errors"
	"fmt"
)

// Structural problems found when a keyframe sequence is built.
var (
	ErrEmpty             = errors.New("no keyframes")
	ErrMissingStartFrame = errors.New("keyframe has no start frame")
	ErrNonMonotonic      = errors.New("start frames are not strictly increasing")
	ErrMissingEasing     = errors.New("non-terminal keyframe is missing an easing handle")
)

// ValidationError reports the keyframe that failed validation.
// Index is -1 when the problem concerns the sequence as a whole.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid keyframes: %v", e.Err)
	}
	return fmt.Sprintf("keyframe %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(index int, err error) error {
	return &ValidationError{Index: index, Err: err}
}
