package session

import (
	"errors"
	"fmt"
)

// ErrEmptyQuestionSet is returned when an engine is constructed over zero
// questions. This is a caller bug, not user input, so it fails loudly.
var ErrEmptyQuestionSet = errors.New("session: empty question set")

// StateConflictError rejects an operation that is illegal in the engine's
// current state. The state is left untouched.
type StateConflictError struct {
	Op     string // "submit", "advance", or "retreat"
	Reason string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("session: %s rejected: %s", e.Op, e.Reason)
}

// IsStateConflict reports whether err is a rejected engine transition.
func IsStateConflict(err error) bool {
	var sc *StateConflictError
	return errors.As(err, &sc)
}

func conflict(op, reason string) error {
	return &StateConflictError{Op: op, Reason: reason}
}
