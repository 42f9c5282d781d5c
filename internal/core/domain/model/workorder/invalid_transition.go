package workorder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTransition is the sentinel error for all InvalidTransitionError
// instances. Use errors.Is(err, ErrInvalidTransition) to classify lifecycle
// violations, e.g. when mapping to an HTTP 422 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError indicates that a requested status change violates the
// work order lifecycle. It carries the current status, the requested status,
// and the set of statuses the current one may legally move to.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
	Allowed   []Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// current and requested statuses. The allowed set is taken from the
// transition table; for terminal statuses it is empty.
func NewInvalidTransitionError(current, requested Status) *InvalidTransitionError {
	return &InvalidTransitionError{
		Current:   current,
		Requested: requested,
		Allowed:   current.AllowedNext(),
	}
}

func (e *InvalidTransitionError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	return fmt.Sprintf("%s: cannot move from %s to %s, allowed: [%s]",
		ErrInvalidTransition, e.Current, e.Requested, strings.Join(names, ", "))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
