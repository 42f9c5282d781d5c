package workorder

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions to ensure
// work orders follow the correct production workflow.
//
// State transitions:
//
//	Draft ──> Issued ──> InProgress ──> Completed
//	  │          │            │
//	  └──────────┴────────────┴──> Cancelled
//
// Completed and Cancelled are terminal; they have no outgoing transitions.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when a work order is first created.
	// Draft orders can still be edited and have not been released to the floor.
	Draft

	// Issued indicates the work order has been released for production
	// and is waiting for work to begin.
	Issued

	// InProgress indicates production has started. Entering this status
	// stamps the actual start time.
	InProgress

	// Completed indicates production finished. Entering this status stamps
	// the actual end time. This is a terminal state.
	Completed

	// Cancelled indicates the work order was abandoned before completion.
	// This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Draft:      "draft",
		Issued:     "issued",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:      "draft",
		Issued:     "issued",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getTransitions returns the transition table: for each status, the set of
// statuses it may move to. The table is the single source of truth for the
// lifecycle; transition checks are lookups, not control flow.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:      {Issued, Cancelled},
		Issued:     {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, as used in the API and
// the database. Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a status name as it appears in API payloads,
// e.g. "in_progress". Returns an error for unknown names.
func StatusFromString(value string) (Status, error) {
	for s, str := range getValidStatusStrings() {
		if str == value {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", value))
}

// AllowedNext returns the statuses this status may transition to.
// Terminal statuses return an empty slice, never nil.
func (s Status) AllowedNext() []Status {
	allowed, ok := getTransitions()[s]
	if !ok {
		return []Status{}
	}
	next := make([]Status, len(allowed))
	copy(next, allowed)
	return next
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the transition is legal.
//
// Returns:
//   - (target, nil) on a permitted transition
//   - (Unknown, *InvalidTransitionError) when the transition table forbids it;
//     the error carries the current status, the requested status, and the
//     allowed set for a precise, actionable message
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}
