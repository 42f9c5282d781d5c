package commands

import (
	"errors"
	"time"

	"mes/internal/pkg/guard"
)

var ErrReleaseDueWorkOrdersCommandIsNotConstructed = errors.New(
	"ReleaseDueWorkOrdersCommand must be created via NewReleaseDueWorkOrdersCommand constructor",
)

// ReleaseDueWorkOrdersCommand requests that every draft work order whose
// planned start time has arrived be issued. Carries the evaluation time so
// the scheduled job and tests share one notion of "now".
type ReleaseDueWorkOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewReleaseDueWorkOrdersCommand creates a release command evaluated at now.
func NewReleaseDueWorkOrdersCommand(now time.Time) (ReleaseDueWorkOrdersCommand, error) {
	if now.IsZero() {
		return ReleaseDueWorkOrdersCommand{}, errors.New("now is required")
	}
	return ReleaseDueWorkOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDueWorkOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDueWorkOrdersCommandIsNotConstructed)
}

// Now returns the evaluation time for due-ness.
func (c ReleaseDueWorkOrdersCommand) Now() time.Time {
	return c.now
}
