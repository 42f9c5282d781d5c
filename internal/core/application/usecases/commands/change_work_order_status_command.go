package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/guard"
)

var ErrChangeWorkOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeWorkOrderStatusCommand must be created via NewChangeWorkOrderStatusCommand constructor",
)

// ChangeWorkOrderStatusCommand represents a request to move a work order to a
// new lifecycle status. Whether the transition is legal is decided by the
// aggregate; the command only validates that the target status exists.
type ChangeWorkOrderStatusCommand struct { //nolint:recvcheck //using for validation
	workOrderID kernel.UUID
	target      workorder.Status

	guard guard.ConstructorGuard
}

// NewChangeWorkOrderStatusCommand creates a command to transition a work order.
// Validates that the ID is constructed and the target is a defined status.
func NewChangeWorkOrderStatusCommand(
	workOrderID kernel.UUID,
	target workorder.Status,
) (ChangeWorkOrderStatusCommand, error) {
	cmd := ChangeWorkOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeWorkOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeWorkOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeWorkOrderStatusCommandIsNotConstructed)
}

// WorkOrderID returns the identifier of the work order to transition.
func (c ChangeWorkOrderStatusCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// Target returns the requested lifecycle status.
func (c ChangeWorkOrderStatusCommand) Target() workorder.Status {
	return c.target
}

func (c *ChangeWorkOrderStatusCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	c.workOrderID = workOrderID
	return nil
}

func (c *ChangeWorkOrderStatusCommand) setTarget(target workorder.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
