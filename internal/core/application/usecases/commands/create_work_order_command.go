package commands

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
	ErrProductCodeIsRequired = errors.New("product code is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// CreateWorkOrderCommand represents a request to create a new production work
// order. The document number is not part of the command; it is issued by the
// handler from the WO numbering stream inside the creation transaction.
//
// Example:
//
//	workOrderID := kernel.NewUUID()
//	cmd, err := NewCreateWorkOrderCommand(workOrderID, "WIDGET-01", 500, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	workOrderID  kernel.UUID
	productCode  string
	quantity     int
	plannedStart *time.Time

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to register a new work order.
// Validates that the ID is constructed, the product code is not empty, and
// the quantity is positive. plannedStart may be nil for unscheduled orders.
func NewCreateWorkOrderCommand(
	workOrderID kernel.UUID,
	productCode string,
	quantity int,
	plannedStart *time.Time,
) (CreateWorkOrderCommand, error) {
	cmd := CreateWorkOrderCommand{
		plannedStart: plannedStart,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setWorkOrderID(workOrderID),
		cmd.setProductCode(productCode),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// WorkOrderID returns the unique identifier for the new work order.
func (c CreateWorkOrderCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

// ProductCode returns the code of the product to produce.
func (c CreateWorkOrderCommand) ProductCode() string {
	return c.productCode
}

// Quantity returns the planned production quantity.
func (c CreateWorkOrderCommand) Quantity() int {
	return c.quantity
}

// PlannedStart returns the optional scheduled release time.
func (c CreateWorkOrderCommand) PlannedStart() *time.Time {
	return c.plannedStart
}

func (c *CreateWorkOrderCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	c.workOrderID = workOrderID
	return nil
}

func (c *CreateWorkOrderCommand) setProductCode(productCode string) error {
	if productCode == "" {
		return ErrProductCodeIsRequired
	}
	c.productCode = productCode
	return nil
}

func (c *CreateWorkOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
