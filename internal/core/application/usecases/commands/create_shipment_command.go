package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register an outbound shipment
// for a work order. The SHP document number is issued by the handler inside
// the creation transaction.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
func NewCreateShipmentCommand(shipmentID, workOrderID kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setWorkOrderID(workOrderID),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// WorkOrderID returns the identifier of the work order being shipped.
func (c CreateShipmentCommand) WorkOrderID() kernel.UUID {
	return c.workOrderID
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	c.workOrderID = workOrderID
	return nil
}
