package commands

import (
	"context"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles shipment registration.
// The referenced work order is loaded inside the transaction so a shipment
// can never point at a work order that does not exist, and the SHP number is
// issued in the same transaction as the insert.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment registration.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the created
// aggregate. Fails with errs.ErrObjectNotFound if the work order is unknown.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WorkOrderRepository().Get(ctx, cmd.WorkOrderID()); err != nil {
		return nil, err
	}

	value, day, err := uow.SequenceRepository().Next(ctx, docnumber.Shipment)
	if err != nil {
		return nil, err
	}

	number, err := docnumber.New(docnumber.Shipment, day, value)
	if err != nil {
		return nil, err
	}

	shp, err := shipment.NewShipment(cmd.ShipmentID(), number, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shp, nil
}
