package commands

import (
	"context"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/workorder"
)

// CreateWorkOrderCommandHandler handles the business logic for work order
// creation. It issues the next WO document number and persists the new order
// in draft status within a single transaction, so a failed insert also rolls
// back the counter advance.
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCreateWorkOrderCommandHandler creates a handler for work order creation.
// Requires a WorkOrderUoWFactory for transactional persistence.
func NewCreateWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the work order creation command.
// Allocates the next WO sequence value, builds the document number, and
// creates the work order in draft status. Returns the created aggregate.
func (h *CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (*workorder.WorkOrder, error) {
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

	value, day, err := uow.SequenceRepository().Next(ctx, docnumber.WorkOrder)
	if err != nil {
		return nil, err
	}

	number, err := docnumber.New(docnumber.WorkOrder, day, value)
	if err != nil {
		return nil, err
	}

	wo, err := workorder.NewWorkOrder(
		cmd.WorkOrderID(),
		number,
		cmd.ProductCode(),
		cmd.Quantity(),
		cmd.PlannedStart(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.WorkOrderRepository().Add(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}
