package commands

import (
	"context"

	"mes/internal/core/domain/model/workorder"
)

// ChangeWorkOrderStatusCommandHandler handles work order lifecycle transitions.
//
// The handler loads the aggregate, lets the domain model decide whether the
// transition is legal (stamping actual start/end times where the lifecycle
// requires), and persists the result with a version-checked update. Status and
// timestamps are written together or not at all. A concurrent transition of
// the same work order makes the update fail with
// errs.ErrConcurrentModification rather than overwriting the other writer.
type ChangeWorkOrderStatusCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewChangeWorkOrderStatusCommandHandler creates a handler for lifecycle
// transitions. Requires a WorkOrderUoWFactory for transactional persistence.
func NewChangeWorkOrderStatusCommandHandler(uowFactory WorkOrderUoWFactory) ChangeWorkOrderStatusCommandHandler {
	return ChangeWorkOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the updated aggregate.
//
// Failure modes:
//   - errs.ErrObjectNotFound when the work order does not exist
//   - workorder.ErrInvalidTransition when the lifecycle forbids the move
//   - errs.ErrConcurrentModification when another writer got there first
func (h *ChangeWorkOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeWorkOrderStatusCommand,
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

	repo := uow.WorkOrderRepository()
	wo, err := repo.Get(ctx, cmd.WorkOrderID())
	if err != nil {
		return nil, err
	}

	if err = wo.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return wo, nil
}
