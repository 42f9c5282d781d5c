package commands

import (
	"context"
	"errors"

	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/errs"
)

// ReleaseDueWorkOrdersCommandHandler issues draft work orders whose planned
// start time has arrived. It is driven by the scheduled release job.
type ReleaseDueWorkOrdersCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewReleaseDueWorkOrdersCommandHandler creates a handler for scheduled work
// order release.
func NewReleaseDueWorkOrdersCommandHandler(uowFactory WorkOrderUoWFactory) ReleaseDueWorkOrdersCommandHandler {
	return ReleaseDueWorkOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle issues every due draft work order in one transaction.
//
// A concurrent-modification failure on an individual order means another
// instance released it between our load and update; that order is skipped and
// the rest proceed. Any other failure aborts the whole batch.
func (h *ReleaseDueWorkOrdersCommandHandler) Handle(ctx context.Context, cmd ReleaseDueWorkOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()
	due, err := repo.GetAllDueForRelease(ctx, cmd.Now())
	if err != nil {
		return err
	}

	for _, wo := range due {
		if err = wo.ChangeStatus(workorder.Issued); err != nil {
			return err
		}

		if err = repo.Update(ctx, wo); err != nil {
			if errors.Is(err, errs.ErrConcurrentModification) {
				continue
			}
			return err
		}
	}

	return uow.Commit(ctx)
}
