// Package ports defines repository interfaces for the MES domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work order
// aggregates.
type WorkOrderRepository interface {
	// Add persists a new work order aggregate to storage.
	// The work order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	//
	// The update is conditional on the version the aggregate was loaded with:
	// if another writer changed the row since the load, no rows match and the
	// call fails with errs.ErrConcurrentModification instead of silently
	// overwriting. On success the stored version is advanced by one.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order aggregate by its unique identifier.
	// Fails with errs.ErrObjectNotFound if the identifier does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// GetAllDueForRelease retrieves draft work orders whose planned start time
	// is at or before now. Used by the scheduled release job to issue work
	// orders whose production window has opened.
	GetAllDueForRelease(ctx context.Context, now time.Time) ([]*workorder.WorkOrder, error)
}
