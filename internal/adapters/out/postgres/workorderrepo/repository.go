package workorderrepo

import (
	"context"
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order to the database.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order, conditional on the version it was
// loaded with. The row is matched on id and version together; when another
// writer advanced the version in between, no rows match and the call fails
// with errs.ErrConcurrentModification. On success the stored version advances
// by one.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"product_code":  dto.ProductCode,
			"quantity":      dto.Quantity,
			"planned_start": dto.PlannedStart,
			"status":        dto.Status,
			"actual_start":  dto.ActualStart,
			"actual_end":    dto.ActualEnd,
			"version":       dto.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("workOrderId", aggregate.ID())
		}
		return errs.NewConcurrentModificationError("workOrderId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDueForRelease retrieves draft work orders whose planned start time is
// at or before now.
func (r *GormWorkOrderRepository) GetAllDueForRelease(
	ctx context.Context,
	now time.Time,
) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND planned_start IS NOT NULL AND planned_start <= ?", workorder.Draft, now).
		Error
	if err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	return orders, nil
}
