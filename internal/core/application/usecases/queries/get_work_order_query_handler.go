package queries

import (
	"context"

	"mes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetWorkOrderQueryHandler retrieves a single work order read model by ID.
type GetWorkOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrderQueryHandler creates a handler for single work order lookups.
func NewGetWorkOrderQueryHandler(db *gorm.DB) GetWorkOrderQueryHandler {
	return GetWorkOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no work
// order with the requested ID exists.
func (h GetWorkOrderQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrderQuery,
) (*GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			product_code,
			quantity,
			planned_start,
			status,
			actual_start,
			actual_end,
			version
		FROM work_orders
		WHERE id = ?
	`, query.WorkOrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("workOrderId", query.WorkOrderID())
	}

	wo, err := scanWorkOrderRow(rows)
	if err != nil {
		return nil, err
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &wo, nil
}
