package queries

import (
	"context"
	"database/sql"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler retrieves work order read models from the
// database. Uses direct SQL for read performance in the CQRS pattern, without
// reconstructing aggregates.
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work order list queries.
// Requires a GORM database connection for query execution.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching work orders sorted by
// document number. An unfiltered query returns every work order; a status
// filter narrows the result to that lifecycle state.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
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
	`

	tx := h.db.WithContext(ctx)
	var rows *sql.Rows
	var err error
	if filter := query.StatusFilter(); filter != nil {
		rows, err = tx.Raw(baseQuery+` WHERE status = ? ORDER BY number`, *filter).Rows()
	} else {
		rows, err = tx.Raw(baseQuery + ` ORDER BY number`).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetWorkOrdersQueryResponse, 0)
	for rows.Next() {
		wo, scanErr := scanWorkOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, wo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanWorkOrderRow(rows *sql.Rows) (GetWorkOrdersQueryResponse, error) {
	var wo GetWorkOrdersQueryResponse
	var id uuid.UUID
	var status int
	var plannedStart, actualStart, actualEnd sql.NullTime

	err := rows.Scan(
		&id,
		&wo.Number,
		&wo.ProductCode,
		&wo.Quantity,
		&plannedStart,
		&status,
		&actualStart,
		&actualEnd,
		&wo.Version,
	)
	if err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}

	workOrderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}
	wo.ID = workOrderID

	wo.Status = workorder.Status(status)
	if err = wo.Status.Validate(); err != nil {
		return GetWorkOrdersQueryResponse{}, err
	}

	wo.PlannedStart = nullableTime(plannedStart)
	wo.ActualStart = nullableTime(actualStart)
	wo.ActualEnd = nullableTime(actualEnd)
	return wo, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
