package queries

import (
	"context"

	"mes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves shipment read models from the database.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query and returns all shipments sorted by document
// number.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) ([]GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			work_order_id,
			created_at
		FROM shipments
		ORDER BY number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]GetShipmentsQueryResponse, 0)
	for rows.Next() {
		var shp GetShipmentsQueryResponse
		var id, workOrderID uuid.UUID

		err = rows.Scan(
			&id,
			&shp.Number,
			&workOrderID,
			&shp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shp.ID = shipmentID

		orderID, idErr := kernel.UUIDFromBytes(workOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		shp.WorkOrderID = orderID

		shipments = append(shipments, shp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
