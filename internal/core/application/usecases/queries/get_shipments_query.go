package queries

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves all registered shipments.
type GetShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query that retrieves every shipment.
func NewGetShipmentsQuery() GetShipmentsQuery {
	return GetShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// GetShipmentsQueryResponse is the read model for a shipment row.
type GetShipmentsQueryResponse struct {
	ID          kernel.UUID
	Number      string
	WorkOrderID kernel.UUID
	CreatedAt   time.Time
}
