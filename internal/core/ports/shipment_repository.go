package ports

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Fails with errs.ErrObjectNotFound if the identifier does not resolve.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
}
