// Package shipmentrepo implements shipment persistence over GORM.
package shipmentrepo

import (
	"time"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipments.
type ShipmentDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string    `gorm:"uniqueIndex"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:          s.ID().Bytes(),
		Number:      s.Number().String(),
		WorkOrderID: s.WorkOrderID().Bytes(),
		CreatedAt:   s.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	workOrderID, err := kernel.UUIDFromBytes(dto.WorkOrderID[:])
	if err != nil {
		return nil, err
	}

	number, err := docnumber.Parse(dto.Number)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, number, workOrderID, dto.CreatedAt)
}
