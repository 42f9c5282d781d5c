// Package workorderrepo implements work order persistence over GORM,
// including the version-checked update that guards concurrent lifecycle
// transitions.
package workorderrepo

import (
	"time"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work order
// aggregates. The document number is stored in its formatted form and kept
// unique; status is indexed for the release job and list filters.
type WorkOrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number       string    `gorm:"uniqueIndex"`
	ProductCode  string
	Quantity     int
	PlannedStart *time.Time
	Status       int `gorm:"index"`
	ActualStart  *time.Time
	ActualEnd    *time.Time
	Version      int
}

// TableName specifies the database table name for work order entities.
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	return WorkOrderDTO{
		ID:           wo.ID().Bytes(),
		Number:       wo.Number().String(),
		ProductCode:  wo.ProductCode(),
		Quantity:     wo.Quantity(),
		PlannedStart: wo.PlannedStart(),
		Status:       int(wo.Status()),
		ActualStart:  wo.ActualStart(),
		ActualEnd:    wo.ActualEnd(),
		Version:      wo.Version(),
	}
}

func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	number, err := docnumber.Parse(dto.Number)
	if err != nil {
		return nil, err
	}

	return workorder.RestoreWorkOrder(
		id,
		number,
		dto.ProductCode,
		dto.Quantity,
		dto.PlannedStart,
		workorder.Status(dto.Status),
		dto.ActualStart,
		dto.ActualEnd,
		dto.Version,
	)
}
