package queries

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrGetWorkOrderQueryIsNotConstructed = errors.New(
	"GetWorkOrderQuery must be created via NewGetWorkOrderQuery constructor",
)

// GetWorkOrderQuery retrieves a single work order by its identifier.
type GetWorkOrderQuery struct {
	workOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWorkOrderQuery creates a query for the work order with the given ID.
func NewGetWorkOrderQuery(workOrderID kernel.UUID) (GetWorkOrderQuery, error) {
	if err := workOrderID.Validate(); err != nil {
		return GetWorkOrderQuery{}, err
	}
	return GetWorkOrderQuery{
		workOrderID: workOrderID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrderQueryIsNotConstructed)
}

// WorkOrderID returns the identifier of the requested work order.
func (q GetWorkOrderQuery) WorkOrderID() kernel.UUID {
	return q.workOrderID
}
