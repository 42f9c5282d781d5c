package queries

import (
	"errors"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/pkg/guard"
)

var ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
	"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
)

// GetWorkOrdersQuery retrieves work orders, optionally narrowed to a single
// lifecycle status.
//
// Example:
//
//	query := NewGetWorkOrdersQuery()
//	handler := NewGetWorkOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get work orders: %w", err)
//	}
//
//	for _, wo := range orders {
//	    fmt.Printf("%s %s x%d [%s]\n", wo.Number, wo.ProductCode, wo.Quantity, wo.Status)
//	}
type GetWorkOrdersQuery struct {
	statusFilter *workorder.Status

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a query that retrieves every work order.
func NewGetWorkOrdersQuery() GetWorkOrdersQuery {
	return GetWorkOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetWorkOrdersQueryWithStatus creates a query narrowed to work orders in
// the given lifecycle status. The status must be a defined one.
func NewGetWorkOrdersQueryWithStatus(status workorder.Status) (GetWorkOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetWorkOrdersQuery{}, err
	}
	return GetWorkOrdersQuery{
		statusFilter: &status,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// StatusFilter returns the requested status, or nil when unfiltered.
func (q GetWorkOrdersQuery) StatusFilter() *workorder.Status {
	return q.statusFilter
}

// GetWorkOrdersQueryResponse is the read model for a work order row.
type GetWorkOrdersQueryResponse struct {
	ID           kernel.UUID
	Number       string
	ProductCode  string
	Quantity     int
	PlannedStart *time.Time
	Status       workorder.Status
	ActualStart  *time.Time
	ActualEnd    *time.Time
	Version      int
}
