package workorder

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through NewWorkOrder or RestoreWorkOrder.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder or RestoreWorkOrder")
)

// WorkOrder represents a production work order. It is the aggregate root that
// manages the order lifecycle from draft through completion or cancellation.
//
// WorkOrder maintains these invariants:
//   - Must have a valid unique identifier and document number
//   - Product code must not be empty, quantity must be positive
//   - Status only moves along edges of the lifecycle transition table
//   - actualStart is stamped exactly once, on entering InProgress
//   - actualEnd is stamped exactly once, on entering Completed
//   - version increases by one with every persisted change
//
// The struct uses private fields to ensure encapsulation; state changes go
// through validated methods.
type WorkOrder struct {
	id           kernel.UUID
	number       docnumber.DocumentNumber
	productCode  string
	quantity     int
	plannedStart *time.Time
	status       Status
	actualStart  *time.Time
	actualEnd    *time.Time
	version      int

	isConstructed bool
}

// NewWorkOrder creates a WorkOrder in Draft status with version 1.
//
// Parameters:
//   - id: unique identifier (must be a constructed UUID)
//   - number: the issued WO document number
//   - productCode: code of the product to produce (required)
//   - quantity: planned production quantity (must be positive)
//   - plannedStart: optional scheduled release time; nil means unscheduled
//
// Returns a validation error if any parameter is invalid.
func NewWorkOrder(
	id kernel.UUID,
	number docnumber.DocumentNumber,
	productCode string,
	quantity int,
	plannedStart *time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Draft,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setNumber(number),
		wo.setProductCode(productCode),
		wo.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	wo.plannedStart = plannedStart
	return wo, nil
}

// RestoreWorkOrder reconstructs a WorkOrder from persistence.
// Unlike NewWorkOrder it accepts any valid status, the recorded timestamps,
// and the stored version. It validates the same construction invariants.
func RestoreWorkOrder(
	id kernel.UUID,
	number docnumber.DocumentNumber,
	productCode string,
	quantity int,
	plannedStart *time.Time,
	status Status,
	actualStart *time.Time,
	actualEnd *time.Time,
	version int,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setNumber(number),
		wo.setProductCode(productCode),
		wo.setQuantity(quantity),
		wo.setStatus(status),
		wo.setVersion(version),
	); err != nil {
		return nil, err
	}

	wo.plannedStart = plannedStart
	wo.actualStart = actualStart
	wo.actualEnd = actualEnd
	return wo, nil
}

// Validate ensures the WorkOrder was constructed through one of the factory
// functions. Call when reconstructing aggregates from external sources.
func (wo *WorkOrder) Validate() error {
	if wo == nil || !wo.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (wo *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && wo.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (wo *WorkOrder) ID() kernel.UUID {
	return wo.id
}

// Number returns the issued document number.
func (wo *WorkOrder) Number() docnumber.DocumentNumber {
	return wo.number
}

// ProductCode returns the code of the product to produce.
func (wo *WorkOrder) ProductCode() string {
	return wo.productCode
}

// Quantity returns the planned production quantity.
func (wo *WorkOrder) Quantity() int {
	return wo.quantity
}

// PlannedStart returns the scheduled release time, or nil if unscheduled.
func (wo *WorkOrder) PlannedStart() *time.Time {
	return wo.plannedStart
}

// Status returns the current lifecycle status.
func (wo *WorkOrder) Status() Status {
	return wo.status
}

// ActualStart returns the time production started, or nil if it has not.
func (wo *WorkOrder) ActualStart() *time.Time {
	return wo.actualStart
}

// ActualEnd returns the time production finished, or nil if it has not.
func (wo *WorkOrder) ActualEnd() *time.Time {
	return wo.actualEnd
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (wo *WorkOrder) Version() int {
	return wo.version
}

// ChangeStatus transitions the work order to the requested status.
//
// The transition must be permitted by the lifecycle table; otherwise an
// *InvalidTransitionError is returned and the aggregate is unchanged.
//
// Side effects, applied together with the status change:
//   - entering InProgress stamps actualStart with the current time
//   - entering Completed stamps actualEnd with the current time
//
// Each timestamp is stamped at most once: neither InProgress nor Completed is
// reachable twice, since no edge returns to them.
func (wo *WorkOrder) ChangeStatus(target Status) error {
	newStatus, err := wo.status.TransitionTo(target)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	switch newStatus {
	case InProgress:
		wo.actualStart = &now
	case Completed:
		wo.actualEnd = &now
	default:
	}

	wo.status = newStatus
	return nil
}

func (wo *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	wo.id = id
	return nil
}

func (wo *WorkOrder) setNumber(number docnumber.DocumentNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	if number.Prefix() != docnumber.WorkOrder {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%s is not a work order numbering stream", number.Prefix()))
	}
	wo.number = number
	return nil
}

func (wo *WorkOrder) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	wo.productCode = productCode
	return nil
}

func (wo *WorkOrder) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	wo.quantity = quantity
	return nil
}

func (wo *WorkOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	wo.status = status
	return nil
}

func (wo *WorkOrder) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidError("workOrder", fmt.Errorf("%d is not a positive version", version))
	}
	wo.version = version
	return nil
}
