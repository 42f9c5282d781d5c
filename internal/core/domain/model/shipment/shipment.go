// Package shipment implements the outbound shipment aggregate.
// Shipments consume the SHP numbering stream; their lifecycle beyond creation
// is handled by ordinary CRUD flows and is intentionally minimal here.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment factory method.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment represents an outbound shipment for a completed work order.
// It carries its own document number from the SHP stream, independent of the
// work order numbering.
type Shipment struct {
	id          kernel.UUID
	number      docnumber.DocumentNumber
	workOrderID kernel.UUID
	createdAt   time.Time

	isConstructed bool
}

// NewShipment creates a Shipment for the given work order with the issued
// SHP document number. createdAt is stamped with the current time.
func NewShipment(id kernel.UUID, number docnumber.DocumentNumber, workOrderID kernel.UUID) (*Shipment, error) {
	s := &Shipment{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setWorkOrderID(workOrderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	number docnumber.DocumentNumber,
	workOrderID kernel.UUID,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setNumber(number),
		s.setWorkOrderID(workOrderID),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment was created via a factory function.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Number returns the issued SHP document number.
func (s *Shipment) Number() docnumber.DocumentNumber {
	return s.number
}

// WorkOrderID returns the identifier of the shipped work order.
func (s *Shipment) WorkOrderID() kernel.UUID {
	return s.workOrderID
}

// CreatedAt returns the time the shipment was registered.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setNumber(number docnumber.DocumentNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	if number.Prefix() != docnumber.Shipment {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%s is not a shipment numbering stream", number.Prefix()))
	}
	s.number = number
	return nil
}

func (s *Shipment) setWorkOrderID(workOrderID kernel.UUID) error {
	if err := workOrderID.Validate(); err != nil {
		return err
	}
	s.workOrderID = workOrderID
	return nil
}
