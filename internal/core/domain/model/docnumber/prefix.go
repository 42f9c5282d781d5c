package docnumber

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Prefix identifies a logical numbering stream. Each prefix owns an
// independent per-day counter; interleaved allocations on different
// prefixes never affect each other.
type Prefix string

const (
	// WorkOrder is the numbering stream for production work orders.
	WorkOrder Prefix = "WO"

	// Shipment is the numbering stream for outbound shipments.
	Shipment Prefix = "SHP"

	// SalesOrder is the numbering stream for sales orders.
	SalesOrder Prefix = "SO"

	// Nonconformance is the numbering stream for nonconformance reports.
	Nonconformance Prefix = "NCR"
)

// getValidPrefixes returns the set of valid Prefix values.
// Only prefixes listed here may be used to allocate document numbers.
func getValidPrefixes() map[Prefix]struct{} {
	return map[Prefix]struct{}{
		WorkOrder:      {},
		Shipment:       {},
		SalesOrder:     {},
		Nonconformance: {},
	}
}

// Validate checks if the Prefix is one of the defined numbering streams.
// Returns an error with details if the prefix is unknown.
func (p Prefix) Validate() error {
	if _, ok := getValidPrefixes()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("prefix", fmt.Errorf("%q is not a valid numbering stream", string(p)))
	}
	return nil
}

// String returns the prefix as it appears in formatted document numbers.
func (p Prefix) String() string {
	return string(p)
}

// PrefixFromString parses a numbering stream identifier, e.g. "WO".
// Returns an error if the string does not name a defined stream.
func PrefixFromString(s string) (Prefix, error) {
	p := Prefix(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}
