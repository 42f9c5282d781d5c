package ports

import (
	"context"

	"mes/internal/core/domain/model/docnumber"
)

// SequenceRepository allocates per-prefix, per-day sequence values for
// document numbers.
//
// Next advances the counter for prefix and returns the allocated value
// together with the calendar day (YYYYMMDD) it was allocated for. The
// advance is a single storage-enforced atomic operation: the first call of a
// day yields 1 (including after a date rollover, which resets the counter),
// and every further call that day yields the previous value plus one.
// Concurrent callers always receive distinct values; counters for different
// prefixes never interfere.
//
// On storage failure the call returns the error unmodified; no value is
// fabricated and no retry is performed. Callers may retry the whole
// operation, each retry yielding the next distinct value.
type SequenceRepository interface {
	Next(ctx context.Context, prefix docnumber.Prefix) (value int, day string, err error)
}
