package sequencerepo

import (
	"context"
	"time"

	"mes/internal/core/domain/model/docnumber"

	"gorm.io/gorm"
)

// GormSequenceRepository implements SequenceRepository on a counter table.
//
// Allocation is one atomic upsert: insert the first value of the day, or
// advance the counter when the stored day matches, or reset it to 1 when the
// day rolled over. Postgres takes a row lock on the conflicting row, so
// concurrent callers serialize on the prefix and always receive distinct
// values. There is no read-modify-write cycle to race on.
type GormSequenceRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormSequenceRepository creates a sequence repository using the system
// clock.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return NewGormSequenceRepositoryWithClock(db, time.Now)
}

// NewGormSequenceRepositoryWithClock creates a sequence repository with an
// injectable clock. Tests use this to pin the calendar day.
func NewGormSequenceRepositoryWithClock(db *gorm.DB, now func() time.Time) *GormSequenceRepository {
	return &GormSequenceRepository{
		db:  db,
		now: now,
	}
}

// Next allocates the next value for prefix on the current calendar day (UTC).
// The first allocation of a day yields 1, including after a date rollover.
func (r *GormSequenceRepository) Next(ctx context.Context, prefix docnumber.Prefix) (int, string, error) {
	if err := prefix.Validate(); err != nil {
		return 0, "", err
	}

	day := r.now().UTC().Format(docnumber.DayLayout)

	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (prefix, current_val, last_date)
		VALUES (?, 1, ?)
		ON CONFLICT (prefix) DO UPDATE
		SET current_val = CASE
				WHEN document_sequences.last_date = EXCLUDED.last_date
				THEN document_sequences.current_val + 1
				ELSE 1
			END,
			last_date = EXCLUDED.last_date
		RETURNING current_val
	`, prefix.String(), day).Scan(&value).Error
	if err != nil {
		return 0, "", err
	}

	return value, day, nil
}
