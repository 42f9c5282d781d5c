// Package sequencerepo implements the per-prefix, per-day document number
// sequence over a single-row-per-prefix counter table.
package sequencerepo

// SequenceDTO represents one counter row per numbering stream. CurrentVal is
// the last value handed out for LastDate; the atomic upsert in the repository
// advances or resets it without a separate read.
type SequenceDTO struct {
	Prefix     string `gorm:"primaryKey"`
	CurrentVal int
	LastDate   string
}

// TableName specifies the database table name for sequence counters.
func (SequenceDTO) TableName() string {
	return "document_sequences"
}
