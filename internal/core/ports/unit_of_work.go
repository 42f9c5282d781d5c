package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and hands out repositories bound to the
// current transaction. Client code must explicitly manage the transaction
// lifecycle.
//
// Allocating a document number and inserting the document it identifies must
// happen inside the same unit of work, so a failed insert rolls the counter
// advance back together with it.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// WorkOrderRepository returns a WorkOrderRepository bound to the current
	// transaction started by Begin().
	WorkOrderRepository() WorkOrderRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction started by Begin().
	ShipmentRepository() ShipmentRepository

	// SequenceRepository returns a SequenceRepository bound to the current
	// transaction started by Begin().
	SequenceRepository() SequenceRepository
}
