// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"mes/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// WorkOrderRepoFactory provides access to the work order repository within
	// a transaction.
	WorkOrderRepoFactory interface {
		WorkOrderRepository() ports.WorkOrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a
	// transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// SequenceRepoFactory provides access to the document sequence repository
	// within a transaction.
	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	// WorkOrderUoW manages transactions for work-order operations.
	// The sequence repository is included because issuing a work order number
	// and inserting the work order must share one transaction.
	WorkOrderUoW interface {
		TxManager
		WorkOrderRepoFactory
		SequenceRepoFactory
	}

	// WorkOrderUoWFactory creates new work order unit of work instances.
	WorkOrderUoWFactory interface {
		Create() WorkOrderUoW
	}

	// ShipmentUoW manages transactions for shipment creation.
	// It spans the shipment and work order repositories (the referenced work
	// order is checked inside the transaction) plus the sequence repository
	// for the SHP numbering stream.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		WorkOrderRepoFactory
		SequenceRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)
