package http_test

import (
	"context"
	"time"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/domain/model/docnumber"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/shipment"
	"mes/internal/core/domain/model/workorder"
	"mes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Update(ctx context.Context, wo *workorder.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	args := m.Called(ctx, id)
	if wo := args.Get(0); wo != nil {
		return wo.(*workorder.WorkOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllDueForRelease(
	ctx context.Context,
	now time.Time,
) ([]*workorder.WorkOrder, error) {
	args := m.Called(ctx, now)
	if orders := args.Get(0); orders != nil {
		return orders.([]*workorder.WorkOrder), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, s *shipment.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*shipment.Shipment), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, prefix docnumber.Prefix) (int, string, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.String(1), args.Error(2)
}

type MockWorkOrderUoW struct{ mock.Mock }

func (m *MockWorkOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockWorkOrderUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockWorkOrderUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockWorkOrderUoWFactory struct{ mock.Mock }

func (m *MockWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkOrderUoW)
}

type MockShipmentUoW struct{ mock.Mock }

func (m *MockShipmentUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipmentUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockShipmentUoW) WorkOrderRepository() ports.WorkOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkOrderRepository)
}

func (m *MockShipmentUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockShipmentUoWFactory struct{ mock.Mock }

func (m *MockShipmentUoWFactory) Create() commands.ShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentUoW)
}
