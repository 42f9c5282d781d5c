package cmd

import (
	"mes/internal/adapters/out/postgres"
	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeWorkOrderStatusCommandHandler() commands.ChangeWorkOrderStatusCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeWorkOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateReleaseDueWorkOrdersCommandHandler() commands.ReleaseDueWorkOrdersCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseDueWorkOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkOrderQueryHandler() queries.GetWorkOrderQueryHandler {
	return queries.NewGetWorkOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsQueryHandler() queries.GetShipmentsQueryHandler {
	return queries.NewGetShipmentsQueryHandler(c.gormDB)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}
