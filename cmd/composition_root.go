package cmd

import (
	"pizzacrm/internal/adapters/in/console"
	"pizzacrm/internal/adapters/out/memory"
	"pizzacrm/internal/core/application/usecases/commands"
	"pizzacrm/internal/core/application/usecases/queries"
)

type CompositionRoot struct {
	store      *memory.Store
	uowFactory memory.UnitOfWorkFactory
}

func NewCompositionRoot(_ Config, store *memory.Store) CompositionRoot {
	return CompositionRoot{
		store:      store,
		uowFactory: *memory.NewUnitOfWorkFactory(store),
	}
}

func (c *CompositionRoot) CreateAddPizzaCommandHandler() commands.AddPizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePizzaCommandHandler() commands.UpdatePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePizzaCommandHandler() commands.DeletePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() commands.UpdateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() commands.DeleteCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCatalogUoWFactory = FuncOrderCatalogUoWFactory(func() commands.OrderCatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.store, c.store, c.store)
}

// CreateConsoleHandlers bundles every use case handler for the console adapter.
func (c *CompositionRoot) CreateConsoleHandlers() console.Handlers {
	return console.Handlers{
		AddPizza:      c.CreateAddPizzaCommandHandler(),
		UpdatePizza:   c.CreateUpdatePizzaCommandHandler(),
		DeletePizza:   c.CreateDeletePizzaCommandHandler(),
		CreateCourier: c.CreateCreateCourierCommandHandler(),
		UpdateCourier: c.CreateUpdateCourierCommandHandler(),
		DeleteCourier: c.CreateDeleteCourierCommandHandler(),
		CreateOrder:   c.CreateCreateOrderCommandHandler(),
		UpdateOrder:   c.CreateUpdateOrderCommandHandler(),
		AssignCourier: c.CreateAssignCourierCommandHandler(),
		DeleteOrder:   c.CreateDeleteOrderCommandHandler(),

		GetMenu:        c.CreateGetMenuQueryHandler(),
		GetAllCouriers: c.CreateGetAllCouriersQueryHandler(),
		GetAllOrders:   c.CreateGetAllOrdersQueryHandler(),
		GetDashboard:   c.CreateGetDashboardQueryHandler(),
	}
}

type FuncPizzaUoWFactory func() commands.PizzaUoW

func (f FuncPizzaUoWFactory) Create() commands.PizzaUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f FuncOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
