package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"pizzacrm/internal/adapters/in/console"
	"pizzacrm/internal/adapters/out/memory"
	"pizzacrm/internal/core/application/usecases/commands"
	"pizzacrm/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcPizzaUoWFactory func() commands.PizzaUoW

func (f funcPizzaUoWFactory) Create() commands.PizzaUoW { return f() }

type funcCourierUoWFactory func() commands.CourierUoW

func (f funcCourierUoWFactory) Create() commands.CourierUoW { return f() }

type funcOrderCatalogUoWFactory func() commands.OrderCatalogUoW

func (f funcOrderCatalogUoWFactory) Create() commands.OrderCatalogUoW { return f() }

type funcUoWFactory func() commands.UoW

func (f funcUoWFactory) Create() commands.UoW { return f() }

func newTestHandlers(store *memory.Store) console.Handlers {
	factory := memory.NewUnitOfWorkFactory(store)

	pizzaFactory := funcPizzaUoWFactory(func() commands.PizzaUoW { return factory.Create() })
	courierFactory := funcCourierUoWFactory(func() commands.CourierUoW { return factory.Create() })
	orderCatalogFactory := funcOrderCatalogUoWFactory(func() commands.OrderCatalogUoW { return factory.Create() })
	uowFactory := funcUoWFactory(func() commands.UoW { return factory.Create() })

	return console.Handlers{
		AddPizza:      commands.NewAddPizzaCommandHandler(pizzaFactory),
		UpdatePizza:   commands.NewUpdatePizzaCommandHandler(pizzaFactory),
		DeletePizza:   commands.NewDeletePizzaCommandHandler(pizzaFactory),
		CreateCourier: commands.NewCreateCourierCommandHandler(courierFactory),
		UpdateCourier: commands.NewUpdateCourierCommandHandler(courierFactory),
		DeleteCourier: commands.NewDeleteCourierCommandHandler(courierFactory),
		CreateOrder:   commands.NewCreateOrderCommandHandler(orderCatalogFactory),
		UpdateOrder:   commands.NewUpdateOrderCommandHandler(uowFactory),
		AssignCourier: commands.NewAssignCourierCommandHandler(uowFactory),
		DeleteOrder:   commands.NewDeleteOrderCommandHandler(uowFactory),

		GetMenu:        queries.NewGetMenuQueryHandler(store),
		GetAllCouriers: queries.NewGetAllCouriersQueryHandler(store),
		GetAllOrders:   queries.NewGetAllOrdersQueryHandler(store),
		GetDashboard:   queries.NewGetDashboardQueryHandler(store, store, store),
	}
}

// runSession feeds the scripted lines to a console over a fresh store and
// returns everything it printed.
func runSession(t *testing.T, store *memory.Store, lines ...string) string {
	t.Helper()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	terminal := console.NewConsole(newTestHandlers(store), in, &out)
	require.NoError(t, terminal.Run(context.Background()))

	return out.String()
}

func TestConsole_FullSession(t *testing.T) {
	store := memory.NewStore()

	output := runSession(t, store,
		// Build the menu.
		"2",
		"2", "Margherita", "Classic tomato and mozzarella", "450", "",
		"2", "Pepperoni", "", "550", "",
		"1",
		"0",
		// Hire a courier.
		"3",
		"2", "Alexey Kozlov", "+7 (999) 111-22-33",
		"0",
		// Create an order with two Margheritas and assign the courier.
		"4",
		"3", "Anna Ivanova", "+7 (999) 123-45-67", "10 Pushkin St", "1", "2", "",
		"5", "1", "1",
		"1",
		"0",
		// The busy courier cannot be deleted.
		"3",
		"4", "1",
		"0",
		// Complete the order; the courier is released.
		"4",
		"4", "1", "", "", "", "completed",
		"0",
		// The dashboard now shows revenue from the completed order.
		"1",
		"0",
	)

	assert.Contains(t, output, "Pizza added.")
	assert.Contains(t, output, "Margherita")
	assert.Contains(t, output, "Pepperoni")
	assert.Contains(t, output, "Courier added.")
	assert.Contains(t, output, "Order created.")
	assert.Contains(t, output, "Courier assigned; the order is now delivering.")
	assert.Contains(t, output, "delivering")
	assert.Contains(t, output, "Cannot delete: the courier is delivering an order.")
	assert.Contains(t, output, "Order updated.")
	assert.Contains(t, output, "revenue")
	assert.Contains(t, output, "900.00")

	rows, err := store.ReadOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "completed", rows[0].Status)
	assert.Equal(t, "Alexey Kozlov", rows[0].CourierName)

	couriers, err := store.ReadCouriers(context.Background())
	require.NoError(t, err)
	require.Len(t, couriers, 1)
	assert.Equal(t, "free", couriers[0].Status)
}

func TestConsole_RejectsInvalidForm(t *testing.T) {
	store := memory.NewStore()

	output := runSession(t, store,
		"2",
		"2", "", "No name given", "450", "",
		"0",
		"0",
	)

	assert.Contains(t, output, "Error:")
	assert.NotContains(t, output, "Pizza added.")

	rows, err := store.ReadPizzas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestConsole_DeletedPizzaKeepsOrderSnapshots(t *testing.T) {
	store := memory.NewStore()

	output := runSession(t, store,
		"2",
		"2", "Margherita", "", "450", "",
		"0",
		"4",
		"3", "Anna Ivanova", "+7 (999) 123-45-67", "10 Pushkin St", "1", "1", "",
		"0",
		"2",
		"4", "1",
		"0",
		"4",
		"2", "1",
		"0",
		"0",
	)

	assert.Contains(t, output, "Pizza deleted. Existing orders keep their snapshots.")
	assert.Contains(t, output, "Margherita x1")

	rows, err := store.ReadOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Items, 1)
	assert.Equal(t, "Margherita", rows[0].Items[0].PizzaName)
}

func TestConsole_EndOfInputStopsTheLoop(t *testing.T) {
	var out bytes.Buffer
	terminal := console.NewConsole(newTestHandlers(memory.NewStore()), strings.NewReader(""), &out)

	require.NoError(t, terminal.Run(context.Background()))
	assert.Contains(t, out.String(), "Pizza CRM")
}

func TestConsole_UnknownChoiceIsReported(t *testing.T) {
	output := runSession(t, memory.NewStore(), "9", "0")

	assert.Contains(t, output, "Unknown choice.")
}
