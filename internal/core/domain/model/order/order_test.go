package order_test

import (
	"testing"
	"time"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
	"pizzacrm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeItems(t *testing.T) []order.Item {
	t.Helper()
	margherita, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, 450)
	require.NoError(t, err)
	pepperoni, err := order.NewItem(kernel.NewUUID(), "Pepperoni", 1, 550)
	require.NoError(t, err)
	return []order.Item{margherita, pepperoni}
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with computed total", func(t *testing.T) {
		items := makeItems(t)

		o, err := order.NewOrder(validID, "Anna Ivanova", "+7 (999) 111-22-33", "10 Pushkin St", items)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Anna Ivanova", o.CustomerName())
		assert.InDelta(t, 1450.0, o.Total(), 0.0001, "2x450 + 1x550")
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.CourierID())
		assert.Empty(t, o.CourierName())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Anna", "+7", "addr", makeItems(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with no items", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Anna", "+7", "addr", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should tolerate empty customer fields", func(t *testing.T) {
		// Required-field validation belongs to the presentation layer.
		o, err := order.NewOrder(validID, "", "", "", makeItems(t))

		require.NoError(t, err)
		assert.Empty(t, o.CustomerName())
	})

	t.Run("items slice is copied on construction and read", func(t *testing.T) {
		items := makeItems(t)
		o, err := order.NewOrder(validID, "Anna", "+7", "addr", items)
		require.NoError(t, err)

		read := o.Items()
		read[0] = order.Item{}

		assert.Equal(t, "Margherita", o.Items()[0].PizzaName())
	})
}

func TestNewItem(t *testing.T) {
	pizzaID := kernel.NewUUID()

	t.Run("valid item", func(t *testing.T) {
		item, err := order.NewItem(pizzaID, "Margherita", 3, 450)

		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity())
		assert.InDelta(t, 1350.0, item.Subtotal(), 0.0001)
	})

	t.Run("dangling pizza snapshot with empty name and zero price", func(t *testing.T) {
		item, err := order.NewItem(pizzaID, "", 2, 0)

		require.NoError(t, err)
		assert.Empty(t, item.PizzaName())
		assert.Zero(t, item.Subtotal())
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := order.NewItem(pizzaID, "Margherita", 0, 450)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity is invalid")
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := order.NewItem(pizzaID, "Margherita", 1, -450)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("invalid pizza id rejected", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewItem(invalidID, "Margherita", 1, 450)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t))
		require.NoError(t, err)
		return o
	}

	t.Run("any status reachable from any other", func(t *testing.T) {
		o := newOrder(t)

		statuses := []order.Status{
			order.StatusCompleted,
			order.StatusPending,
			order.StatusCancelled,
			order.StatusReady,
			order.StatusDelivering,
			order.StatusPreparing,
		}
		for _, s := range statuses {
			require.NoError(t, o.ChangeStatus(s))
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.ChangeStatus(order.StatusUnknown))
		require.Error(t, o.ChangeStatus(order.Status(42)))
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("refreshes updatedAt and keeps createdAt", func(t *testing.T) {
		o := newOrder(t)
		created := o.CreatedAt()
		before := o.UpdatedAt()

		time.Sleep(time.Millisecond)
		require.NoError(t, o.ChangeStatus(order.StatusPreparing))

		assert.Equal(t, created, o.CreatedAt())
		assert.True(t, o.UpdatedAt().After(before))
	})

	t.Run("final statuses deactivate the order", func(t *testing.T) {
		o := newOrder(t)
		assert.True(t, o.IsActive())

		require.NoError(t, o.ChangeStatus(order.StatusCompleted))
		assert.False(t, o.IsActive())

		require.NoError(t, o.ChangeStatus(order.StatusCancelled))
		assert.False(t, o.IsActive())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("binds snapshot and forces delivering", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t))
		require.NoError(t, err)
		courierID := kernel.NewUUID()

		require.NoError(t, o.AssignCourier(courierID, "Alexey Kozlov"))

		require.NotNil(t, o.CourierID())
		assert.True(t, o.CourierID().IsEqual(courierID))
		assert.Equal(t, "Alexey Kozlov", o.CourierName())
		assert.Equal(t, order.StatusDelivering, o.Status())
	})

	t.Run("reassignment overwrites the snapshot", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t))
		require.NoError(t, err)
		require.NoError(t, o.AssignCourier(kernel.NewUUID(), "First"))

		secondID := kernel.NewUUID()
		require.NoError(t, o.AssignCourier(secondID, "Second"))

		assert.True(t, o.CourierID().IsEqual(secondID))
		assert.Equal(t, "Second", o.CourierName())
	})

	t.Run("invalid courier id rejected", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t))
		require.NoError(t, err)
		var invalidID kernel.UUID

		require.Error(t, o.AssignCourier(invalidID, "Nobody"))
		assert.Nil(t, o.CourierID())
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores courier snapshot and timestamps", func(t *testing.T) {
		id := kernel.NewUUID()
		courierID := kernel.NewUUID()
		created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
		updated := time.Date(2024, 1, 15, 11, 0, 0, 0, time.UTC)
		items := makeItems(t)

		o, err := order.RestoreOrder(id, "Anna", "+7", "addr", items, 1450,
			order.StatusDelivering, &courierID, "Alexey Kozlov", created, updated)

		require.NoError(t, err)
		assert.InDelta(t, 1450.0, o.Total(), 0.0001)
		assert.Equal(t, order.StatusDelivering, o.Status())
		assert.True(t, o.CourierID().IsEqual(courierID))
		assert.Equal(t, created, o.CreatedAt())
		assert.Equal(t, updated, o.UpdatedAt())
	})

	t.Run("trusts stored total without recomputation", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t),
			999, order.StatusPending, nil, "", time.Now(), time.Now())

		require.NoError(t, err)
		assert.InDelta(t, 999.0, o.Total(), 0.0001)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "Anna", "+7", "addr", makeItems(t),
			1450, order.StatusUnknown, nil, "", time.Now(), time.Now())

		require.Error(t, err)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending, order.StatusPreparing, order.StatusReady,
			order.StatusDelivering, order.StatusCompleted, order.StatusCancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)

		_, err = order.StatusFromString("")
		require.Error(t, err)

		_, err = order.StatusFromString("Unknown")
		require.Error(t, err)
	})
}
