package courier_test

import (
	"testing"

	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid courier with all valid parameters", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "Ivan Petrov", "+7 (999) 123-45-67")

		require.NoError(t, err)
		assert.NotNil(t, c)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.Equal(t, "Ivan Petrov", c.Name())
		assert.Equal(t, "+7 (999) 123-45-67", c.Phone())
		assert.Equal(t, courier.StatusFree, c.Status())
		assert.Nil(t, c.CurrentOrderID(), "new couriers start without an order")
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, "Ivan", "+7 (999) 123-45-67")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "", "+7 (999) 123-45-67")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		c, err := courier.NewCourier(validID, "Ivan", "")

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreCourier(t *testing.T) {
	t.Run("should restore busy courier with order reference", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()

		c, err := courier.RestoreCourier(id, "Alexey Kozlov", "+7 (999) 345-67-89", courier.StatusBusy, &orderID)

		require.NoError(t, err)
		assert.True(t, c.IsBusy())
		require.NotNil(t, c.CurrentOrderID())
		assert.True(t, c.CurrentOrderID().IsEqual(orderID))
	})

	t.Run("should restore free courier", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Maria", "+7 (999) 234-56-78", courier.StatusFree, nil)

		require.NoError(t, err)
		assert.False(t, c.IsBusy())
		assert.Nil(t, c.CurrentOrderID())
	})

	t.Run("should reject busy courier without order reference", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ivan", "+7", courier.StatusBusy, nil)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "courier state is invalid")
	})

	t.Run("should reject free courier with order reference", func(t *testing.T) {
		orderID := kernel.NewUUID()

		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ivan", "+7", courier.StatusFree, &orderID)

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "courier state is invalid")
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		c, err := courier.RestoreCourier(kernel.NewUUID(), "Ivan", "+7", courier.StatusUnknown, nil)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestCourier_AssignAndRelease(t *testing.T) {
	newCourier := func(t *testing.T) *courier.Courier {
		t.Helper()
		c, err := courier.NewCourier(kernel.NewUUID(), "Ivan", "+7 (999) 123-45-67")
		require.NoError(t, err)
		return c
	}

	t.Run("assign marks courier busy with back-reference", func(t *testing.T) {
		c := newCourier(t)
		orderID := kernel.NewUUID()

		require.NoError(t, c.Assign(orderID))

		assert.Equal(t, courier.StatusBusy, c.Status())
		require.NotNil(t, c.CurrentOrderID())
		assert.True(t, c.CurrentOrderID().IsEqual(orderID))
	})

	t.Run("assign rejects invalid order id", func(t *testing.T) {
		c := newCourier(t)
		var invalidID kernel.UUID

		require.Error(t, c.Assign(invalidID))
		assert.Equal(t, courier.StatusFree, c.Status())
		assert.Nil(t, c.CurrentOrderID())
	})

	t.Run("release frees the courier", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.Assign(kernel.NewUUID()))

		c.Release()

		assert.Equal(t, courier.StatusFree, c.Status())
		assert.Nil(t, c.CurrentOrderID())
	})

	t.Run("release is idempotent", func(t *testing.T) {
		c := newCourier(t)
		require.NoError(t, c.Assign(kernel.NewUUID()))

		c.Release()
		c.Release()

		assert.Equal(t, courier.StatusFree, c.Status())
		assert.Nil(t, c.CurrentOrderID())
	})

	t.Run("returned order id pointer is a copy", func(t *testing.T) {
		c := newCourier(t)
		orderID := kernel.NewUUID()
		require.NoError(t, c.Assign(orderID))

		got := c.CurrentOrderID()
		*got = kernel.NewUUID()

		assert.True(t, c.CurrentOrderID().IsEqual(orderID), "external mutation must not leak into the aggregate")
	})
}

func TestCourierStatus(t *testing.T) {
	t.Run("string representations", func(t *testing.T) {
		assert.Equal(t, "free", courier.StatusFree.String())
		assert.Equal(t, "busy", courier.StatusBusy.String())
		assert.Equal(t, "Unknown", courier.StatusUnknown.String())
		assert.Equal(t, "Unknown", courier.Status(42).String())
	})

	t.Run("validation", func(t *testing.T) {
		require.NoError(t, courier.StatusFree.Validate())
		require.NoError(t, courier.StatusBusy.Validate())
		require.Error(t, courier.StatusUnknown.Validate())
		require.Error(t, courier.Status(42).Validate())
	})
}
