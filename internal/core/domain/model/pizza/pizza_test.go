package pizza_test

import (
	"testing"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/pizza"
	"pizzacrm/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPizza(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid pizza with all valid parameters", func(t *testing.T) {
		p, err := pizza.NewPizza(validID, "Margherita", "Tomato sauce, mozzarella, basil", 450, "https://img.example/margherita.jpg")

		require.NoError(t, err)
		assert.NotNil(t, p)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Margherita", p.Name())
		assert.Equal(t, "Tomato sauce, mozzarella, basil", p.Description())
		assert.InDelta(t, 450.0, p.Price(), 0.0001)
		assert.True(t, p.Available(), "new menu items start available")
	})

	t.Run("should allow zero price", func(t *testing.T) {
		p, err := pizza.NewPizza(validID, "Promo", "", 0, "")

		require.NoError(t, err)
		assert.Zero(t, p.Price())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := pizza.NewPizza(invalidID, "Margherita", "", 450, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := pizza.NewPizza(validID, "", "", 450, "")

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		p, err := pizza.NewPizza(validID, "Margherita", "", -1, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		p, err := pizza.NewPizza(invalidID, "", "", -5, "")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "price is invalid")
	})
}

func TestRestorePizza(t *testing.T) {
	t.Run("should restore unavailable pizza", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := pizza.RestorePizza(id, "Hawaiian", "Ham, pineapple", 520, "", false)

		require.NoError(t, err)
		assert.False(t, p.Available())
	})
}

func TestPizza_Mutators(t *testing.T) {
	newPizza := func(t *testing.T) *pizza.Pizza {
		t.Helper()
		p, err := pizza.NewPizza(kernel.NewUUID(), "Pepperoni", "Pepperoni, oregano", 550, "")
		require.NoError(t, err)
		return p
	}

	t.Run("rename", func(t *testing.T) {
		p := newPizza(t)

		require.NoError(t, p.Rename("Double Pepperoni"))
		assert.Equal(t, "Double Pepperoni", p.Name())

		require.Error(t, p.Rename(""))
		assert.Equal(t, "Double Pepperoni", p.Name(), "failed rename must not change state")
	})

	t.Run("change price", func(t *testing.T) {
		p := newPizza(t)

		require.NoError(t, p.ChangePrice(600))
		assert.InDelta(t, 600.0, p.Price(), 0.0001)

		require.Error(t, p.ChangePrice(-10))
		assert.InDelta(t, 600.0, p.Price(), 0.0001)
	})

	t.Run("toggle availability", func(t *testing.T) {
		p := newPizza(t)

		p.SetAvailable(false)
		assert.False(t, p.Available())

		p.SetAvailable(true)
		assert.True(t, p.Available())
	})
}

func TestPizza_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p pizza.Pizza

		require.Error(t, p.Validate())
		assert.Equal(t, pizza.ErrPizzaIsNotConstructed, p.Validate())
	})

	t.Run("nil pointer is invalid", func(t *testing.T) {
		var p *pizza.Pizza

		assert.Equal(t, pizza.ErrPizzaIsNotConstructed, p.Validate())
	})
}
