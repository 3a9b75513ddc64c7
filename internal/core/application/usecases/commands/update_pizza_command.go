package commands

import (
	"errors"
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

var ErrUpdatePizzaCommandIsNotConstructed = errors.New(
	"UpdatePizzaCommand must be created via NewUpdatePizzaCommand constructor",
)

// UpdatePizzaCommand represents a partial update of a catalog pizza.
// Nil fields are left unchanged; a set field replaces the stored value,
// including setting description or image to the empty string.
type UpdatePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID     kernel.UUID
	name        *string
	description *string
	price       *float64
	image       *string
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdatePizzaCommand creates a command to patch a catalog pizza.
// Validates the pizza ID, that a provided name is not empty, and that a
// provided price is not negative.
func NewUpdatePizzaCommand(
	pizzaID kernel.UUID,
	name, description *string,
	price *float64,
	image *string,
	available *bool,
) (UpdatePizzaCommand, error) {
	pizzaCommand := UpdatePizzaCommand{
		description: description,
		image:       image,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pizzaCommand.setPizzaID(pizzaID),
		pizzaCommand.setName(name),
		pizzaCommand.setPrice(price),
	); err != nil {
		return UpdatePizzaCommand{}, err
	}

	return pizzaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePizzaCommandIsNotConstructed if validation fails.
func (c UpdatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePizzaCommandIsNotConstructed)
}

// PizzaID returns the identifier of the pizza to patch.
func (c UpdatePizzaCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

// Name returns the new display name, or nil to keep the stored one.
func (c UpdatePizzaCommand) Name() *string {
	return c.name
}

// Description returns the new description, or nil to keep the stored one.
func (c UpdatePizzaCommand) Description() *string {
	return c.description
}

// Price returns the new menu price, or nil to keep the stored one.
func (c UpdatePizzaCommand) Price() *float64 {
	return c.price
}

// Image returns the new image URL, or nil to keep the stored one.
func (c UpdatePizzaCommand) Image() *string {
	return c.image
}

// Available returns the new availability flag, or nil to keep the stored one.
func (c UpdatePizzaCommand) Available() *bool {
	return c.available
}

func (c *UpdatePizzaCommand) setPizzaID(pizzaID kernel.UUID) error {
	if err := pizzaID.Validate(); err != nil {
		return err
	}

	c.pizzaID = pizzaID
	return nil
}

func (c *UpdatePizzaCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrPizzaNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdatePizzaCommand) setPrice(price *float64) error {
	if price != nil && *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is less than 0", *price))
	}

	c.price = price
	return nil
}
