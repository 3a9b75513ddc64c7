package commands

import (
	"errors"
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

var (
	ErrAddPizzaCommandIsNotConstructed = errors.New(
		"AddPizzaCommand must be created via NewAddPizzaCommand constructor",
	)
	ErrPizzaNameIsRequired = errs.NewValueIsRequiredError("name")
)

// AddPizzaCommand represents a request to add a new pizza to the catalog.
// Description and image are optional; a new pizza always starts available.
//
// Example:
//
//	pizzaID := kernel.NewUUID()
//	cmd, err := NewAddPizzaCommand(pizzaID, "Margherita", "Classic tomato and mozzarella", 450, "")
//	if err != nil {
//	    return fmt.Errorf("invalid pizza data: %w", err)
//	}
//
//	handler := NewAddPizzaCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add pizza: %w", err)
//	}
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID     kernel.UUID
	name        string
	description string
	price       float64
	image       string

	guard guard.ConstructorGuard
}

// NewAddPizzaCommand creates a command to add a catalog pizza.
// Validates that the pizza ID is valid, the name is not empty, and the price
// is not negative. Returns an error if any validation fails.
func NewAddPizzaCommand(pizzaID kernel.UUID, name, description string, price float64, image string) (AddPizzaCommand, error) {
	pizzaCommand := AddPizzaCommand{
		description: description,
		image:       image,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pizzaCommand.setPizzaID(pizzaID),
		pizzaCommand.setName(name),
		pizzaCommand.setPrice(price),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return pizzaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddPizzaCommandIsNotConstructed if validation fails.
func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

// PizzaID returns the unique identifier for the new pizza.
func (c AddPizzaCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

// Name returns the display name for the new pizza.
func (c AddPizzaCommand) Name() string {
	return c.name
}

// Description returns the optional description text.
func (c AddPizzaCommand) Description() string {
	return c.description
}

// Price returns the menu price.
func (c AddPizzaCommand) Price() float64 {
	return c.price
}

// Image returns the optional image URL.
func (c AddPizzaCommand) Image() string {
	return c.image
}

func (c *AddPizzaCommand) setPizzaID(pizzaID kernel.UUID) error {
	if err := pizzaID.Validate(); err != nil {
		return err
	}

	c.pizzaID = pizzaID
	return nil
}

func (c *AddPizzaCommand) setName(name string) error {
	if name == "" {
		return ErrPizzaNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddPizzaCommand) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is less than 0", price))
	}

	c.price = price
	return nil
}
