package commands

import (
	"errors"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/guard"
)

var ErrDeletePizzaCommandIsNotConstructed = errors.New(
	"DeletePizzaCommand must be created via NewDeletePizzaCommand constructor",
)

// DeletePizzaCommand represents a request to remove a pizza from the catalog.
// Existing orders keep their snapshotted name and price; only the catalog
// record disappears.
type DeletePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePizzaCommand creates a command to remove a catalog pizza.
// Validates that the pizza ID is valid.
func NewDeletePizzaCommand(pizzaID kernel.UUID) (DeletePizzaCommand, error) {
	pizzaCommand := DeletePizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pizzaCommand.setPizzaID(pizzaID); err != nil {
		return DeletePizzaCommand{}, err
	}

	return pizzaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeletePizzaCommandIsNotConstructed if validation fails.
func (c DeletePizzaCommand) Validate() error {
	return c.guard.Validate(ErrDeletePizzaCommandIsNotConstructed)
}

// PizzaID returns the identifier of the pizza to remove.
func (c DeletePizzaCommand) PizzaID() kernel.UUID {
	return c.pizzaID
}

func (c *DeletePizzaCommand) setPizzaID(pizzaID kernel.UUID) error {
	if err := pizzaID.Validate(); err != nil {
		return err
	}

	c.pizzaID = pizzaID
	return nil
}
