package commands

import (
	"errors"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand represents a request to remove a courier from the
// roster. The handler refuses removal while the courier is bound to an active
// order.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCourierCommand creates a command to remove a roster courier.
// Validates that the courier ID is valid.
func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	courierCommand := DeleteCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierCommand.setCourierID(courierID); err != nil {
		return DeleteCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteCourierCommandIsNotConstructed if validation fails.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to remove.
func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DeleteCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
