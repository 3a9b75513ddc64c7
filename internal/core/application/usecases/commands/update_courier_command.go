package commands

import (
	"errors"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents a partial edit of a roster courier.
// Only name and phone can be edited; availability and the order back-reference
// belong to the coordinator. Nil fields are left unchanged.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      *string
	phone     *string

	guard guard.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to patch a roster courier.
// Validates the courier ID and that provided name and phone are not empty.
func NewUpdateCourierCommand(courierID kernel.UUID, name, phone *string) (UpdateCourierCommand, error) {
	courierCommand := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courierCommand.setCourierID(courierID),
		courierCommand.setName(name),
		courierCommand.setPhone(phone),
	); err != nil {
		return UpdateCourierCommand{}, err
	}

	return courierCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCourierCommandIsNotConstructed if validation fails.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier to patch.
func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the new display name, or nil to keep the stored one.
func (c UpdateCourierCommand) Name() *string {
	return c.name
}

// Phone returns the new contact number, or nil to keep the stored one.
func (c UpdateCourierCommand) Phone() *string {
	return c.phone
}

func (c *UpdateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierCommand) setName(name *string) error {
	if name != nil && *name == "" {
		return ErrCourierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCourierCommand) setPhone(phone *string) error {
	if phone != nil && *phone == "" {
		return ErrCourierPhoneIsRequired
	}

	c.phone = phone
	return nil
}
