package commands

import (
	"errors"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/core/domain/model/order"
	"pizzacrm/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial edit of an order: customer fields
// and status. Nil fields are left unchanged. Line items are fixed at creation
// and cannot be edited; courier binding goes through AssignCourierCommand.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    *string
	customerPhone   *string
	customerAddress *string
	status          *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to patch an order.
// Validates the order ID and, when a status is provided, that it is one of
// the six pipeline statuses.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, customerAddress *string,
	status *order.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to patch.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the new recipient name, or nil to keep the stored one.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// CustomerPhone returns the new phone number, or nil to keep the stored one.
func (c UpdateOrderCommand) CustomerPhone() *string {
	return c.customerPhone
}

// CustomerAddress returns the new delivery address, or nil to keep the stored one.
func (c UpdateOrderCommand) CustomerAddress() *string {
	return c.customerAddress
}

// Status returns the new pipeline status, or nil to keep the stored one.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}
