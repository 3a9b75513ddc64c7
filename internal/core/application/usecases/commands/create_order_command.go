package commands

import (
	"errors"
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredError("lines")
)

// OrderLine is one requested position of a new order: which pizza and how
// many. Name and price are snapshotted from the catalog by the handler, not
// carried by the line.
type OrderLine struct {
	pizzaID  kernel.UUID
	quantity int
}

// NewOrderLine creates an order line request.
// Validates that the pizza ID is valid and the quantity is positive.
func NewOrderLine(pizzaID kernel.UUID, quantity int) (OrderLine, error) {
	if err := pizzaID.Validate(); err != nil {
		return OrderLine{}, err
	}
	if quantity <= 0 {
		return OrderLine{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	return OrderLine{pizzaID: pizzaID, quantity: quantity}, nil
}

// PizzaID returns the requested catalog pizza.
func (l OrderLine) PizzaID() kernel.UUID {
	return l.pizzaID
}

// Quantity returns the requested number of units.
func (l OrderLine) Quantity() int {
	return l.quantity
}

// CreateOrderCommand represents a request to create a new customer order.
// Customer fields pass through as-is; required-field checks happen at the
// presentation boundary. The order always starts pending with no courier.
//
// Example:
//
//	line, _ := NewOrderLine(margheritaID, 2)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Anna Ivanova", "+7 (999) 111-22-33", "10 Pushkin St", []OrderLine{line})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	customerPhone   string
	customerAddress string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates that the order ID is valid and at least one line is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName, customerPhone, customerAddress string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the recipient's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Lines returns the requested order positions.
// The returned slice is a copy to prevent external modification.
func (c CreateOrderCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
