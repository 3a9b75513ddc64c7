package order

import (
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
)

// Item is a value object describing one order line.
//
// The pizza name and per-unit price are snapshots taken at order creation
// time: later catalog edits or deletions do not change existing orders. The
// pizzaID is kept only as a provenance reference and may dangle once the
// pizza is removed from the menu. A line created against an already missing
// pizza carries an empty name and a zero price rather than failing the whole
// order.
type Item struct {
	// pizzaID references the catalog item the line was created from
	pizzaID kernel.UUID
	// pizzaName is the snapshotted display name (may be empty for a dangling reference)
	pizzaName string
	// quantity is the number of units ordered (always positive)
	quantity int
	// price is the snapshotted per-unit price
	price float64
}

// NewItem creates an order line with snapshotted pizza data.
// The quantity must be positive and the price must not be negative; the name
// may be empty (dangling pizza reference fallback).
func NewItem(pizzaID kernel.UUID, pizzaName string, quantity int, price float64) (Item, error) {
	if err := pizzaID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if price < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is less than 0", price))
	}

	return Item{
		pizzaID:   pizzaID,
		pizzaName: pizzaName,
		quantity:  quantity,
		price:     price,
	}, nil
}

// PizzaID returns the catalog reference the line was created from.
func (i Item) PizzaID() kernel.UUID {
	return i.pizzaID
}

// PizzaName returns the snapshotted display name.
func (i Item) PizzaName() string {
	return i.pizzaName
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the snapshotted per-unit price.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns price times quantity for this line.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}
