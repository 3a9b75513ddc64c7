package pizza

import (
	"errors"
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

// Domain errors for pizza operations.
var (
	// ErrNameIsRequired is returned when attempting to create a pizza without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPizzaIsNotConstructed is returned when using an improperly initialized Pizza.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")
)

// Pizza represents a menu item in the catalog. It is an aggregate root with
// no cross-entity invariants of its own: orders snapshot a pizza's name and
// price at creation time, so deleting or editing a pizza never cascades into
// existing orders.
//
// Business rules:
//   - Pizza must have a valid UUID and a non-empty name
//   - Price must not be negative
//   - Availability controls whether the item is offered on new orders
type Pizza struct {
	// id uniquely identifies the menu item
	id kernel.UUID
	// name is the display name of the pizza
	name string
	// description lists the toppings
	description string
	// price is the current per-unit price
	price float64
	// image is a URI pointing at a product photo
	image string
	// available marks whether the item is currently offered
	available bool
	// guard ensures the pizza was properly constructed
	guard guard.ConstructorGuard
}

// NewPizza creates a new menu item. Fresh items start available; use
// SetAvailable to take them off the menu.
//
// Returns a validation error (aggregated for multiple issues) if the id is
// invalid, the name is empty, or the price is negative.
func NewPizza(id kernel.UUID, name, description string, price float64, image string) (*Pizza, error) {
	p := &Pizza{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.description = description
	p.image = image
	return p, nil
}

// RestorePizza reconstructs a Pizza aggregate from the store, including its
// availability flag. The restored pizza behaves identically to one created
// through NewPizza.
func RestorePizza(id kernel.UUID, name, description string, price float64, image string, available bool) (*Pizza, error) {
	p, err := NewPizza(id, name, description, price, image)
	if err != nil {
		return nil, err
	}

	p.available = available
	return p, nil
}

// IsEqual compares two pizzas by their unique identifiers.
func (p *Pizza) IsEqual(other *Pizza) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// Validate checks if the Pizza was properly constructed via NewPizza.
// The zero value of Pizza is invalid and will fail this validation.
func (p *Pizza) Validate() error {
	if p == nil {
		return ErrPizzaIsNotConstructed
	}
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

// ID returns the unique identifier of the menu item.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the display name of the pizza.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the topping description.
func (p *Pizza) Description() string {
	return p.description
}

// Price returns the current per-unit price.
func (p *Pizza) Price() float64 {
	return p.price
}

// Image returns the product photo URI.
func (p *Pizza) Image() string {
	return p.image
}

// Available reports whether the item is currently offered on new orders.
func (p *Pizza) Available() bool {
	return p.available
}

// Rename changes the display name. The name must not be empty.
func (p *Pizza) Rename(name string) error {
	return p.setName(name)
}

// SetDescription replaces the topping description.
func (p *Pizza) SetDescription(description string) {
	p.description = description
}

// ChangePrice sets a new per-unit price. Existing orders are unaffected
// because they carry price snapshots.
func (p *Pizza) ChangePrice(price float64) error {
	return p.setPrice(price)
}

// SetImage replaces the product photo URI.
func (p *Pizza) SetImage(image string) {
	p.image = image
}

// SetAvailable toggles whether the item is offered on new orders.
func (p *Pizza) SetAvailable(available bool) {
	p.available = available
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *Pizza) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%v is less than 0", price))
	}

	p.price = price
	return nil
}
