package courier

import (
	"errors"
	"fmt"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier on the roster.
// It is an aggregate root that manages courier identity and the binding to
// its current order.
//
// The aggregate maintains one invariant that the rest of the system relies
// on: status is StatusBusy if and only if currentOrderID is set. The two
// fields can only change together, through Assign and Release, so no caller
// can observe a busy courier without an order or a free courier still holding
// an order reference.
//
// Only the order coordinator is permitted to call Assign and Release; roster
// edits are limited to Rename and ChangePhone.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number
	phone string
	// status is the availability state, kept in lockstep with currentOrderID
	status Status
	// currentOrderID is the order this courier is delivering (nil when free)
	currentOrderID *kernel.UUID
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a valid Courier instance. Fresh couriers
// always start free with no current order, regardless of what a caller might
// want; binding to an order goes through the coordinator.
//
// Returns a validation error (aggregated for multiple issues) if the id is
// invalid or name/phone are empty.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		status: StatusFree,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from the store, including
// its availability state and order back-reference.
//
// The status/back-reference invariant is re-checked on restore: a busy
// courier must carry an order id and a free courier must not. Data that
// violates this is rejected rather than silently repaired.
func RestoreCourier(id kernel.UUID, name, phone string, status Status, currentOrderID *kernel.UUID) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		c.setState(status, currentOrderID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed via a constructor.
// The zero value of Courier is invalid and will fail this validation.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// Status returns the availability state of the courier.
func (c *Courier) Status() Status {
	return c.status
}

// IsBusy reports whether the courier is currently bound to an order.
func (c *Courier) IsBusy() bool {
	return c.status == StatusBusy
}

// CurrentOrderID returns the id of the order the courier is delivering.
// Returns nil when the courier is free. The returned pointer is a copy, so
// callers cannot mutate the courier's state through it.
func (c *Courier) CurrentOrderID() *kernel.UUID {
	if c.currentOrderID == nil {
		return nil
	}
	id := *c.currentOrderID
	return &id
}

// Rename changes the courier's name. The name must not be empty.
func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

// ChangePhone changes the courier's contact number. The phone must not be empty.
func (c *Courier) ChangePhone(phone string) error {
	return c.setPhone(phone)
}

// Assign binds the courier to the given order, marking it busy.
// A courier already bound to another order is rebound: the coordinator is
// responsible for releasing any previous binding first, so the roster never
// holds two couriers busy on the same order.
func (c *Courier) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	id := orderID
	c.status = StatusBusy
	c.currentOrderID = &id
	return nil
}

// Release frees the courier, clearing the order back-reference.
// Releasing an already free courier is a no-op, which makes courier release
// idempotent for callers that complete or cancel the same order twice.
func (c *Courier) Release() {
	c.status = StatusFree
	c.currentOrderID = nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

// setState restores the status/back-reference pair, enforcing that they are
// consistent with each other.
func (c *Courier) setState(status Status, currentOrderID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == StatusBusy && currentOrderID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier state is invalid",
			fmt.Errorf("busy courier %s has no current order", c.id),
		)
	}
	if status == StatusFree && currentOrderID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier state is invalid",
			fmt.Errorf("free courier %s still references order %s", c.id, currentOrderID),
		)
	}

	if currentOrderID != nil {
		if err := currentOrderID.Validate(); err != nil {
			return err
		}
		id := *currentOrderID
		c.currentOrderID = &id
	}

	c.status = status
	return nil
}
