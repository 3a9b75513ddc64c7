package order

import (
	"errors"
	"time"

	"pizzacrm/internal/core/domain/model/kernel"
	"pizzacrm/internal/pkg/errs"
	"pizzacrm/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Order represents a customer order in the pipeline. It is the aggregate root
// the coordinator works on.
//
// Order follows these rules:
//   - Must have a valid unique identifier and at least one line item
//   - The total is computed once, at creation, as the sum of line subtotals;
//     it is not recomputed on later edits
//   - Status carries no transition graph: any valid status may be set from
//     any other
//   - courierID/courierName are snapshots maintained by the coordinator; once
//     set they survive completion and cancellation as a historical record and
//     are only replaced by a reassignment
//   - createdAt is immutable; updatedAt is refreshed by every mutation
//
// Customer fields are deliberately not validated for non-emptiness here: the
// presentation layer owns required-field validation, and the core stays
// tolerant of whatever it is handed.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName, customerPhone, customerAddress describe the recipient
	customerName    string
	customerPhone   string
	customerAddress string

	// items are the snapshotted order lines (never empty)
	items []Item

	// total is the sum of line subtotals, fixed at creation time
	total float64

	// status is the current pipeline state
	status Status

	// courierID is the assigned courier (nil until first assignment, then
	// kept as history even after the order leaves the active set)
	courierID *kernel.UUID

	// courierName is the snapshotted name of the assigned courier
	courierName string

	// createdAt is the creation timestamp, immutable
	createdAt time.Time

	// updatedAt is refreshed on every mutation
	updatedAt time.Time

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order from snapshotted line items.
// The order starts at StatusPending with no courier; the total is computed
// from the items and both timestamps are set to the current time.
//
// Returns a validation error if the id is invalid or items is empty.
func NewOrder(id kernel.UUID, customerName, customerPhone, customerAddress string, items []Item) (*Order, error) {
	now := time.Now()
	o := &Order{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		status:          StatusPending,
		createdAt:       now,
		updatedAt:       now,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = sumSubtotals(o.items)
	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from the store with its
// persisted total, status, courier snapshot, and timestamps. The stored total
// is trusted as-is rather than recomputed, matching the creation-time-only
// total semantics.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerPhone, customerAddress string,
	items []Item,
	total float64,
	status Status,
	courierID *kernel.UUID,
	courierName string,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		total:           total,
		courierName:     courierName,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cid := *courierID
		o.courierID = &cid
	}

	return o, nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Validate checks if the Order was properly constructed via a constructor.
// The zero value of Order is invalid and will fail this validation.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the recipient's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the recipient's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerAddress returns the delivery address.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// Items returns the snapshotted order lines.
// The returned slice is a copy to prevent external modification.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the sum of line subtotals computed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current pipeline state.
func (o *Order) Status() Status {
	return o.status
}

// IsActive reports whether the order is still in the active set, i.e. not
// completed and not cancelled. Only active orders keep their courier busy.
func (o *Order) IsActive() bool {
	return !o.status.IsFinal()
}

// CourierID returns the assigned courier's id, or nil if no courier was ever
// assigned. The reference survives completion and cancellation as history.
// The returned pointer is a copy.
func (o *Order) CourierID() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

// CourierName returns the snapshotted name of the assigned courier.
func (o *Order) CourierName() string {
	return o.courierName
}

// CreatedAt returns the immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SetCustomerName changes the recipient's name.
func (o *Order) SetCustomerName(name string) {
	o.customerName = name
	o.touch()
}

// SetCustomerPhone changes the recipient's phone number.
func (o *Order) SetCustomerPhone(phone string) {
	o.customerPhone = phone
	o.touch()
}

// SetCustomerAddress changes the delivery address.
func (o *Order) SetCustomerAddress(address string) {
	o.customerAddress = address
	o.touch()
}

// ChangeStatus moves the order to the given status and refreshes updatedAt.
// Any valid status is accepted from any current status; there is no
// transition table. Releasing the courier when the order leaves the active
// set is the coordinator's job, not this method's.
func (o *Order) ChangeStatus(status Status) error {
	if err := o.setStatus(status); err != nil {
		return err
	}

	o.touch()
	return nil
}

// AssignCourier binds the courier snapshot to the order and forces the status
// to StatusDelivering: assigning a courier means the order has left the
// kitchen. The previous courier snapshot, if any, is overwritten.
func (o *Order) AssignCourier(courierID kernel.UUID, courierName string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	id := courierID
	o.courierID = &id
	o.courierName = courierName
	o.status = StatusDelivering
	o.touch()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now()
}

func sumSubtotals(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
