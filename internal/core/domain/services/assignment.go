package services

import (
	"pizzacrm/internal/core/domain/model/courier"
	"pizzacrm/internal/core/domain/model/order"
)

// AssignmentService is the domain service coordinating the paired mutation of
// an order and its couriers. It is the only place that touches both aggregates
// in one step, which is what keeps the roster consistent: at most one courier
// is busy on any order, and a busy courier always points back at the order it
// carries.
//
// Key responsibilities:
//   - Binding a courier to an order, releasing whoever held it before
//   - Releasing a courier when its order leaves the active set
//
// Business rules:
//   - Assigning rebinds unconditionally: a busy target courier is simply
//     switched to the new order, and the order's previous courier is freed
//   - Assigning forces the order into the delivering status
//   - Release only frees a courier that actually points at the order, so a
//     stale release after a reassignment cannot strand the new binding
//
// Example usage:
//
//	assignment := services.NewAssignmentService()
//	if err := assignment.Assign(order, target, previous); err != nil {
//	    // Handle validation failure
//	    return
//	}
//	// order is delivering, target is busy, previous (if any) is free
type AssignmentService struct{}

// NewAssignmentService creates a new AssignmentService instance.
func NewAssignmentService() AssignmentService {
	return AssignmentService{}
}

// Assign binds target to the order and stamps the order with the courier
// snapshot, forcing it into the delivering status.
//
// previous is the courier currently holding the order, or nil if the order is
// unassigned; it is released first so the old binding cannot survive the
// reassignment. Passing the same courier as target and previous is allowed
// and results in a plain rebind.
//
// All three aggregates are validated before any mutation, so a failed call
// leaves every aggregate untouched.
func (s AssignmentService) Assign(o *order.Order, target *courier.Courier, previous *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return err
		}
	}

	if previous != nil && !previous.IsEqual(target) {
		previous.Release()
	}

	if err := target.Assign(o.ID()); err != nil {
		return err
	}

	return o.AssignCourier(target.ID(), target.Name())
}

// Release frees the courier bound to the order, if any.
//
// The courier is released only when its back-reference actually points at the
// order: after a reassignment the order's historical courier snapshot may name
// a courier that has since picked up other work, and releasing it then would
// break the roster. A free courier, or a courier busy on another order, is
// left alone.
func (s AssignmentService) Release(o *order.Order, c *courier.Courier) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if c == nil {
		return nil
	}
	if err := c.Validate(); err != nil {
		return err
	}

	currentOrderID := c.CurrentOrderID()
	if currentOrderID == nil || !currentOrderID.IsEqual(o.ID()) {
		return nil
	}

	c.Release()
	return nil
}
