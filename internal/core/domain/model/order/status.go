package order

import (
	"fmt"

	"pizzacrm/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// Unlike a classic state machine, the order pipeline deliberately enforces no
// transition graph: staff can move an order from any valid status to any
// other, including reopening a completed order. The only status-driven
// behavior lives in the coordinator, which releases the bound courier when an
// order reaches a final status.
//
// Statuses:
//
//	Pending -> Preparing -> Ready -> Delivering -> Completed
//	                                           \-> Cancelled
//
// is the usual path, but nothing stops skipping or reversing steps.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly created order.
	StatusPending

	// StatusPreparing means the kitchen has started working on the order.
	StatusPreparing

	// StatusReady means the order is waiting for a courier.
	StatusReady

	// StatusDelivering means a courier is on the way. Assigning a courier
	// forces an order into this status.
	StatusDelivering

	// StatusCompleted is a final status: the order was delivered.
	StatusCompleted

	// StatusCancelled is a final status: the order was abandoned.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "pending",
		StatusPreparing:  "preparing",
		StatusReady:      "ready",
		StatusDelivering: "delivering",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "pending",
		StatusPreparing:  "preparing",
		StatusReady:      "ready",
		StatusDelivering: "delivering",
		StatusCompleted:  "completed",
		StatusCancelled:  "cancelled",
	}
}

// StatusFromString parses a status from its string representation, as shown
// by String. Used when reconstructing orders from the store and when parsing
// staff input in the admin console.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are the six pipeline statuses; StatusUnknown and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status takes the order out of the active set.
// A courier bound to an order must be released when the order reaches a final
// status.
func (s Status) IsFinal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
