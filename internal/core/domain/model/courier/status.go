package courier

import (
	"fmt"

	"pizzacrm/internal/pkg/errs"
)

// Status represents the availability state of a courier.
//
// A courier is either Free (available for assignment) or Busy (bound to
// exactly one active order). The status never changes on its own: only the
// order coordinator flips it, through Courier.Assign and Courier.Release,
// keeping it consistent with the courier's current order back-reference.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusFree means the courier is available for assignment.
	StatusFree

	// StatusBusy means the courier is bound to an active order.
	StatusBusy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		StatusFree:    "free",
		StatusBusy:    "busy",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusFree: "free",
		StatusBusy: "busy",
	}
}

// StatusFromString parses a status from its string representation, as shown
// by String. Used when reconstructing couriers from the store.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid courier status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are StatusFree and StatusBusy.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid courier status", s))
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
