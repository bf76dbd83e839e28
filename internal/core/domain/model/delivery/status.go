package delivery

import (
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Status represents the progress of a delivery assignment.
//
// The progression is linear, with FAILED reachable from any non-terminal
// status:
//
//	ASSIGNED ──> HEADING_TO_RESTAURANT ──> PICKED_UP ──> HEADING_TO_CUSTOMER ──> DELIVERED
//	    └──────────────┴──────────────────────┴──────────────────┴──> FAILED
//
// Re-sending the current status is accepted as a no-op progression so that
// drivers can push repeated location updates without a status change;
// timestamp stamping stays first-write-wins.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status: a driver has been assigned to the order.
	Assigned

	// HeadingToRestaurant means the driver is en route to pick up the order.
	HeadingToRestaurant

	// PickedUp means the driver collected the order; pickedUpAt is stamped.
	PickedUp

	// HeadingToCustomer means the driver is en route to the customer.
	HeadingToCustomer

	// Delivered is a terminal status; deliveredAt is stamped.
	Delivered

	// Failed is a terminal status reachable from any non-terminal status.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Assigned:            "ASSIGNED",
		HeadingToRestaurant: "HEADING_TO_RESTAURANT",
		PickedUp:            "PICKED_UP",
		HeadingToCustomer:   "HEADING_TO_CUSTOMER",
		Delivered:           "DELIVERED",
		Failed:              "FAILED",
	}
}

// getSuccessor returns the next status in the linear progression.
func getSuccessor() map[Status]Status {
	return map[Status]Status{
		Assigned:            HeadingToRestaurant,
		HeadingToRestaurant: PickedUp,
		PickedUp:            HeadingToCustomer,
		HeadingToCustomer:   Delivered,
	}
}

// StatusFromString parses a status name such as "HEADING_TO_CUSTOMER".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PICKED_UP".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// CanTransitionTo reports whether the progression permits moving to next:
// the linear successor, FAILED from any non-terminal status, or the current
// status itself (repeated driver updates).
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}
	if next == s || next == Failed {
		return true
	}
	return getSuccessor()[s] == next
}

// TransitionTo performs the transition to next, returning an
// InvalidTransitionError for any pair the progression does not permit.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("delivery", s.String(), next.String())
	}
	return next, nil
}
