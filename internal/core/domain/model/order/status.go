package order

import (
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table; any
// (current, next) pair not listed is rejected.
//
// State transitions:
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY ──> OUT_FOR_DELIVERY ──> DELIVERED
//	   │            │
//	   └────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Cancellation is only reachable while
// the order is PENDING or CONFIRMED; once preparation starts the cancellation
// window is closed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order placement.
	Pending

	// Confirmed indicates the restaurant accepted the order.
	Confirmed

	// Preparing indicates the kitchen started preparing the order.
	Preparing

	// Ready indicates the order is packed and waiting for pickup.
	Ready

	// OutForDelivery indicates a driver is carrying the order to the customer.
	OutForDelivery

	// Delivered is a terminal status: the order reached the customer.
	Delivered

	// Cancelled is a terminal status: the order was cancelled before preparation.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		Ready:          "READY",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitionTable returns the set of allowed (current, next) pairs.
// Terminal statuses map to an empty set.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {Ready},
		Ready:          {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a status name such as "OUT_FOR_DELIVERY".
// Returns an error for names outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status value is one of the defined statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PENDING".
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the transition table lists (s, next).
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition to next.
//
// Returns:
//   - (next, nil) when (s, next) is in the transition table
//   - (Unknown, InvalidTransitionError) otherwise
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
