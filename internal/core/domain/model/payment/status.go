package payment

import (
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment.
//
// A payment is created in PROCESSING and moves synchronously to COMPLETED or
// FAILED when the processing outcome is recorded. A COMPLETED payment may
// progress toward REFUNDED through repeated refunds:
//
//	PROCESSING ──> COMPLETED ──> PARTIALLY_REFUNDED ──> REFUNDED
//	     │              └──────────────┘ (refunds)
//	     └──> FAILED (may be superseded by a fresh charge attempt)
//
// PENDING exists for records whose processing has not started; the ledger
// itself never leaves a payment in it.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the payment record exists but processing has not started.
	Pending

	// Processing means the charge is being executed against the gateway.
	Processing

	// Completed means the charge succeeded; transactionReference is set.
	Completed

	// Failed means the charge was declined; failureReason is set.
	// A failed payment may be superseded by a new charge attempt.
	Failed

	// Refunded means the full amount has been refunded.
	Refunded

	// PartiallyRefunded means some, but not all, of the amount was refunded.
	PartiallyRefunded
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "UNKNOWN",
		Pending:           "PENDING",
		Processing:        "PROCESSING",
		Completed:         "COMPLETED",
		Failed:            "FAILED",
		Refunded:          "REFUNDED",
		PartiallyRefunded: "PARTIALLY_REFUNDED",
	}
}

// StatusFromString parses a status name such as "PARTIALLY_REFUNDED".
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the Status value is one of the defined statuses.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "PROCESSING".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsRefundable reports whether refunds are permitted from this status.
// Refunds are only permitted from COMPLETED or PARTIALLY_REFUNDED.
func (s Status) IsRefundable() bool {
	return s == Completed || s == PartiallyRefunded
}
