package ports

import (
	"context"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for the payment ledger.
//
// The "at most one payment per order" invariant lives here: Add is an atomic
// conditional insert backed by a unique key on the order identifier, and
// Update is conditional on the aggregate's version so concurrent writers
// serialize instead of silently overwriting each other.
type PaymentRepository interface {
	// Add atomically inserts a new payment if no payment exists for its
	// order. Returns ConflictError when the order identifier slot is
	// already occupied; the conflict comes from the storage constraint,
	// never from a separate existence check.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update writes the aggregate back only if the stored version still
	// matches the aggregate's version, and bumps the stored version.
	// Returns ConcurrencyConflictError on a version mismatch and
	// ObjectNotFoundError if the payment does not exist.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the payment occupying an order's slot.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// GetStaleProcessing retrieves payments that have been stuck in
	// PROCESSING since before the cutoff. Used by the watchdog to map
	// hung processing to FAILED.
	GetStaleProcessing(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)
}
