package ports

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
)

// ProcessingOutcome is the synchronous result of running a charge through a
// payment gateway.
type ProcessingOutcome struct {
	// Success reports whether the charge was accepted.
	Success bool

	// TransactionReference is the gateway reference, set on success.
	TransactionReference string

	// FailureReason is the decline reason, set on failure.
	FailureReason string
}

// PaymentGateway executes the processing step of a charge. The ledger never
// retries a gateway call; the caller decides whether to re-attempt.
//
// Production implementations talk to a real provider; the default adapter
// simulates one, and tests inject deterministic outcomes.
type PaymentGateway interface {
	Process(ctx context.Context, orderID kernel.UUID, amount kernel.Money, method payment.Method) (ProcessingOutcome, error)
}
