// Package gateway provides the default PaymentGateway adapter: a simulated
// payment provider. It approves a configurable share of charges and declines
// the rest, which is enough to exercise every ledger path without a real
// provider account.
package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// DefaultSuccessRate is the share of charges the simulator approves.
const DefaultSuccessRate = 0.9

const declineReason = "Insufficient funds"

// Simulator is a PaymentGateway that flips a weighted coin per charge.
// Approved charges get a gateway-style transaction reference; declined ones
// get a fixed decline reason.
type Simulator struct {
	successRate float64
	roll        func() float64
}

// NewSimulator creates a simulator approving successRate of charges.
// Rates outside [0, 1] are clamped.
func NewSimulator(successRate float64) *Simulator {
	if successRate < 0 {
		successRate = 0
	}
	if successRate > 1 {
		successRate = 1
	}

	return &Simulator{
		successRate: successRate,
		roll:        rand.Float64,
	}
}

// Process simulates running a charge through a payment provider.
func (s *Simulator) Process(
	_ context.Context,
	_ kernel.UUID,
	_ kernel.Money,
	_ payment.Method,
) (ports.ProcessingOutcome, error) {
	if s.roll() >= s.successRate {
		return ports.ProcessingOutcome{
			Success:       false,
			FailureReason: declineReason,
		}, nil
	}

	return ports.ProcessingOutcome{
		Success:              true,
		TransactionReference: newTransactionReference(),
	}, nil
}

func newTransactionReference() string {
	return fmt.Sprintf("TXN-%08X", rand.Uint32())
}
