package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// refundMaxAttempts bounds the optimistic retry loop. Concurrent refunds
// against the same payment collide on the version check; each loser reloads
// and re-validates against the new remaining amount.
const refundMaxAttempts = 3

// RefundPaymentCommandHandler handles refunds against the payment ledger.
//
// The load, the domain check and the conditional write form one attempt.
// A version conflict means another refund landed in between; the attempt is
// retried from a fresh load so the ceiling is always checked against the
// latest refund total. Every other error is terminal.
type RefundPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	logger     *slog.Logger
}

// NewRefundPaymentCommandHandler creates a handler for refund operations.
func NewRefundPaymentCommandHandler(uowFactory PaymentUoWFactory, logger *slog.Logger) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the refund command and returns the updated payment.
func (h *RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= refundMaxAttempts; attempt++ {
		aggregate, err := h.tryRefund(ctx, cmd)
		if err == nil {
			if h.logger != nil {
				h.logger.InfoContext(ctx, "payment refunded",
					"paymentId", cmd.PaymentID().String(),
					"amount", cmd.Amount().String(),
					"reason", cmd.Reason(),
				)
			}
			return aggregate, nil
		}
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return nil, err
		}

		lastErr = err
		if h.logger != nil {
			h.logger.DebugContext(ctx, "refund attempt lost version race",
				"paymentId", cmd.PaymentID().String(),
				"attempt", attempt,
			)
		}
	}

	return nil, lastErr
}

func (h *RefundPaymentCommandHandler) tryRefund(ctx context.Context, cmd RefundPaymentCommand) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	aggregate, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Refund(cmd.Amount()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
