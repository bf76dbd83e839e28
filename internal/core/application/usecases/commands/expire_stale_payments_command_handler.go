package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// staleProcessingReason is recorded as the failure reason when the watchdog
// fails a hung payment.
const staleProcessingReason = "processing timed out"

// ExpireStalePaymentsCommandHandler sweeps the ledger for payments stuck in
// PROCESSING and fails them. Each payment is updated with the version check;
// a version conflict means a late gateway outcome landed first, so the sweep
// skips that payment instead of overwriting it.
type ExpireStalePaymentsCommandHandler struct {
	uowFactory PaymentUoWFactory
	logger     *slog.Logger
	clock      func() time.Time
}

// NewExpireStalePaymentsCommandHandler creates a handler for the stale
// payment sweep.
func NewExpireStalePaymentsCommandHandler(uowFactory PaymentUoWFactory, logger *slog.Logger) ExpireStalePaymentsCommandHandler {
	return ExpireStalePaymentsCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
		clock:      time.Now,
	}
}

// Handle fails every payment that has been PROCESSING since before
// now − olderThan. Returns the number of payments failed.
func (h *ExpireStalePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpireStalePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	cutoff := h.clock().UTC().Add(-cmd.OlderThan())
	stale, err := paymentRepo.GetStaleProcessing(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, aggregate := range stale {
		if err = aggregate.Fail(staleProcessingReason); err != nil {
			return 0, err
		}

		err = paymentRepo.Update(ctx, aggregate)
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			if h.logger != nil {
				h.logger.InfoContext(ctx, "skipping payment updated during sweep",
					"paymentId", aggregate.ID().String(),
					"orderId", aggregate.OrderID().String(),
				)
			}
			continue
		}
		if err != nil {
			return 0, err
		}
		failed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return failed, nil
}
