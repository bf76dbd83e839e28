package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// ChargePaymentCommandHandler handles charging an order.
//
// Charging is a two-transaction flow around a gateway call:
//
//  1. Reserve the order's ledger slot: insert a PROCESSING record, or when
//     the slot holds a FAILED record, supersede it in place. Any other
//     occupant means the charge is a duplicate and the handler returns
//     ConflictError. Exactly one concurrent charger wins the slot; the
//     storage constraint decides, not an existence check.
//  2. Run the charge through the gateway, outside any transaction.
//  3. Record the outcome: COMPLETED with the gateway reference, or FAILED
//     with the decline reason.
//
// If the gateway call itself errors, the record stays PROCESSING and the
// stale-payment watchdog fails it later.
type ChargePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewChargePaymentCommandHandler creates a handler for charge operations.
func NewChargePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	notifier ports.Notifier,
	logger *slog.Logger,
) ChargePaymentCommandHandler {
	return ChargePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the charge command and returns the resulting payment,
// which is COMPLETED or FAILED depending on the gateway outcome.
func (h *ChargePaymentCommandHandler) Handle(ctx context.Context, cmd ChargePaymentCommand) (*payment.Payment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.reserveSlot(ctx, cmd)
	if err != nil {
		return nil, err
	}

	outcome, err := h.gateway.Process(ctx, cmd.OrderID(), cmd.Amount(), cmd.Method())
	if err != nil {
		return nil, err
	}

	if outcome.Success {
		err = aggregate.Complete(outcome.TransactionReference)
	} else {
		err = aggregate.Fail(outcome.FailureReason)
	}
	if err != nil {
		return nil, err
	}

	if err = h.recordOutcome(ctx, aggregate); err != nil {
		return nil, err
	}

	event := ports.NotificationEvent{
		Type:    ports.EventPaymentSuccess,
		UserID:  aggregate.CustomerID().String(),
		OrderID: aggregate.OrderID().String(),
	}
	if aggregate.Status() == payment.Failed {
		event.Type = ports.EventPaymentFailed
		event.FailureReason = aggregate.FailureReason()
	}
	notify(ctx, h.notifier, h.logger, event)

	return aggregate, nil
}

// reserveSlot claims the order's ledger slot for this charge attempt. The
// fast path inserts a fresh PROCESSING record; on a slot conflict the
// existing record is loaded and superseded if it is FAILED.
func (h *ChargePaymentCommandHandler) reserveSlot(ctx context.Context, cmd ChargePaymentCommand) (*payment.Payment, error) {
	fresh, err := payment.NewPayment(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.Amount(),
		cmd.Method(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, fresh); err == nil {
		if err = uow.Commit(ctx); err != nil {
			_ = uow.Rollback(ctx)
			return nil, err
		}
		return fresh, nil
	}

	_ = uow.Rollback(ctx)
	if !errors.Is(err, errs.ErrConflict) {
		return nil, err
	}

	return h.supersedeFailed(ctx, cmd)
}

// supersedeFailed retries the reservation against an occupied slot. Only a
// FAILED occupant may be replaced; any other status means the order is
// already paid or in flight, which is a conflict for the caller.
func (h *ChargePaymentCommandHandler) supersedeFailed(ctx context.Context, cmd ChargePaymentCommand) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = existing.Supersede(cmd.Amount(), cmd.Method()); err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			return nil, errs.NewConflictError("payment", cmd.OrderID())
		}
		return nil, err
	}

	if err = paymentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}

// recordOutcome persists the terminal gateway outcome in its own transaction.
func (h *ChargePaymentCommandHandler) recordOutcome(ctx context.Context, aggregate *payment.Payment) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PaymentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
