package commands_test

import (
	"testing"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func chargeCmd(t *testing.T, orderID kernel.UUID) commands.ChargePaymentCommand {
	t.Helper()
	cmd, err := commands.NewChargePaymentCommand(
		orderID, kernel.NewUUID(),
		kernel.MustMoneyFromString("145.00"), payment.MethodCard,
	)
	require.NoError(t, err)
	return cmd
}

func failedPayment(t *testing.T, orderID kernel.UUID) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		kernel.MustMoneyFromString("145.00"), payment.MethodCard,
	)
	require.NoError(t, err)
	require.NoError(t, p.Fail("Insufficient funds"))
	return p
}

func TestChargePaymentCommandHandler_Handle_FreshChargeSucceeds(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := chargeCmd(t, orderID)

	reserveRepo := new(MockPaymentRepository)
	reserveUoW := new(MockPaymentUoW)
	mock.InOrder(
		reserveUoW.On("Begin", ctx).Return(nil).Once(),
		reserveUoW.On("PaymentRepository").Return(reserveRepo).Once(),
		reserveRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		reserveUoW.On("Commit", ctx).Return(nil).Once(),
	)

	outcomeRepo := new(MockPaymentRepository)
	outcomeUoW := new(MockPaymentUoW)
	mock.InOrder(
		outcomeUoW.On("Begin", ctx).Return(nil).Once(),
		outcomeUoW.On("PaymentRepository").Return(outcomeRepo).Once(),
		outcomeRepo.On("Update", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		outcomeUoW.On("Commit", ctx).Return(nil).Once(),
		outcomeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(reserveUoW).Once()
	factory.On("Create").Return(outcomeUoW).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Process", mock.Anything, orderID, cmd.Amount(), payment.MethodCard).
		Return(ports.ProcessingOutcome{Success: true, TransactionReference: "TXN-9F3A27BC"}, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e ports.NotificationEvent) bool {
		return e.Type == ports.EventPaymentSuccess && e.OrderID == orderID.String()
	})).Return(nil).Once()

	h := commands.NewChargePaymentCommandHandler(factory, gateway, notifier, nil)
	charged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, payment.Completed, charged.Status())
	assert.Equal(t, "TXN-9F3A27BC", charged.TransactionReference())
	gateway.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChargePaymentCommandHandler_Handle_DeclinedChargeRecordsFailure(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := chargeCmd(t, orderID)

	reserveRepo := new(MockPaymentRepository)
	reserveUoW := new(MockPaymentUoW)
	mock.InOrder(
		reserveUoW.On("Begin", ctx).Return(nil).Once(),
		reserveUoW.On("PaymentRepository").Return(reserveRepo).Once(),
		reserveRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		reserveUoW.On("Commit", ctx).Return(nil).Once(),
	)

	outcomeRepo := new(MockPaymentRepository)
	outcomeUoW := new(MockPaymentUoW)
	mock.InOrder(
		outcomeUoW.On("Begin", ctx).Return(nil).Once(),
		outcomeUoW.On("PaymentRepository").Return(outcomeRepo).Once(),
		outcomeRepo.On("Update", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		outcomeUoW.On("Commit", ctx).Return(nil).Once(),
		outcomeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(reserveUoW).Once()
	factory.On("Create").Return(outcomeUoW).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Process", mock.Anything, orderID, cmd.Amount(), payment.MethodCard).
		Return(ports.ProcessingOutcome{Success: false, FailureReason: "Insufficient funds"}, nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(e ports.NotificationEvent) bool {
		return e.Type == ports.EventPaymentFailed && e.FailureReason == "Insufficient funds"
	})).Return(nil).Once()

	h := commands.NewChargePaymentCommandHandler(factory, gateway, notifier, nil)
	charged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, payment.Failed, charged.Status())
	assert.Equal(t, "Insufficient funds", charged.FailureReason())
}

func TestChargePaymentCommandHandler_Handle_SupersedesFailedOccupant(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := chargeCmd(t, orderID)
	existing := failedPayment(t, orderID)

	insertRepo := new(MockPaymentRepository)
	insertUoW := new(MockPaymentUoW)
	mock.InOrder(
		insertUoW.On("Begin", ctx).Return(nil).Once(),
		insertUoW.On("PaymentRepository").Return(insertRepo).Once(),
		insertRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Return(errs.NewConflictError("payment", orderID)).Once(),
		insertUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	supersedeRepo := new(MockPaymentRepository)
	supersedeUoW := new(MockPaymentUoW)
	mock.InOrder(
		supersedeUoW.On("Begin", ctx).Return(nil).Once(),
		supersedeUoW.On("PaymentRepository").Return(supersedeRepo).Once(),
		supersedeRepo.On("GetByOrderID", mock.Anything, orderID).Return(existing, nil).Once(),
		supersedeRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		supersedeUoW.On("Commit", ctx).Return(nil).Once(),
		supersedeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	outcomeRepo := new(MockPaymentRepository)
	outcomeUoW := new(MockPaymentUoW)
	mock.InOrder(
		outcomeUoW.On("Begin", ctx).Return(nil).Once(),
		outcomeUoW.On("PaymentRepository").Return(outcomeRepo).Once(),
		outcomeRepo.On("Update", mock.Anything, existing).Return(nil).Once(),
		outcomeUoW.On("Commit", ctx).Return(nil).Once(),
		outcomeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(insertUoW).Once()
	factory.On("Create").Return(supersedeUoW).Once()
	factory.On("Create").Return(outcomeUoW).Once()

	gateway := new(MockPaymentGateway)
	gateway.On("Process", mock.Anything, orderID, cmd.Amount(), payment.MethodCard).
		Return(ports.ProcessingOutcome{Success: true, TransactionReference: "TXN-11AA22BB"}, nil).Once()

	h := commands.NewChargePaymentCommandHandler(factory, gateway, nil, nil)
	charged, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, existing.ID(), charged.ID())
	assert.Equal(t, payment.Completed, charged.Status())
	assert.Empty(t, charged.FailureReason())
	factory.AssertExpectations(t)
}

func TestChargePaymentCommandHandler_Handle_OccupiedSlotIsConflict(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd := chargeCmd(t, orderID)

	completed := failedPayment(t, orderID)
	require.NoError(t, completed.Supersede(cmd.Amount(), payment.MethodCard))
	require.NoError(t, completed.Complete("TXN-00FF00FF"))

	insertRepo := new(MockPaymentRepository)
	insertUoW := new(MockPaymentUoW)
	mock.InOrder(
		insertUoW.On("Begin", ctx).Return(nil).Once(),
		insertUoW.On("PaymentRepository").Return(insertRepo).Once(),
		insertRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).
			Return(errs.NewConflictError("payment", orderID)).Once(),
		insertUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	supersedeRepo := new(MockPaymentRepository)
	supersedeUoW := new(MockPaymentUoW)
	mock.InOrder(
		supersedeUoW.On("Begin", ctx).Return(nil).Once(),
		supersedeUoW.On("PaymentRepository").Return(supersedeRepo).Once(),
		supersedeRepo.On("GetByOrderID", mock.Anything, orderID).Return(completed, nil).Once(),
		supersedeUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(insertUoW).Once()
	factory.On("Create").Return(supersedeUoW).Once()

	gateway := new(MockPaymentGateway)

	h := commands.NewChargePaymentCommandHandler(factory, gateway, nil, nil)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	gateway.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
