package commands

import (
	"context"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for cancellation operations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle cancels the order if its current status still allows it.
// Emits ORDER_CANCELLED after commit.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.notifier, h.logger, ports.NotificationEvent{
		Type:           ports.EventOrderCancelled,
		UserID:         aggregate.CustomerID().String(),
		OrderID:        aggregate.ID().String(),
		RestaurantName: aggregate.RestaurantName(),
	})

	return aggregate, nil
}
