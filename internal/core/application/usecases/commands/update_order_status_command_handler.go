package commands

import (
	"context"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Illegal transitions are rejected by the aggregate and surface as
// InvalidTransitionError without modifying state.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle loads the order, applies the transition and persists the result.
// The read and the conditional write happen in one transaction so concurrent
// updaters serialize on the order row. Emits the status event after commit.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
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

	if err = aggregate.UpdateStatus(cmd.NextStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if eventType, ok := orderStatusEvent(aggregate.Status()); ok {
		notify(ctx, h.notifier, h.logger, ports.NotificationEvent{
			Type:           eventType,
			UserID:         aggregate.CustomerID().String(),
			OrderID:        aggregate.ID().String(),
			RestaurantName: aggregate.RestaurantName(),
		})
	}

	return aggregate, nil
}
