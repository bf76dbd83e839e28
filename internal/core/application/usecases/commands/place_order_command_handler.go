package commands

import (
	"context"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates new orders in PENDING status with totals derived from the lines.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewPlaceOrderCommand(customerID, restaurantID, "Mama's Kitchen",
//	    "12 Vilakazi St", "", lines)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// placed is PENDING and ready for payment
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
// Requires an OrderUoWFactory for transactional persistence; the notifier is
// optional and used for fire-and-forget ORDER_PLACED events.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// The aggregate computes subtotal, delivery fee and total from the lines;
// callers never supply monetary totals. Emits ORDER_PLACED after commit.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		cmd.RestaurantName(),
		cmd.DeliveryAddress(),
		cmd.SpecialInstructions(),
		cmd.Lines(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.notifier, h.logger, ports.NotificationEvent{
		Type:            ports.EventOrderPlaced,
		UserID:          placed.CustomerID().String(),
		OrderID:         placed.ID().String(),
		RestaurantName:  placed.RestaurantName(),
		OrderTotal:      placed.Total().String(),
		DeliveryAddress: placed.DeliveryAddress(),
	})

	return placed, nil
}
