package commands

import (
	"context"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// AssignDeliveryCommandHandler handles driver assignment.
// The order's delivery slot is claimed by the atomic insert; a concurrent
// second assignment loses with ConflictError. Emits DELIVERY_ASSIGNED after
// commit.
type AssignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignDeliveryCommandHandler creates a handler for assignment operations.
func NewAssignDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle creates a delivery in ASSIGNED status and persists it.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	assigned, err := delivery.NewDelivery(
		kernel.NewUUID(),
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.DriverName(),
		cmd.DriverPhone(),
		cmd.DeliveryAddress(),
		cmd.Notes(),
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

	if err = uow.DeliveryRepository().Add(ctx, assigned); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	notify(ctx, h.notifier, h.logger, ports.NotificationEvent{
		Type:            ports.EventDeliveryAssigned,
		UserID:          cmd.CustomerID().String(),
		OrderID:         assigned.OrderID().String(),
		DriverName:      assigned.DriverName(),
		DeliveryAddress: assigned.DeliveryAddress(),
	})

	return assigned, nil
}
