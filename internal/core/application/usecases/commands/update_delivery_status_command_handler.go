package commands

import (
	"context"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler handles driver progress reports.
// Milestone timestamps are stamped by the aggregate on first entry into
// PICKED_UP and DELIVERED; repeated reports of the same status are no-ops.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      func() time.Time
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for progress
// reports. Uses wall-clock time for milestone stamps.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle loads the delivery, applies the transition and persists the result
// in one transaction.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AdvanceTo(cmd.NextStatus(), cmd.Location(), h.clock().UTC()); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
