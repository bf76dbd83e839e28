package commands

import (
	"context"
	"log/slog"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
)

// orderStatusEvent maps an order status to the notification event announcing
// it. Pending has no mapping here because placement emits ORDER_PLACED
// directly.
func orderStatusEvent(s order.Status) (ports.EventType, bool) {
	switch s {
	case order.Confirmed:
		return ports.EventOrderConfirmed, true
	case order.Preparing:
		return ports.EventOrderPreparing, true
	case order.Ready:
		return ports.EventOrderReady, true
	case order.OutForDelivery:
		return ports.EventOrderOutForDelivery, true
	case order.Delivered:
		return ports.EventOrderDelivered, true
	case order.Cancelled:
		return ports.EventOrderCancelled, true
	default:
		return "", false
	}
}

// notify dispatches a fire-and-forget notification after a committed state
// change. Failures are logged and swallowed: the notification collaborator's
// problems must never roll back or fail the core operation.
func notify(ctx context.Context, notifier ports.Notifier, logger *slog.Logger, event ports.NotificationEvent) {
	if notifier == nil {
		return
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := notifier.Notify(ctx, event); err != nil {
		logger.WarnContext(ctx, "notification dispatch failed",
			"eventType", event.Type,
			"orderId", event.OrderID,
			"error", err,
		)
	}
}
