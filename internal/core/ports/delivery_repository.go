package ports

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// assignments. Like payments, deliveries carry a unique key on the order
// identifier so assignment is an atomic conditional insert.
type DeliveryRepository interface {
	// Add atomically inserts a new delivery if none exists for its order.
	// Returns ConflictError when a delivery is already assigned.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists driver-originated changes to an existing delivery.
	// Returns ObjectNotFoundError if the delivery does not exist.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery assigned to an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
