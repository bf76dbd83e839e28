package ports

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders have no uniqueness constraint beyond their own identifier; a
// customer may place any number of them.
type OrderRepository interface {
	// Add persists a new order aggregate together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change to an existing order.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its lines by identifier.
	// Returns ObjectNotFoundError if no order exists for the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
