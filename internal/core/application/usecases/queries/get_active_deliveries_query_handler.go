package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler retrieves deliveries awaiting pickup.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// reads.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query, oldest assignment first so dispatchers see the
// longest-waiting deliveries at the top.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE status = ?
		ORDER BY created_at
	`, delivery.Assigned.String()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveryRows(rows)
}
