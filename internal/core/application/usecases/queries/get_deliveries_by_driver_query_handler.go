package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveriesByDriverQueryHandler retrieves a driver's delivery history.
type GetDeliveriesByDriverQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesByDriverQueryHandler creates a handler for driver
// delivery history reads.
func NewGetDeliveriesByDriverQueryHandler(db *gorm.DB) GetDeliveriesByDriverQueryHandler {
	return GetDeliveriesByDriverQueryHandler{db: db}
}

// Handle executes the query, newest first.
func (h GetDeliveriesByDriverQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesByDriverQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE driver_id = ?
		ORDER BY created_at DESC
	`, query.DriverID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanDeliveryRows(rows)
}
