package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByRestaurantQueryHandler retrieves a restaurant's orders.
type GetOrdersByRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByRestaurantQueryHandler creates a handler for restaurant
// order reads.
func NewGetOrdersByRestaurantQueryHandler(db *gorm.DB) GetOrdersByRestaurantQueryHandler {
	return GetOrdersByRestaurantQueryHandler{db: db}
}

// Handle executes the query. Returns order headers without lines, newest
// first.
func (h GetOrdersByRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByRestaurantQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = ?
		ORDER BY created_at DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanOrderRows(rows)
}
