package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryByOrderQueryHandler retrieves an order's delivery assignment.
type GetDeliveryByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryByOrderQueryHandler creates a handler for order delivery
// reads.
func NewGetDeliveryByOrderQueryHandler(db *gorm.DB) GetDeliveryByOrderQueryHandler {
	return GetDeliveryByOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order has
// no delivery assigned.
func (h GetDeliveryByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByOrderQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := scanDeliveryRows(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery for order", query.OrderID())
	}
	return deliveries[0], nil
}
