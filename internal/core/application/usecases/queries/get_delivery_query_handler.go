package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves one delivery assignment.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery reads.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no delivery
// exists for the identifier.
func (h GetDeliveryQueryHandler) Handle(ctx context.Context, query GetDeliveryQuery) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}

	deliveries, err := scanDeliveryRows(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID())
	}
	return deliveries[0], nil
}
