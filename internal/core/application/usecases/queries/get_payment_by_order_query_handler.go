package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentByOrderQueryHandler retrieves an order's payment record.
type GetPaymentByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentByOrderQueryHandler creates a handler for order payment reads.
func NewGetPaymentByOrderQueryHandler(db *gorm.DB) GetPaymentByOrderQueryHandler {
	return GetPaymentByOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when the order has
// never been charged.
func (h GetPaymentByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentByOrderQuery,
) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return PaymentResponse{}, err
	}

	payments, err := scanPaymentRows(rows)
	if err != nil {
		return PaymentResponse{}, err
	}
	if len(payments) == 0 {
		return PaymentResponse{}, errs.NewObjectNotFoundError("payment for order", query.OrderID())
	}
	return payments[0], nil
}
