package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPaymentsByCustomerQueryHandler retrieves a customer's payment history.
type GetPaymentsByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentsByCustomerQueryHandler creates a handler for customer
// payment history reads.
func NewGetPaymentsByCustomerQueryHandler(db *gorm.DB) GetPaymentsByCustomerQueryHandler {
	return GetPaymentsByCustomerQueryHandler{db: db}
}

// Handle executes the query, newest first.
func (h GetPaymentsByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentsByCustomerQuery,
) ([]PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}

	return scanPaymentRows(rows)
}
