package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPaymentQueryHandler retrieves one payment ledger record.
type GetPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueryHandler creates a handler for single-payment reads.
func NewGetPaymentQueryHandler(db *gorm.DB) GetPaymentQueryHandler {
	return GetPaymentQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no payment
// exists for the identifier.
func (h GetPaymentQueryHandler) Handle(ctx context.Context, query GetPaymentQuery) (PaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return PaymentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = ?
	`, query.PaymentID().Bytes()).Rows()
	if err != nil {
		return PaymentResponse{}, err
	}

	payments, err := scanPaymentRows(rows)
	if err != nil {
		return PaymentResponse{}, err
	}
	if len(payments) == 0 {
		return PaymentResponse{}, errs.NewObjectNotFoundError("payment", query.PaymentID())
	}
	return payments[0], nil
}
