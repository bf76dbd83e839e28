package queries

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrGetPaymentByOrderQueryIsNotConstructed = errors.New(
	"GetPaymentByOrderQuery must be created via NewGetPaymentByOrderQuery constructor",
)

// GetPaymentByOrderQuery retrieves the payment occupying an order's ledger
// slot. At most one exists per order.
type GetPaymentByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentByOrderQuery creates a query for an order's payment.
func NewGetPaymentByOrderQuery(orderID kernel.UUID) (GetPaymentByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPaymentByOrderQuery{}, err
	}
	return GetPaymentByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the charged order.
func (q GetPaymentByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
