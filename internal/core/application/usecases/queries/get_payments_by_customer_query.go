package queries

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrGetPaymentsByCustomerQueryIsNotConstructed = errors.New(
	"GetPaymentsByCustomerQuery must be created via NewGetPaymentsByCustomerQuery constructor",
)

// GetPaymentsByCustomerQuery retrieves a customer's payment history,
// most recent first.
type GetPaymentsByCustomerQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentsByCustomerQuery creates a query for a customer's payments.
func NewGetPaymentsByCustomerQuery(customerID kernel.UUID) (GetPaymentsByCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetPaymentsByCustomerQuery{}, err
	}
	return GetPaymentsByCustomerQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentsByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsByCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (q GetPaymentsByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}
