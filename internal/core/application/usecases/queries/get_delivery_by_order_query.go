package queries

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrGetDeliveryByOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderQuery must be created via NewGetDeliveryByOrderQuery constructor",
)

// GetDeliveryByOrderQuery retrieves the delivery assigned to an order.
// At most one exists per order.
type GetDeliveryByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderQuery creates a query for an order's delivery.
func NewGetDeliveryByOrderQuery(orderID kernel.UUID) (GetDeliveryByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryByOrderQuery{}, err
	}
	return GetDeliveryByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (q GetDeliveryByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}
