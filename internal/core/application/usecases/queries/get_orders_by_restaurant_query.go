package queries

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrGetOrdersByRestaurantQueryIsNotConstructed = errors.New(
	"GetOrdersByRestaurantQuery must be created via NewGetOrdersByRestaurantQuery constructor",
)

// GetOrdersByRestaurantQuery retrieves a restaurant's incoming orders,
// most recent first.
type GetOrdersByRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByRestaurantQuery creates a query for a restaurant's orders.
func NewGetOrdersByRestaurantQuery(restaurantID kernel.UUID) (GetOrdersByRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetOrdersByRestaurantQuery{}, err
	}
	return GetOrdersByRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant.
func (q GetOrdersByRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
