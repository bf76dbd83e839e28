package queries

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrGetDeliveriesByDriverQueryIsNotConstructed = errors.New(
	"GetDeliveriesByDriverQuery must be created via NewGetDeliveriesByDriverQuery constructor",
)

// GetDeliveriesByDriverQuery retrieves a driver's delivery history,
// most recent first.
type GetDeliveriesByDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveriesByDriverQuery creates a query for a driver's deliveries.
func NewGetDeliveriesByDriverQuery(driverID kernel.UUID) (GetDeliveriesByDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDeliveriesByDriverQuery{}, err
	}
	return GetDeliveriesByDriverQuery{driverID: driverID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesByDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesByDriverQueryIsNotConstructed)
}

// DriverID returns the identifier of the driver.
func (q GetDeliveriesByDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}
