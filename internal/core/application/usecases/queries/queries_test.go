package queries_test

import (
	"testing"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/queries"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrdersByCustomerQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrdersByCustomerQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetPaymentByOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetPaymentByOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetPaymentQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPaymentQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPaymentQueryIsNotConstructed)
}

func TestNewGetDeliveriesByDriverQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetDeliveriesByDriverQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestNewGetActiveDeliveriesQuery_Valid(t *testing.T) {
	query := queries.NewGetActiveDeliveriesQuery()
	require.NoError(t, query.Validate())
}

func TestGetActiveDeliveriesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveDeliveriesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveDeliveriesQueryIsNotConstructed)
}
