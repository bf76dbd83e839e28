package commands_test

import (
	"testing"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedDelivery(t *testing.T, orderID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		"Thabo M", "", "12 Vilakazi St", "",
	)
	require.NoError(t, err)
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_AdvancesAndStampsPickup(t *testing.T) {
	ctx := t.Context()
	d := assignedDelivery(t, kernel.NewUUID())
	require.NoError(t, d.AdvanceTo(delivery.HeadingToRestaurant, "", time.Now().UTC()))

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.PickedUp, "restaurant parking")
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		repo.On("Update", mock.Anything, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, delivery.PickedUp, updated.Status())
	assert.Equal(t, "restaurant parking", updated.CurrentLocation())
	assert.NotNil(t, updated.PickedUpAt())
	assert.Nil(t, updated.DeliveredAt())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_RejectsSkippedMilestone(t *testing.T) {
	ctx := t.Context()
	d := assignedDelivery(t, kernel.NewUUID())

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.Delivered, "")
	require.NoError(t, err)

	repo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
