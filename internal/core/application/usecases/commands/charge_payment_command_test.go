package commands_test

import (
	"testing"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChargePaymentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChargePaymentCommand(
		orderID, kernel.NewUUID(), kernel.MustMoneyFromString("145.00"), payment.MethodEFT)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "145.00", cmd.Amount().String())
	assert.Equal(t, payment.MethodEFT, cmd.Method())
}

func TestNewChargePaymentCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewChargePaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.Money{}, payment.MethodCard)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewChargePaymentCommand_UnknownMethod(t *testing.T) {
	_, err := commands.NewChargePaymentCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.MustMoneyFromString("145.00"), payment.Method("BARTER"))
	require.Error(t, err)
}

func TestNewRefundPaymentCommand_ZeroAmount(t *testing.T) {
	_, err := commands.NewRefundPaymentCommand(kernel.NewUUID(), kernel.Money{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
