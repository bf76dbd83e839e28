package kernel_test

import (
	"testing"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_two_decimal_amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("145.00")

		require.NoError(t, err)
		assert.Equal(t, "145.00", m.String())
	})

	t.Run("rounds_to_two_decimal_places", func(t *testing.T) {
		m, err := kernel.MoneyFromString("10.005")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("rejects_non_decimal_input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("ten rand")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("line_subtotal_is_exact", func(t *testing.T) {
		price := kernel.MustMoneyFromString("50.00")

		assert.Equal(t, "100.00", price.MulInt(2).String())
	})

	t.Run("add_and_sub_round_trip", func(t *testing.T) {
		total := kernel.MustMoneyFromString("120.00").Add(kernel.MustMoneyFromString("25.00"))

		assert.Equal(t, "145.00", total.String())
		assert.Equal(t, "120.00", total.Sub(kernel.MustMoneyFromString("25.00")).String())
	})

	t.Run("no_floating_point_drift", func(t *testing.T) {
		// 0.10 added ten times must be exactly 1.00.
		sum := kernel.Money{}
		tenCents := kernel.MustMoneyFromString("0.10")
		for range 10 {
			sum = sum.Add(tenCents)
		}

		assert.True(t, sum.IsEqual(kernel.MustMoneyFromString("1.00")))
	})
}

func TestMoney_Comparisons(t *testing.T) {
	t.Run("zero_value_is_zero_amount", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsZero())
		assert.False(t, m.IsPositive())
	})

	t.Run("greater_than", func(t *testing.T) {
		bigger := kernel.MustMoneyFromString("60.01")
		smaller := kernel.MustMoneyFromString("60.00")

		assert.True(t, bigger.GreaterThan(smaller))
		assert.False(t, smaller.GreaterThan(bigger))
		assert.False(t, smaller.GreaterThan(smaller))
	})
}
