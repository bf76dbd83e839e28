package order_test

import (
	"testing"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, name, price string, quantity int) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), name, kernel.MustMoneyFromString(price), quantity)
	require.NoError(t, err)
	return line
}

func placedOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Mama's Kitchen", "12 Vilakazi Street, Soweto", "",
		lines,
	)
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("computes_subtotal", func(t *testing.T) {
		line := mustLine(t, "Bunny Chow", "50.00", 2)

		assert.Equal(t, "100.00", line.Subtotal().String())
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Bunny Chow", kernel.MustMoneyFromString("50.00"), 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_non_positive_price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "Bunny Chow", kernel.MustMoneyFromString("0.00"), 1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "", kernel.MustMoneyFromString("50.00"), 1)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_totals_from_lines", func(t *testing.T) {
		o := placedOrder(t,
			mustLine(t, "Bunny Chow", "50.00", 2),
			mustLine(t, "Chakalaka", "20.00", 1),
		)

		assert.Equal(t, "120.00", o.Subtotal().String())
		assert.Equal(t, "25.00", o.AppliedDeliveryFee().String())
		assert.Equal(t, "145.00", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("rejects_empty_line_list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Mama's Kitchen", "12 Vilakazi Street, Soweto", "",
			nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_empty_delivery_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Mama's Kitchen", "", "",
			[]order.Line{mustLine(t, "Bunny Chow", "50.00", 1)},
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_zero_value_line", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Mama's Kitchen", "12 Vilakazi Street, Soweto", "",
			[]order.Line{{}},
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_order_fails_validate", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_UpdateStatus(t *testing.T) {
	t.Run("full_happy_path", func(t *testing.T) {
		o := placedOrder(t, mustLine(t, "Bunny Chow", "50.00", 1))

		for _, next := range []order.Status{
			order.Confirmed, order.Preparing, order.Ready, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.UpdateStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("rejects_skipping_a_stage", func(t *testing.T) {
		o := placedOrder(t, mustLine(t, "Bunny Chow", "50.00", 1))

		err := o.UpdateStatus(order.Preparing)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("table_is_exhaustive", func(t *testing.T) {
		all := []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		}
		allowed := map[order.Status][]order.Status{
			order.Pending:        {order.Confirmed, order.Cancelled},
			order.Confirmed:      {order.Preparing, order.Cancelled},
			order.Preparing:      {order.Ready},
			order.Ready:          {order.OutForDelivery},
			order.OutForDelivery: {order.Delivered},
			order.Delivered:      {},
			order.Cancelled:      {},
		}

		for current, nexts := range allowed {
			permitted := map[order.Status]bool{}
			for _, n := range nexts {
				permitted[n] = true
			}
			for _, next := range all {
				assert.Equal(t, permitted[next], current.CanTransitionTo(next),
					"%s -> %s", current, next)
			}
		}
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("allowed_from_pending_and_confirmed", func(t *testing.T) {
		pending := placedOrder(t, mustLine(t, "Bunny Chow", "50.00", 1))
		require.NoError(t, pending.Cancel())
		assert.Equal(t, order.Cancelled, pending.Status())

		confirmed := placedOrder(t, mustLine(t, "Bunny Chow", "50.00", 1))
		require.NoError(t, confirmed.UpdateStatus(order.Confirmed))
		require.NoError(t, confirmed.Cancel())
	})

	t.Run("rejected_once_preparation_starts", func(t *testing.T) {
		o := placedOrder(t, mustLine(t, "Bunny Chow", "50.00", 1))
		require.NoError(t, o.UpdateStatus(order.Confirmed))
		require.NoError(t, o.UpdateStatus(order.Preparing))

		for {
			require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
			if o.Status() == order.Delivered {
				break
			}
			next, _ := nextInLine(o.Status())
			require.NoError(t, o.UpdateStatus(next))
		}
	})
}

func nextInLine(s order.Status) (order.Status, bool) {
	switch s {
	case order.Preparing:
		return order.Ready, true
	case order.Ready:
		return order.OutForDelivery, true
	case order.OutForDelivery:
		return order.Delivered, true
	default:
		return order.Unknown, false
	}
}

func TestRestoreOrder(t *testing.T) {
	t.Run("recomputes_totals_and_applies_status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Bunny Chow", "50.00", 2)}
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Mama's Kitchen", "12 Vilakazi Street, Soweto", "extra hot",
			lines, order.Preparing,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, "125.00", o.Total().String())
	})

	t.Run("rejects_invalid_stored_status", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "Bunny Chow", "50.00", 1)}
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Mama's Kitchen", "12 Vilakazi Street, Soweto", "",
			lines, order.Status(42),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_all_statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.Preparing, order.Ready,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects_unknown_name", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
