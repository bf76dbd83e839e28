package queries

import (
	"context"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order and its lines from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no order
// exists for the identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrderRows(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp := orders[0]
	if resp.Lines, err = h.loadLines(ctx, query.OrderID()); err != nil {
		return OrderResponse{}, err
	}
	return resp, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT menu_item_id, name, unit_price, quantity, subtotal
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			menuItemID          uuid.UUID
			name                string
			unitPrice, subtotal decimal.Decimal
			quantity            int
		)

		if err = rows.Scan(&menuItemID, &name, &unitPrice, &quantity, &subtotal); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return nil, idErr
		}

		lines = append(lines, OrderLineResponse{
			MenuItemID: id,
			Name:       name,
			UnitPrice:  kernel.MoneyFromDecimal(unitPrice),
			Quantity:   quantity,
			Subtotal:   kernel.MoneyFromDecimal(subtotal),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
