package order

import (
	"fmt"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// Line is a value object representing one menu item on an order: the item,
// its unit price at the time of ordering, the quantity, and the derived line
// subtotal.
//
// Line maintains these invariants:
//   - Unit price is strictly positive
//   - Quantity is a positive integer
//   - Subtotal always equals unitPrice × quantity and is never set directly
//
// Line is immutable once constructed.
type Line struct {
	menuItemID kernel.UUID
	name       string
	unitPrice  kernel.Money
	quantity   int
	subtotal   kernel.Money
}

// NewLine creates a validated order line. The subtotal is computed from the
// unit price and quantity; it is not accepted as input.
//
// Returns a validation error if the menu item ID is invalid, the name is
// empty, the unit price is not positive, or the quantity is not positive.
func NewLine(menuItemID kernel.UUID, name string, unitPrice kernel.Money, quantity int) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("line item name")
	}
	if !unitPrice.IsPositive() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Line{
		menuItemID: menuItemID,
		name:       name,
		unitPrice:  unitPrice,
		quantity:   quantity,
		subtotal:   unitPrice.MulInt(quantity),
	}, nil
}

// MenuItemID returns the identifier of the ordered menu item.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Name returns the menu item name captured at ordering time.
func (l Line) Name() string {
	return l.name
}

// UnitPrice returns the per-unit price captured at ordering time.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unitPrice × quantity.
func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}
