package order

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// DeliveryFee returns the fixed delivery fee applied to every order,
// 25.00 currency units.
func DeliveryFee() kernel.Money {
	return kernel.MustMoneyFromString("25.00")
}

// Order is the aggregate root for a customer order. It owns the order lines,
// the totals derived from them, and the status state machine.
//
// Order maintains these invariants:
//   - At least one line; every line is individually valid
//   - subtotal = Σ line subtotals; total = subtotal + delivery fee; both are
//     recomputed from the lines at construction and never mutated independently
//   - Status only changes through the transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id                  kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	restaurantName      string
	deliveryAddress     string
	specialInstructions string
	lines               []Line
	subtotal            kernel.Money
	deliveryFee         kernel.Money
	total               kernel.Money
	status              Status

	isConstructed bool
}

// NewOrder creates a new Order in PENDING status.
//
// Totals are computed deterministically from the lines: the subtotal is the
// sum of line subtotals and the total adds the fixed delivery fee. There is
// no uniqueness constraint on orders themselves; a customer may place many.
//
// Returns a validation error if any identifier is invalid, the delivery
// address is empty, or no lines are supplied.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	deliveryAddress string,
	specialInstructions string,
	lines []Line,
) (*Order, error) {
	o := &Order{
		restaurantName:      restaurantName,
		specialInstructions: specialInstructions,
		status:              Pending,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The totals are
// recomputed from the lines rather than trusted from storage, and the stored
// status is validated before use.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	deliveryAddress string,
	specialInstructions string,
	lines []Line,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, customerID, restaurantID, restaurantName, deliveryAddress, specialInstructions, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Prevents bypassing validation by direct struct
// instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant fulfilling the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// RestaurantName returns the restaurant display name captured at placement.
func (o *Order) RestaurantName() string {
	return o.restaurantName
}

// DeliveryAddress returns the destination address for the order.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the customer's free-text instructions, if any.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal returns the sum of all line subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// AppliedDeliveryFee returns the delivery fee applied to this order.
func (o *Order) AppliedDeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns subtotal + delivery fee. This is the amount a payment for
// the order must charge.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// UpdateStatus transitions the order to next.
//
// Returns an InvalidTransitionError if (current, next) is not in the
// transition table. Status mutation is the only effect; payments and
// deliveries are never touched from here.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel cancels the order.
//
// Cancellation is only permitted while the order is PENDING or CONFIRMED;
// the transition table encodes exactly that window, so cancelling is the
// CANCELLED transition.
func (o *Order) Cancel() error {
	return o.UpdateStatus(Cancelled)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

// setLines validates the lines and derives the totals from them.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	subtotal := kernel.Money{}
	for _, line := range lines {
		if err := line.menuItemID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("order lines", err)
		}
		subtotal = subtotal.Add(line.Subtotal())
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.subtotal = subtotal
	o.deliveryFee = DeliveryFee()
	o.total = subtotal.Add(o.deliveryFee)
	return nil
}
