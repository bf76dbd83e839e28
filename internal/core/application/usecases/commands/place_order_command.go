package commands

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new customer order.
// The lines are already-validated order.Line value objects; totals are
// derived from them by the Order aggregate, never supplied by the caller.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	restaurantName      string
	deliveryAddress     string
	specialInstructions string
	lines               []order.Line

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that both identifiers are valid, the delivery address is not
// empty and at least one line is present.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	restaurantName string,
	deliveryAddress string,
	specialInstructions string,
	lines []order.Line,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		restaurantName:      restaurantName,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the fulfilling restaurant.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// RestaurantName returns the restaurant display name.
func (c PlaceOrderCommand) RestaurantName() string {
	return c.restaurantName
}

// DeliveryAddress returns the destination address.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// SpecialInstructions returns the customer's free-text instructions.
func (c PlaceOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// Lines returns the ordered lines.
func (c PlaceOrderCommand) Lines() []order.Line {
	return c.lines
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	c.lines = lines
	return nil
}
