package commands

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand represents a request to assign a driver to an order.
// At most one delivery exists per order; a second assignment is rejected by
// the storage constraint regardless of which driver it names.
//
// The customer identifier is carried only to address the DELIVERY_ASSIGNED
// notification; it is not part of the delivery record.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	driverID        kernel.UUID
	driverName      string
	driverPhone     string
	deliveryAddress string
	notes           string

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates a command to assign a delivery.
// Validates identifiers, the driver name and the delivery address. Phone and
// notes are optional.
func NewAssignDeliveryCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	driverID kernel.UUID,
	driverName string,
	driverPhone string,
	deliveryAddress string,
	notes string,
) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{
		driverPhone: driverPhone,
		notes:       notes,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDriverID(driverID),
		cmd.setDriverName(driverName),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer to notify about the assignment.
func (c AssignDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DriverID returns the assigned driver's identifier.
func (c AssignDeliveryCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DriverName returns the assigned driver's display name.
func (c AssignDeliveryCommand) DriverName() string {
	return c.driverName
}

// DriverPhone returns the driver's contact number, if provided.
func (c AssignDeliveryCommand) DriverPhone() string {
	return c.driverPhone
}

// DeliveryAddress returns the destination address.
func (c AssignDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns free-text assignment notes, if any.
func (c AssignDeliveryCommand) Notes() string {
	return c.notes
}

func (c *AssignDeliveryCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AssignDeliveryCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *AssignDeliveryCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *AssignDeliveryCommand) setDriverName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	c.driverName = name
	return nil
}

func (c *AssignDeliveryCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.deliveryAddress = address
	return nil
}
