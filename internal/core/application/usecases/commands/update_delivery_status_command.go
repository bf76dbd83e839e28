package commands

import (
	"errors"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents a driver's progress report on a
// delivery. The optional location is free text; it overwrites the delivery's
// current location when present.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	nextStatus delivery.Status
	location   string

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a command to report delivery
// progress. Validates the delivery ID and the target status.
func NewUpdateDeliveryStatusCommand(
	deliveryID kernel.UUID,
	nextStatus delivery.Status,
	location string,
) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setNextStatus(nextStatus),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being reported on.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// NextStatus returns the reported target status.
func (c UpdateDeliveryStatusCommand) NextStatus() delivery.Status {
	return c.nextStatus
}

// Location returns the driver's reported location, if any.
func (c UpdateDeliveryStatusCommand) Location() string {
	return c.location
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setNextStatus(s delivery.Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.nextStatus = s
	return nil
}
