package delivery

import (
	"errors"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory functions.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the aggregate root for a delivery assignment. At most one
// delivery exists per order identifier; the storage layer enforces that with
// an atomic conditional insert.
//
// Delivery maintains these invariants:
//   - Status follows the linear progression defined in Status
//   - pickedUpAt is stamped exactly once, on the first transition into PICKED_UP
//   - deliveredAt is stamped exactly once, on the first transition into DELIVERED
//   - currentLocation is free text, overwritten opportunistically by driver updates
type Delivery struct {
	id              kernel.UUID
	orderID         kernel.UUID
	driverID        kernel.UUID
	driverName      string
	driverPhone     string
	deliveryAddress string
	notes           string
	status          Status
	currentLocation string
	pickedUpAt      *time.Time
	deliveredAt     *time.Time

	isConstructed bool
}

// NewDelivery creates a new Delivery in ASSIGNED status.
//
// Returns a validation error if any identifier is invalid or the driver name
// or delivery address is empty. Phone and notes are optional.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	driverName string,
	driverPhone string,
	deliveryAddress string,
	notes string,
) (*Delivery, error) {
	d := &Delivery{
		driverPhone:   driverPhone,
		notes:         notes,
		status:        Assigned,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setDriverID(driverID),
		d.setDriverName(driverName),
		d.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, validating the
// stored status and milestone consistency (a PICKED_UP or later record must
// carry its pickup timestamp).
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	driverID kernel.UUID,
	driverName string,
	driverPhone string,
	deliveryAddress string,
	notes string,
	status Status,
	currentLocation string,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, driverID, driverName, driverPhone, deliveryAddress, notes)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	d.status = status
	d.currentLocation = currentLocation
	d.pickedUpAt = pickedUpAt
	d.deliveredAt = deliveredAt
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed through a
// factory function.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this delivery fulfils. Unique across deliveries.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// DriverID returns the assigned driver's identifier.
func (d *Delivery) DriverID() kernel.UUID {
	return d.driverID
}

// DriverName returns the assigned driver's display name.
func (d *Delivery) DriverName() string {
	return d.driverName
}

// DriverPhone returns the driver's contact number, if provided.
func (d *Delivery) DriverPhone() string {
	return d.driverPhone
}

// DeliveryAddress returns the destination address.
func (d *Delivery) DeliveryAddress() string {
	return d.deliveryAddress
}

// Notes returns free-text assignment notes, if any.
func (d *Delivery) Notes() string {
	return d.notes
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// CurrentLocation returns the driver's last reported location.
func (d *Delivery) CurrentLocation() string {
	return d.currentLocation
}

// PickedUpAt returns the pickup timestamp, or nil before PICKED_UP.
func (d *Delivery) PickedUpAt() *time.Time {
	return d.pickedUpAt
}

// DeliveredAt returns the delivery timestamp, or nil before DELIVERED.
func (d *Delivery) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// AdvanceTo applies a driver-originated status update.
//
// The transition must be permitted by the status progression. If location is
// non-empty it overwrites the current location. Entering PICKED_UP stamps
// pickedUpAt and entering DELIVERED stamps deliveredAt with now — both
// first-write-wins, so re-sending the same update never rewrites a milestone.
func (d *Delivery) AdvanceTo(next Status, location string, now time.Time) error {
	newStatus, err := d.status.TransitionTo(next)
	if err != nil {
		return err
	}

	d.status = newStatus
	if location != "" {
		d.currentLocation = location
	}
	if newStatus == PickedUp && d.pickedUpAt == nil {
		stamp := now
		d.pickedUpAt = &stamp
	}
	if newStatus == Delivered && d.deliveredAt == nil {
		stamp := now
		d.deliveredAt = &stamp
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.orderID = id
	return nil
}

func (d *Delivery) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.driverID = id
	return nil
}

func (d *Delivery) setDriverName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.driverName = name
	return nil
}

func (d *Delivery) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	d.deliveryAddress = address
	return nil
}
