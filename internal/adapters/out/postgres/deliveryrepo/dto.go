// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery assignment persistence. The unique index on order_id is the
// storage-level enforcement of the one-delivery-per-order invariant.
package deliveryrepo

import (
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// Milestone timestamps are nullable; they stay NULL until the delivery first
// enters the corresponding status.
type DeliveryDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DriverID        uuid.UUID `gorm:"type:uuid;index"`
	DriverName      string
	DriverPhone     string
	DeliveryAddress string
	Notes           string
	Status          string `gorm:"index"`
	CurrentLocation string
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:              aggregate.ID().Bytes(),
		OrderID:         aggregate.OrderID().Bytes(),
		DriverID:        aggregate.DriverID().Bytes(),
		DriverName:      aggregate.DriverName(),
		DriverPhone:     aggregate.DriverPhone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Notes:           aggregate.Notes(),
		Status:          aggregate.Status().String(),
		CurrentLocation: aggregate.CurrentLocation(),
		PickedUpAt:      aggregate.PickedUpAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, orderID, driverID,
		dto.DriverName, dto.DriverPhone, dto.DeliveryAddress, dto.Notes,
		status, dto.CurrentLocation, dto.PickedUpAt, dto.DeliveredAt,
	)
}
