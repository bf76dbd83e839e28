// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Monetary columns use numeric(12,2); the status column stores the status
// name so the schema reads without a lookup table.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantName      string
	DeliveryAddress     string
	SpecialInstructions string
	Status              string          `gorm:"index"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total               decimal.Decimal `gorm:"type:numeric(12,2)"`
	Lines               []OrderLineDTO  `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt           time.Time       `gorm:"autoCreateTime"`
	UpdatedAt           time.Time       `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. Lines are immutable after
// placement; they are written once with the order and never updated.
type OrderLineDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID uuid.UUID `gorm:"type:uuid"`
	Name       string
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity   int
	Subtotal   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName overrides GORM's default naming to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Name:       line.Name(),
			UnitPrice:  line.UnitPrice().Decimal(),
			Quantity:   line.Quantity(),
			Subtotal:   line.Subtotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		RestaurantName:      aggregate.RestaurantName(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Status:              aggregate.Status().String(),
		Subtotal:            aggregate.Subtotal().Decimal(),
		DeliveryFee:         aggregate.AppliedDeliveryFee().Decimal(),
		Total:               aggregate.Total().Decimal(),
		Lines:               lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		menuItemID, idErr := kernel.UUIDFromBytes(lineDTO.MenuItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		line, lineErr := order.NewLine(
			menuItemID, lineDTO.Name,
			kernel.MoneyFromDecimal(lineDTO.UnitPrice), lineDTO.Quantity,
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID,
		dto.RestaurantName, dto.DeliveryAddress, dto.SpecialInstructions,
		lines, status,
	)
}
