// Package paymentrepo provides data transfer objects and mapping functions
// for payment ledger persistence. The unique index on order_id is the
// storage-level enforcement of the one-payment-per-order invariant.
package paymentrepo

import (
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payments.
// The version column backs optimistic concurrency on updates.
type PaymentDTO struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID              uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	CustomerID           uuid.UUID       `gorm:"type:uuid;index"`
	Amount               decimal.Decimal `gorm:"type:numeric(12,2)"`
	Method               string
	Status               string          `gorm:"index"`
	TransactionReference string
	FailureReason        string
	RefundedAmount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Version              int
	CreatedAt            time.Time       `gorm:"autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:                   aggregate.ID().Bytes(),
		OrderID:              aggregate.OrderID().Bytes(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		Amount:               aggregate.Amount().Decimal(),
		Method:               aggregate.Method().String(),
		Status:               aggregate.Status().String(),
		TransactionReference: aggregate.TransactionReference(),
		FailureReason:        aggregate.FailureReason(),
		RefundedAmount:       aggregate.RefundedAmount().Decimal(),
		Version:              aggregate.Version(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, customerID,
		kernel.MoneyFromDecimal(dto.Amount), method, status,
		dto.TransactionReference, dto.FailureReason,
		kernel.MoneyFromDecimal(dto.RefundedAmount), dto.Version,
	)
}
