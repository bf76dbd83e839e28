// Package queries contains read operations for the query side of the CQRS
// architecture. Handlers read directly from the database and return plain
// response structs; they never load aggregates or take part in transactions.
package queries

import (
	"database/sql"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse represents one order on the read side. Lines are populated
// only by single-order queries; list queries return header rows.
type OrderResponse struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	RestaurantID        kernel.UUID
	RestaurantName      string
	DeliveryAddress     string
	SpecialInstructions string
	Status              string
	Subtotal            kernel.Money
	DeliveryFee         kernel.Money
	Total               kernel.Money
	CreatedAt           time.Time
	Lines               []OrderLineResponse
}

// OrderLineResponse represents one line of an order.
type OrderLineResponse struct {
	MenuItemID kernel.UUID
	Name       string
	UnitPrice  kernel.Money
	Quantity   int
	Subtotal   kernel.Money
}

// PaymentResponse represents one payment ledger record on the read side.
type PaymentResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	CustomerID           kernel.UUID
	Amount               kernel.Money
	Method               string
	Status               string
	TransactionReference string
	FailureReason        string
	RefundedAmount       kernel.Money
	Version              int
	CreatedAt            time.Time
}

// DeliveryResponse represents one delivery assignment on the read side.
type DeliveryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	DriverID        kernel.UUID
	DriverName      string
	DriverPhone     string
	DeliveryAddress string
	Notes           string
	Status          string
	CurrentLocation string
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}

const orderColumns = `
	id, customer_id, restaurant_id, restaurant_name, delivery_address,
	special_instructions, status, subtotal, delivery_fee, total, created_at`

const paymentColumns = `
	id, order_id, customer_id, amount, method, status,
	transaction_reference, failure_reason, refunded_amount, version, created_at`

const deliveryColumns = `
	id, order_id, driver_id, driver_name, driver_phone, delivery_address,
	notes, status, current_location, picked_up_at, delivered_at, created_at`

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp                         OrderResponse
		id, customerID, restaurantID uuid.UUID
		subtotal, deliveryFee, total decimal.Decimal
		specialInstructions          sql.NullString
	)

	if err := rows.Scan(
		&id, &customerID, &restaurantID, &resp.RestaurantName, &resp.DeliveryAddress,
		&specialInstructions, &resp.Status, &subtotal, &deliveryFee, &total, &resp.CreatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderResponse{}, err
	}

	resp.SpecialInstructions = specialInstructions.String
	resp.Subtotal = kernel.MoneyFromDecimal(subtotal)
	resp.DeliveryFee = kernel.MoneyFromDecimal(deliveryFee)
	resp.Total = kernel.MoneyFromDecimal(total)
	return resp, nil
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func scanPaymentRow(rows *sql.Rows) (PaymentResponse, error) {
	var (
		resp                          PaymentResponse
		id, orderID, customerID       uuid.UUID
		amount, refundedAmount        decimal.Decimal
		transactionRef, failureReason sql.NullString
	)

	if err := rows.Scan(
		&id, &orderID, &customerID, &amount, &resp.Method, &resp.Status,
		&transactionRef, &failureReason, &refundedAmount, &resp.Version, &resp.CreatedAt,
	); err != nil {
		return PaymentResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return PaymentResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return PaymentResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return PaymentResponse{}, err
	}

	resp.TransactionReference = transactionRef.String
	resp.FailureReason = failureReason.String
	resp.Amount = kernel.MoneyFromDecimal(amount)
	resp.RefundedAmount = kernel.MoneyFromDecimal(refundedAmount)
	return resp, nil
}

func scanPaymentRows(rows *sql.Rows) ([]PaymentResponse, error) {
	defer rows.Close()

	payments := make([]PaymentResponse, 0)
	for rows.Next() {
		resp, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		resp                    DeliveryResponse
		id, orderID, driverID   uuid.UUID
		driverPhone, notes      sql.NullString
		currentLocation         sql.NullString
		pickedUpAt, deliveredAt sql.NullTime
	)

	if err := rows.Scan(
		&id, &orderID, &driverID, &resp.DriverName, &driverPhone, &resp.DeliveryAddress,
		&notes, &resp.Status, &currentLocation, &pickedUpAt, &deliveredAt, &resp.CreatedAt,
	); err != nil {
		return DeliveryResponse{}, err
	}

	var err error
	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
		return DeliveryResponse{}, err
	}

	resp.DriverPhone = driverPhone.String
	resp.Notes = notes.String
	resp.CurrentLocation = currentLocation.String
	if pickedUpAt.Valid {
		t := pickedUpAt.Time
		resp.PickedUpAt = &t
	}
	if deliveredAt.Valid {
		t := deliveredAt.Time
		resp.DeliveredAt = &t
	}
	return resp, nil
}

func scanDeliveryRows(rows *sql.Rows) ([]DeliveryResponse, error) {
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		resp, err := scanDeliveryRow(rows)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return deliveries, nil
}
