package http

import (
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/queries"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
)

// Error is the uniform error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the wire representation of an order.
type Order struct {
	ID                  string      `json:"id"`
	CustomerID          string      `json:"customerId"`
	RestaurantID        string      `json:"restaurantId"`
	RestaurantName      string      `json:"restaurantName"`
	DeliveryAddress     string      `json:"deliveryAddress"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	Status              string      `json:"status"`
	Subtotal            string      `json:"subtotal"`
	DeliveryFee         string      `json:"deliveryFee"`
	Total               string      `json:"total"`
	CreatedAt           *time.Time  `json:"createdAt,omitempty"`
	Lines               []OrderLine `json:"lines,omitempty"`
}

// OrderLine is the wire representation of one order line.
type OrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Subtotal   string `json:"subtotal"`
}

// Payment is the wire representation of a payment ledger record.
type Payment struct {
	ID                   string     `json:"id"`
	OrderID              string     `json:"orderId"`
	CustomerID           string     `json:"customerId"`
	Amount               string     `json:"amount"`
	Method               string     `json:"method"`
	Status               string     `json:"status"`
	TransactionReference string     `json:"transactionReference,omitempty"`
	FailureReason        string     `json:"failureReason,omitempty"`
	RefundedAmount       string     `json:"refundedAmount"`
	Version              int        `json:"version"`
	CreatedAt            *time.Time `json:"createdAt,omitempty"`
}

// Delivery is the wire representation of a delivery assignment.
type Delivery struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	DriverID        string     `json:"driverId"`
	DriverName      string     `json:"driverName"`
	DriverPhone     string     `json:"driverPhone,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	CurrentLocation string     `json:"currentLocation,omitempty"`
	PickedUpAt      *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

func orderFromAggregate(o *order.Order) Order {
	lines := make([]OrderLine, len(o.Lines()))
	for i, l := range o.Lines() {
		lines[i] = OrderLine{
			MenuItemID: l.MenuItemID().String(),
			Name:       l.Name(),
			UnitPrice:  l.UnitPrice().String(),
			Quantity:   l.Quantity(),
			Subtotal:   l.Subtotal().String(),
		}
	}

	return Order{
		ID:                  o.ID().String(),
		CustomerID:          o.CustomerID().String(),
		RestaurantID:        o.RestaurantID().String(),
		RestaurantName:      o.RestaurantName(),
		DeliveryAddress:     o.DeliveryAddress(),
		SpecialInstructions: o.SpecialInstructions(),
		Status:              o.Status().String(),
		Subtotal:            o.Subtotal().String(),
		DeliveryFee:         o.AppliedDeliveryFee().String(),
		Total:               o.Total().String(),
		Lines:               lines,
	}
}

func orderFromResponse(resp queries.OrderResponse) Order {
	lines := make([]OrderLine, len(resp.Lines))
	for i, l := range resp.Lines {
		lines[i] = OrderLine{
			MenuItemID: l.MenuItemID.String(),
			Name:       l.Name,
			UnitPrice:  l.UnitPrice.String(),
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal.String(),
		}
	}

	createdAt := resp.CreatedAt
	return Order{
		ID:                  resp.ID.String(),
		CustomerID:          resp.CustomerID.String(),
		RestaurantID:        resp.RestaurantID.String(),
		RestaurantName:      resp.RestaurantName,
		DeliveryAddress:     resp.DeliveryAddress,
		SpecialInstructions: resp.SpecialInstructions,
		Status:              resp.Status,
		Subtotal:            resp.Subtotal.String(),
		DeliveryFee:         resp.DeliveryFee.String(),
		Total:               resp.Total.String(),
		CreatedAt:           &createdAt,
		Lines:               lines,
	}
}

func ordersFromResponses(resps []queries.OrderResponse) []Order {
	orders := make([]Order, len(resps))
	for i, resp := range resps {
		orders[i] = orderFromResponse(resp)
	}
	return orders
}

func paymentFromAggregate(p *payment.Payment) Payment {
	return Payment{
		ID:                   p.ID().String(),
		OrderID:              p.OrderID().String(),
		CustomerID:           p.CustomerID().String(),
		Amount:               p.Amount().String(),
		Method:               p.Method().String(),
		Status:               p.Status().String(),
		TransactionReference: p.TransactionReference(),
		FailureReason:        p.FailureReason(),
		RefundedAmount:       p.RefundedAmount().String(),
		Version:              p.Version(),
	}
}

func paymentFromResponse(resp queries.PaymentResponse) Payment {
	createdAt := resp.CreatedAt
	return Payment{
		ID:                   resp.ID.String(),
		OrderID:              resp.OrderID.String(),
		CustomerID:           resp.CustomerID.String(),
		Amount:               resp.Amount.String(),
		Method:               resp.Method,
		Status:               resp.Status,
		TransactionReference: resp.TransactionReference,
		FailureReason:        resp.FailureReason,
		RefundedAmount:       resp.RefundedAmount.String(),
		Version:              resp.Version,
		CreatedAt:            &createdAt,
	}
}

func paymentsFromResponses(resps []queries.PaymentResponse) []Payment {
	payments := make([]Payment, len(resps))
	for i, resp := range resps {
		payments[i] = paymentFromResponse(resp)
	}
	return payments
}

func deliveryFromAggregate(d *delivery.Delivery) Delivery {
	return Delivery{
		ID:              d.ID().String(),
		OrderID:         d.OrderID().String(),
		DriverID:        d.DriverID().String(),
		DriverName:      d.DriverName(),
		DriverPhone:     d.DriverPhone(),
		DeliveryAddress: d.DeliveryAddress(),
		Notes:           d.Notes(),
		Status:          d.Status().String(),
		CurrentLocation: d.CurrentLocation(),
		PickedUpAt:      d.PickedUpAt(),
		DeliveredAt:     d.DeliveredAt(),
	}
}

func deliveryFromResponse(resp queries.DeliveryResponse) Delivery {
	createdAt := resp.CreatedAt
	return Delivery{
		ID:              resp.ID.String(),
		OrderID:         resp.OrderID.String(),
		DriverID:        resp.DriverID.String(),
		DriverName:      resp.DriverName,
		DriverPhone:     resp.DriverPhone,
		DeliveryAddress: resp.DeliveryAddress,
		Notes:           resp.Notes,
		Status:          resp.Status,
		CurrentLocation: resp.CurrentLocation,
		PickedUpAt:      resp.PickedUpAt,
		DeliveredAt:     resp.DeliveredAt,
		CreatedAt:       &createdAt,
	}
}

func deliveriesFromResponses(resps []queries.DeliveryResponse) []Delivery {
	deliveries := make([]Delivery, len(resps))
	for i, resp := range resps {
		deliveries[i] = deliveryFromResponse(resp)
	}
	return deliveries
}
