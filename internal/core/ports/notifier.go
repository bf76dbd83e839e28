package ports

import "context"

// EventType names the state change a notification describes. The values
// mirror the notification collaborator's event vocabulary.
type EventType string

const (
	EventOrderPlaced         EventType = "ORDER_PLACED"
	EventOrderConfirmed      EventType = "ORDER_CONFIRMED"
	EventOrderPreparing      EventType = "ORDER_PREPARING"
	EventOrderReady          EventType = "ORDER_READY"
	EventOrderOutForDelivery EventType = "ORDER_OUT_FOR_DELIVERY"
	EventOrderDelivered      EventType = "ORDER_DELIVERED"
	EventOrderCancelled      EventType = "ORDER_CANCELLED"
	EventPaymentSuccess      EventType = "PAYMENT_SUCCESS"
	EventPaymentFailed       EventType = "PAYMENT_FAILED"
	EventDeliveryAssigned    EventType = "DELIVERY_ASSIGNED"
)

// NotificationEvent carries everything the notification collaborator needs
// to render and deliver a message. Contextual fields are populated only when
// applicable to the event type.
type NotificationEvent struct {
	Type            EventType `json:"type"`
	UserID          string    `json:"userId"`
	OrderID         string    `json:"orderId"`
	RestaurantName  string    `json:"restaurantName,omitempty"`
	OrderTotal      string    `json:"orderTotal,omitempty"`
	DeliveryAddress string    `json:"deliveryAddress,omitempty"`
	DriverName      string    `json:"driverName,omitempty"`
	FailureReason   string    `json:"failureReason,omitempty"`
}

// Notifier emits a fire-and-forget notification request after a
// state-changing operation. Rendering and delivery belong entirely to the
// notification collaborator; a Notify failure must never roll back the state
// change that triggered it, so callers log and continue.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}
