package http

// Request bodies for the command endpoints. Identifiers and money amounts
// arrive as strings and are parsed into kernel value objects before a
// command is constructed.

// NewOrderLine is one line of an order placement request.
type NewOrderLine struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
}

// NewOrder is the body of POST /orders.
type NewOrder struct {
	CustomerID          string         `json:"customerId"`
	RestaurantID        string         `json:"restaurantId"`
	RestaurantName      string         `json:"restaurantName"`
	DeliveryAddress     string         `json:"deliveryAddress"`
	SpecialInstructions string         `json:"specialInstructions"`
	Lines               []NewOrderLine `json:"lines"`
}

// OrderStatusUpdate is the body of PUT /orders/:orderId/status.
type OrderStatusUpdate struct {
	Status string `json:"status"`
}

// NewCharge is the body of POST /payments/charge.
type NewCharge struct {
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
	Amount     string `json:"amount"`
	Method     string `json:"method"`
}

// NewRefund is the body of POST /payments/:paymentId/refund.
type NewRefund struct {
	Amount string `json:"amount"`
	Reason string `json:"reason"`
}

// NewDelivery is the body of POST /deliveries.
type NewDelivery struct {
	OrderID         string `json:"orderId"`
	CustomerID      string `json:"customerId"`
	DriverID        string `json:"driverId"`
	DriverName      string `json:"driverName"`
	DriverPhone     string `json:"driverPhone"`
	DeliveryAddress string `json:"deliveryAddress"`
	Notes           string `json:"notes"`
}

// DeliveryStatusUpdate is the body of PUT /deliveries/:deliveryId/status.
type DeliveryStatusUpdate struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}
