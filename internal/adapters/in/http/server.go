// Package http is the inbound HTTP adapter: an echo server translating the
// REST surface into commands and queries.
package http

import (
	"net/http"

	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/queries"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler           commands.PlaceOrderCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	chargePaymentHandler        commands.ChargePaymentCommandHandler
	refundPaymentHandler        commands.RefundPaymentCommandHandler
	assignDeliveryHandler       commands.AssignDeliveryCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getOrdersByCustomerHandler   queries.GetOrdersByCustomerQueryHandler
	getOrdersByRestaurantHandler queries.GetOrdersByRestaurantQueryHandler
	getPaymentHandler            queries.GetPaymentQueryHandler
	getPaymentByOrderHandler     queries.GetPaymentByOrderQueryHandler
	getPaymentsByCustomerHandler queries.GetPaymentsByCustomerQueryHandler
	getDeliveryHandler           queries.GetDeliveryQueryHandler
	getDeliveryByOrderHandler    queries.GetDeliveryByOrderQueryHandler
	getDeliveriesByDriverHandler queries.GetDeliveriesByDriverQueryHandler
	getActiveDeliveriesHandler   queries.GetActiveDeliveriesQueryHandler
}

// ServerHandlers bundles the use case handlers the server exposes.
type ServerHandlers struct {
	PlaceOrder           commands.PlaceOrderCommandHandler
	UpdateOrderStatus    commands.UpdateOrderStatusCommandHandler
	CancelOrder          commands.CancelOrderCommandHandler
	ChargePayment        commands.ChargePaymentCommandHandler
	RefundPayment        commands.RefundPaymentCommandHandler
	AssignDelivery       commands.AssignDeliveryCommandHandler
	UpdateDeliveryStatus commands.UpdateDeliveryStatusCommandHandler

	GetOrder              queries.GetOrderQueryHandler
	GetOrdersByCustomer   queries.GetOrdersByCustomerQueryHandler
	GetOrdersByRestaurant queries.GetOrdersByRestaurantQueryHandler
	GetPayment            queries.GetPaymentQueryHandler
	GetPaymentByOrder     queries.GetPaymentByOrderQueryHandler
	GetPaymentsByCustomer queries.GetPaymentsByCustomerQueryHandler
	GetDelivery           queries.GetDeliveryQueryHandler
	GetDeliveryByOrder    queries.GetDeliveryByOrderQueryHandler
	GetDeliveriesByDriver queries.GetDeliveriesByDriverQueryHandler
	GetActiveDeliveries   queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		placeOrderHandler:            handlers.PlaceOrder,
		updateOrderStatusHandler:     handlers.UpdateOrderStatus,
		cancelOrderHandler:           handlers.CancelOrder,
		chargePaymentHandler:         handlers.ChargePayment,
		refundPaymentHandler:         handlers.RefundPayment,
		assignDeliveryHandler:        handlers.AssignDelivery,
		updateDeliveryStatusHandler:  handlers.UpdateDeliveryStatus,
		getOrderHandler:              handlers.GetOrder,
		getOrdersByCustomerHandler:   handlers.GetOrdersByCustomer,
		getOrdersByRestaurantHandler: handlers.GetOrdersByRestaurant,
		getPaymentHandler:            handlers.GetPayment,
		getPaymentByOrderHandler:     handlers.GetPaymentByOrder,
		getPaymentsByCustomerHandler: handlers.GetPaymentsByCustomer,
		getDeliveryHandler:           handlers.GetDelivery,
		getDeliveryByOrderHandler:    handlers.GetDeliveryByOrder,
		getDeliveriesByDriverHandler: handlers.GetDeliveriesByDriver,
		getActiveDeliveriesHandler:   handlers.GetActiveDeliveries,
	}
}

// RegisterRoutes attaches the REST surface under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/:orderId/payment", s.GetPaymentByOrder)
	api.GET("/orders/:orderId/delivery", s.GetDeliveryByOrder)

	api.GET("/customers/:customerId/orders", s.GetOrdersByCustomer)
	api.GET("/customers/:customerId/payments", s.GetPaymentsByCustomer)
	api.GET("/restaurants/:restaurantId/orders", s.GetOrdersByRestaurant)

	api.POST("/payments/charge", s.ChargePayment)
	api.GET("/payments/:paymentId", s.GetPayment)
	api.POST("/payments/:paymentId/refund", s.RefundPayment)

	api.POST("/deliveries", s.AssignDelivery)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.GET("/deliveries/:deliveryId", s.GetDelivery)
	api.PUT("/deliveries/:deliveryId/status", s.UpdateDeliveryStatus)
	api.GET("/drivers/:driverId/deliveries", s.GetDeliveriesByDriver)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customerId")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurantId")
	}

	lines := make([]order.Line, 0, len(req.Lines))
	for _, l := range req.Lines {
		menuItemID, lineErr := kernel.UUIDFromString(l.MenuItemID)
		if lineErr != nil {
			return badRequest(ctx, "invalid menuItemId")
		}
		unitPrice, lineErr := kernel.MoneyFromString(l.UnitPrice)
		if lineErr != nil {
			return badRequest(ctx, "invalid unitPrice")
		}
		line, lineErr := order.NewLine(menuItemID, l.Name, unitPrice, l.Quantity)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewPlaceOrderCommand(
		customerID, restaurantID, req.RestaurantName,
		req.DeliveryAddress, req.SpecialInstructions, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(placed))
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromResponse(resp))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req OrderStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	nextStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, nextStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(updated))
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(cancelled))
}

// GetOrdersByCustomer handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resps, err := s.getOrdersByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(resps))
}

// GetOrdersByRestaurant handles GET /api/v1/restaurants/:restaurantId/orders.
func (s *Server) GetOrdersByRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetOrdersByRestaurantQuery(restaurantID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resps, err := s.getOrdersByRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersFromResponses(resps))
}

// ChargePayment handles POST /api/v1/payments/charge.
func (s *Server) ChargePayment(ctx echo.Context) error {
	var req NewCharge
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customerId")
	}
	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "invalid amount")
	}
	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewChargePaymentCommand(orderID, customerID, amount, method)
	if err != nil {
		return errorJSON(ctx, err)
	}

	charged, err := s.chargePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentFromAggregate(charged))
}

// RefundPayment handles POST /api/v1/payments/:paymentId/refund.
func (s *Server) RefundPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, "invalid payment id")
	}

	var req NewRefund
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.MoneyFromString(req.Amount)
	if err != nil {
		return badRequest(ctx, "invalid amount")
	}

	cmd, err := commands.NewRefundPaymentCommand(paymentID, amount, req.Reason)
	if err != nil {
		return errorJSON(ctx, err)
	}

	refunded, err := s.refundPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromAggregate(refunded))
}

// GetPayment handles GET /api/v1/payments/:paymentId.
func (s *Server) GetPayment(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("paymentId"))
	if err != nil {
		return badRequest(ctx, "invalid payment id")
	}

	query, err := queries.NewGetPaymentQuery(paymentID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromResponse(resp))
}

// GetPaymentByOrder handles GET /api/v1/orders/:orderId/payment.
func (s *Server) GetPaymentByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetPaymentByOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getPaymentByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentFromResponse(resp))
}

// GetPaymentsByCustomer handles GET /api/v1/customers/:customerId/payments.
func (s *Server) GetPaymentsByCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetPaymentsByCustomerQuery(customerID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resps, err := s.getPaymentsByCustomerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentsFromResponses(resps))
}

// AssignDelivery handles POST /api/v1/deliveries.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var req NewDelivery
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid orderId")
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customerId")
	}
	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "invalid driverId")
	}

	cmd, err := commands.NewAssignDeliveryCommand(
		orderID, customerID, driverID,
		req.DriverName, req.DriverPhone, req.DeliveryAddress, req.Notes)
	if err != nil {
		return errorJSON(ctx, err)
	}

	assigned, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryFromAggregate(assigned))
}

// UpdateDeliveryStatus handles PUT /api/v1/deliveries/:deliveryId/status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	var req DeliveryStatusUpdate
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	nextStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, nextStatus, req.Location)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// GetDelivery handles GET /api/v1/deliveries/:deliveryId.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return badRequest(ctx, "invalid delivery id")
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromResponse(resp))
}

// GetDeliveryByOrder handles GET /api/v1/orders/:orderId/delivery.
func (s *Server) GetDeliveryByOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resp, err := s.getDeliveryByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromResponse(resp))
}

// GetDeliveriesByDriver handles GET /api/v1/drivers/:driverId/deliveries.
func (s *Server) GetDeliveriesByDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return badRequest(ctx, "invalid driver id")
	}

	query, err := queries.NewGetDeliveriesByDriverQuery(driverID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	resps, err := s.getDeliveriesByDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromResponses(resps))
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	resps, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveriesFromResponses(resps))
}
