package cmd

import (
	"log/slog"
	"time"

	httpin "github.com/NormanProjects/mashia-mesh/internal/adapters/in/http"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/gateway"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/kafkanotifier"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/postgres"
	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/commands"
	"github.com/NormanProjects/mashia-mesh/internal/core/application/usecases/queries"
	"github.com/NormanProjects/mashia-mesh/internal/core/ports"
	"github.com/NormanProjects/mashia-mesh/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Handlers are built
// on demand; the root owns only the shared pieces (DB, gateway, notifier).
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.PaymentGateway
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	var notifier ports.Notifier
	if config.KafkaBrokers != "" {
		notifier = kafkanotifier.NewNotifier(config.KafkaBrokers, config.KafkaNotificationsTopic)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway.NewSimulator(config.GatewaySuccessRate),
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateChargePaymentCommandHandler() commands.ChargePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChargePaymentCommandHandler(f, c.gateway, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundPaymentCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireStalePaymentsCommandHandler() commands.ExpireStalePaymentsCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireStalePaymentsCommandHandler(f, c.logger)
}

// CreateServerHandlers bundles every handler the HTTP server exposes.
func (c *CompositionRoot) CreateServerHandlers() httpin.ServerHandlers {
	return httpin.ServerHandlers{
		PlaceOrder:           c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		ChargePayment:        c.CreateChargePaymentCommandHandler(),
		RefundPayment:        c.CreateRefundPaymentCommandHandler(),
		AssignDelivery:       c.CreateAssignDeliveryCommandHandler(),
		UpdateDeliveryStatus: c.CreateUpdateDeliveryStatusCommandHandler(),

		GetOrder:              queries.NewGetOrderQueryHandler(c.gormDB),
		GetOrdersByCustomer:   queries.NewGetOrdersByCustomerQueryHandler(c.gormDB),
		GetOrdersByRestaurant: queries.NewGetOrdersByRestaurantQueryHandler(c.gormDB),
		GetPayment:            queries.NewGetPaymentQueryHandler(c.gormDB),
		GetPaymentByOrder:     queries.NewGetPaymentByOrderQueryHandler(c.gormDB),
		GetPaymentsByCustomer: queries.NewGetPaymentsByCustomerQueryHandler(c.gormDB),
		GetDelivery:           queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetDeliveryByOrder:    queries.NewGetDeliveryByOrderQueryHandler(c.gormDB),
		GetDeliveriesByDriver: queries.NewGetDeliveriesByDriverQueryHandler(c.gormDB),
		GetActiveDeliveries:   queries.NewGetActiveDeliveriesQueryHandler(c.gormDB),
	}
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(watchdogWindow time.Duration) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireStalePaymentsCommandHandler(), watchdogWindow, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
