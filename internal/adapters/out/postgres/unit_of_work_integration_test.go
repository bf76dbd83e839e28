package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/postgres"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/postgres/deliveryrepo"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/postgres/orderrepo"
	"github.com/NormanProjects/mashia-mesh/internal/adapters/out/postgres/paymentrepo"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/delivery"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/kernel"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/order"
	"github.com/NormanProjects/mashia-mesh/internal/core/domain/model/payment"
	"github.com/NormanProjects/mashia-mesh/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite drives a full order lifecycle through the
// unit of work: place, charge, refund, assign and progress the delivery.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgrescontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgrescontainer.Run(ctx,
		"postgres:15-alpine",
		postgrescontainer.WithDatabase("testdb"),
		postgrescontainer.WithUsername("testuser"),
		postgrescontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{}, &deliveryrepo.DeliveryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_lines, payments, deliveries").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFullOrderLifecycle() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	// Place the order.
	line, err := order.NewLine(kernel.NewUUID(), "Bunny Chow", kernel.MustMoneyFromString("60.00"), 2)
	suite.Require().NoError(err)
	placed, err := order.NewOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		"Mama's Kitchen", "12 Vilakazi St", "",
		[]order.Line{line},
	)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	// Charge it.
	charge, err := payment.NewPayment(
		kernel.NewUUID(), placed.ID(), customerID, placed.Total(), payment.MethodCard)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, charge))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(charge.Complete("TXN-9F3A27BC"))
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Update(ctx, charge))
	suite.Require().NoError(uow.Commit(ctx))

	// Refund part of it.
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.PaymentRepository().GetByOrderID(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Refund(kernel.MustMoneyFromString("45.00")))
	suite.Require().NoError(uow.PaymentRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	// Assign and progress the delivery.
	assigned, err := delivery.NewDelivery(
		kernel.NewUUID(), placed.ID(), kernel.NewUUID(),
		"Thabo M", "+27 82 000 0000", placed.DeliveryAddress(), "",
	)
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, assigned))
	suite.Require().NoError(uow.Commit(ctx))

	now := time.Now().UTC()
	suite.Require().NoError(assigned.AdvanceTo(delivery.HeadingToRestaurant, "", now))
	suite.Require().NoError(assigned.AdvanceTo(delivery.PickedUp, "restaurant", now))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Update(ctx, assigned))
	suite.Require().NoError(uow.Commit(ctx))

	// Verify final state through fresh reads.
	uow = suite.factory.Create()
	finalPayment, err := uow.PaymentRepository().GetByOrderID(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.PartiallyRefunded, finalPayment.Status())
	suite.Equal("45.00", finalPayment.RefundedAmount().String())
	suite.Equal(3, finalPayment.Version())

	finalDelivery, err := uow.DeliveryRepository().GetByOrderID(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.PickedUp, finalDelivery.Status())
	suite.Equal("restaurant", finalDelivery.CurrentLocation())
	suite.NotNil(finalDelivery.PickedUpAt())
	suite.Nil(finalDelivery.DeliveredAt())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsInsert() {
	ctx := context.Background()

	p, err := payment.NewPayment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoneyFromString("50.00"), payment.MethodEFT)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().PaymentRepository().Get(ctx, p.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSecondDeliveryForSameOrder_Conflicts() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	first, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), "Thabo M", "", "12 Vilakazi St", "")
	suite.Require().NoError(err)
	second, err := delivery.NewDelivery(
		kernel.NewUUID(), orderID, kernel.NewUUID(), "Lerato K", "", "12 Vilakazi St", "")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.DeliveryRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
