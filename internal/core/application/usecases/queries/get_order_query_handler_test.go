package queries_test

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/adapters/out/postgres/stockrepo"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueryHandlersTestSuite struct {
	suite.Suite
	container    *pgcontainer.PostgresContainer
	db           *gorm.DB
	orderHandler queries.GetOrderQueryHandler
	stockHandler queries.GetStockLevelQueryHandler
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.orderHandler = queries.NewGetOrderQueryHandler(db)
	suite.stockHandler = queries.NewGetStockLevelQueryHandler(db)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, products, stock_levels").Error)
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) TestGetOrder_NewOrder_HasNoOutcome() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "")
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(ctx, o))

	query, err := queries.NewGetOrderQuery(1)
	suite.Require().NoError(err)

	response, err := suite.orderHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(1), response.ID)
	suite.Equal(int64(100), response.ProductID)
	suite.Equal(5, response.Quantity)
	suite.Equal("Express", response.DeliveryType)
	suite.Equal("New", response.Status)
	suite.Nil(response.Priority)
	suite.Nil(response.TotalCost)
	suite.Nil(response.EstimatedDeliveryDate)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_ProcessedOrder_HasOutcome() {
	ctx := context.Background()
	at := time.Date(2024, 11, 7, 10, 10, 10, 0, time.UTC)

	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "")
	suite.Require().NoError(err)
	_, err = o.StartProcessing()
	suite.Require().NoError(err)
	suite.Require().NoError(o.RecordOutcome(order.Outcome{
		Priority:              50,
		TotalCost:             kernel.MustMoney("94.95"),
		EstimatedDeliveryDate: at.AddDate(0, 0, 5),
		ProcessedAt:           at,
	}))
	suite.Require().NoError(o.Complete())
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(ctx, o))

	query, err := queries.NewGetOrderQuery(1)
	suite.Require().NoError(err)

	response, err := suite.orderHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal("Processed", response.Status)
	suite.Require().NotNil(response.Priority)
	suite.Equal(50, *response.Priority)
	suite.Require().NotNil(response.TotalCost)
	suite.Equal("94.95", response.TotalCost.StringFixed(2))
	suite.Require().NotNil(response.EstimatedDeliveryDate)
	suite.True(response.EstimatedDeliveryDate.Equal(time.Date(2024, 11, 12, 10, 10, 10, 0, time.UTC)))
}

func (suite *QueryHandlersTestSuite) TestGetOrder_Missing_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(99)
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetOrder_InvalidQuery() {
	_, err := suite.orderHandler.Handle(context.Background(), queries.GetOrderQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *QueryHandlersTestSuite) TestGetStockLevel_JoinsProductName() {
	ctx := context.Background()
	at := time.Date(2024, 11, 7, 10, 10, 10, 0, time.UTC)

	p, err := product.NewProduct(kernel.MustID(100), "Widget", kernel.MustMoney("18.99"))
	suite.Require().NoError(err)
	suite.Require().NoError(productrepo.NewGormProductRepository(suite.db).Add(ctx, p))

	level, err := product.NewStockLevel(kernel.MustID(100), 10, at)
	suite.Require().NoError(err)
	suite.Require().NoError(stockrepo.NewGormStockLevelRepository(suite.db).Add(ctx, level))

	query, err := queries.NewGetStockLevelQuery(100)
	suite.Require().NoError(err)

	response, err := suite.stockHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(int64(100), response.ProductID)
	suite.Equal("Widget", response.ProductName)
	suite.Equal(10, response.Quantity)
	suite.True(response.LastUpdated.Equal(at))
}

func (suite *QueryHandlersTestSuite) TestGetStockLevel_Missing_ReturnsNotFound() {
	query, err := queries.NewGetStockLevelQuery(7)
	suite.Require().NoError(err)

	_, err = suite.stockHandler.Handle(context.Background(), query)

	var notFound *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFound)
	suite.Equal("stockLevel", notFound.ParamName)
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
