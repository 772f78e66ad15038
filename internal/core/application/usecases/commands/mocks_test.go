package commands_test

import (
	"context"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) GetFirstPending(ctx context.Context, afterID int64, stalledBefore time.Time) (*order.Order, error) {
	args := m.Called(ctx, afterID, stalledBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, id kernel.ID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

type MockStockLevelRepository struct{ mock.Mock }

func (m *MockStockLevelRepository) GetByProduct(ctx context.Context, productID kernel.ID) (*product.StockLevel, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.StockLevel), args.Error(1)
}

func (m *MockStockLevelRepository) Decrement(ctx context.Context, productID kernel.ID, quantity int, at time.Time) error {
	args := m.Called(ctx, productID, quantity, at)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) StockLevelRepository() ports.StockLevelRepository {
	args := m.Called()
	return args.Get(0).(ports.StockLevelRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockAuditExporter struct{ mock.Mock }

func (m *MockAuditExporter) Export(ctx context.Context, snapshot order.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockOrderProcessor struct{ mock.Mock }

func (m *MockOrderProcessor) Handle(ctx context.Context, cmd commands.ProcessOrderCommand) (commands.ProcessOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ProcessOrderResult), args.Error(1)
}
