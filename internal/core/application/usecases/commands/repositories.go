// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	StockLevelRepoFactory interface {
		StockLevelRepository() ports.StockLevelRepository
	}

	// OrderUoW manages transactions that only touch orders, such as
	// recording the final status after notification.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// UoW manages transactions across orders, products and stock levels.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   stockRepo := uow.StockLevelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		StockLevelRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// Collaborators of the processing handler that live outside the unit of work.
type (
	// StockReserver takes units out of stock inside the caller's transaction.
	StockReserver interface {
		Reserve(ctx context.Context, stock ports.StockLevelRepository, productID kernel.ID, quantity int, at time.Time) error
	}

	// Notifier confirms a processed order to the customer.
	Notifier interface {
		Notify(ctx context.Context, o *order.Order) error
	}
)
