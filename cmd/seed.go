package cmd

import (
	"context"
	"errors"
	"time"

	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/productrepo"
	"warehouse/internal/adapters/out/postgres/stockrepo"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// SeedDemoData stores product 100 with ten units on hand and order 1 for five
// of them, unless product 100 already exists.
func SeedDemoData(ctx context.Context, db *gorm.DB, now time.Time) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := productrepo.NewGormProductRepository(tx)

		_, err := products.Get(ctx, kernel.MustID(100))
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		widget, err := product.NewProduct(kernel.MustID(100), "Widget", kernel.MustMoney("18.99"))
		if err != nil {
			return err
		}
		level, err := product.NewStockLevel(widget.ID(), 10, now)
		if err != nil {
			return err
		}
		first, err := order.NewOrder(kernel.MustID(1), widget.ID(), 5, order.Express, "customer@example.com")
		if err != nil {
			return err
		}

		return errors.Join(
			products.Add(ctx, widget),
			stockrepo.NewGormStockLevelRepository(tx).Add(ctx, level),
			orderrepo.NewGormOrderRepository(tx).Add(ctx, first),
		)
	})
}
