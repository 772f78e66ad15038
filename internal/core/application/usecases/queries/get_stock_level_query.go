package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetStockLevelQueryIsNotConstructed = errors.New(
	"GetStockLevelQuery must be created via NewGetStockLevelQuery constructor",
)

// GetStockLevelQuery reads the on-hand quantity of one product.
type GetStockLevelQuery struct {
	productID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetStockLevelQuery(productID int64) (GetStockLevelQuery, error) {
	id, err := kernel.NewID(productID)
	if err != nil {
		return GetStockLevelQuery{}, err
	}
	return GetStockLevelQuery{productID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStockLevelQuery) Validate() error {
	return q.guard.Validate(ErrGetStockLevelQueryIsNotConstructed)
}

func (q GetStockLevelQuery) ProductID() kernel.ID {
	return q.productID
}

type GetStockLevelQueryResponse struct {
	ProductID   int64
	ProductName string
	Quantity    int
	LastUpdated time.Time
}
