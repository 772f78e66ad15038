package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			delivery_type,
			customer_email,
			status,
			priority,
			total_cost,
			estimated_delivery_date,
			processed_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Int64()).Scan(&response)
	if result.Error != nil {
		return GetOrderQueryResponse{}, result.Error
	}

	if result.RowsAffected == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	return response, nil
}
