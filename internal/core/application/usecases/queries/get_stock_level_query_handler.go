package queries

import (
	"context"

	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetStockLevelQueryHandler struct {
	db *gorm.DB
}

func NewGetStockLevelQueryHandler(db *gorm.DB) GetStockLevelQueryHandler {
	return GetStockLevelQueryHandler{db: db}
}

// Handle joins the stock level with its catalog entry. A product without a
// stock level is reported as not found.
func (h GetStockLevelQueryHandler) Handle(
	ctx context.Context,
	query GetStockLevelQuery,
) (GetStockLevelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockLevelQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.product_id,
			COALESCE(p.name, ''),
			s.quantity,
			s.last_updated
		FROM stock_levels s
		LEFT JOIN products p ON p.id = s.product_id
		WHERE s.product_id = ?
	`, query.ProductID().Int64()).Rows()
	if err != nil {
		return GetStockLevelQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetStockLevelQueryResponse{}, err
		}
		return GetStockLevelQueryResponse{}, errs.NewObjectNotFoundError("stockLevel", query.ProductID().String())
	}

	var response GetStockLevelQueryResponse
	if err = rows.Scan(&response.ProductID, &response.ProductName, &response.Quantity, &response.LastUpdated); err != nil {
		return GetStockLevelQueryResponse{}, err
	}
	response.LastUpdated = response.LastUpdated.UTC()

	return response, rows.Err()
}
