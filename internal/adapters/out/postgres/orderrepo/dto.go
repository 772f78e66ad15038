// Package orderrepo persists order aggregates with GORM, handling the
// conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the database row of an order. Outcome columns are NULL until
// the order is first processed.
type OrderDTO struct {
	ID                    int64  `gorm:"primaryKey;autoIncrement:false"`
	ProductID             int64  `gorm:"not null;index"`
	Quantity              int    `gorm:"not null;check:quantity > 0"`
	DeliveryType          string `gorm:"type:varchar(16);not null"`
	CustomerEmail         string `gorm:"type:varchar(320)"`
	Status                string `gorm:"type:varchar(16);not null;index"`
	Priority              *int
	TotalCost             *decimal.Decimal `gorm:"type:numeric(18,2)"`
	EstimatedDeliveryDate *time.Time
	ProcessedAt           *time.Time
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:            o.ID().Int64(),
		ProductID:     o.ProductID().Int64(),
		Quantity:      o.Quantity(),
		DeliveryType:  o.DeliveryType().String(),
		CustomerEmail: o.CustomerEmail(),
		Status:        o.Status().String(),
	}

	if outcome := o.Outcome(); outcome != nil {
		priority := outcome.Priority
		totalCost := outcome.TotalCost.Decimal()
		estimated := outcome.EstimatedDeliveryDate.UTC()
		processed := outcome.ProcessedAt.UTC()

		dto.Priority = &priority
		dto.TotalCost = &totalCost
		dto.EstimatedDeliveryDate = &estimated
		dto.ProcessedAt = &processed
	}

	return dto
}

// toDomain rebuilds the aggregate through RestoreOrder so that rows that
// violate domain invariants are rejected on read.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.NewID(dto.ProductID)
	if err != nil {
		return nil, err
	}

	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var outcome *order.Outcome
	if dto.Priority != nil && dto.TotalCost != nil && dto.EstimatedDeliveryDate != nil && dto.ProcessedAt != nil {
		totalCost, moneyErr := kernel.NewMoney(*dto.TotalCost)
		if moneyErr != nil {
			return nil, moneyErr
		}
		outcome = &order.Outcome{
			Priority:              *dto.Priority,
			TotalCost:             totalCost,
			EstimatedDeliveryDate: dto.EstimatedDeliveryDate.UTC(),
			ProcessedAt:           dto.ProcessedAt.UTC(),
		}
	}

	return order.RestoreOrder(id, productID, dto.Quantity, deliveryType, dto.CustomerEmail, status, outcome)
}
