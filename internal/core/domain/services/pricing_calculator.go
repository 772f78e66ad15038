package services

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// PricingCalculator computes what the customer pays for an order.
// Prices are exact decimals; no rounding is applied to the product of unit
// price and quantity.
type PricingCalculator struct{}

func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// TotalCost returns unitPrice × quantity. Quantity must be positive.
func (PricingCalculator) TotalCost(unitPrice kernel.Money, quantity int) (kernel.Money, error) {
	if quantity <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return unitPrice.Multiply(quantity)
}
