package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount held as an exact decimal.
// Arithmetic never goes through binary floating point, so 18.99 × 5 is
// exactly 94.95.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a non-negative decimal amount.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "18.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals. It panics on invalid input.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Multiply returns the amount scaled by a non-negative integer factor.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("factor", factor, 0, "unbounded")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}, nil
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares amounts numerically, so 94.950 equals 94.95.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}
