package product

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

var (
	// ErrStockLevelIsNotConstructed is returned when a StockLevel was not created via
	// NewStockLevel or RestoreStockLevel.
	ErrStockLevelIsNotConstructed = errors.New("StockLevel must be created via NewStockLevel constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than are on hand. The stock level is not modified.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockLevel is the on-hand quantity of one product.
//
// Invariants:
//   - exactly one StockLevel exists per product
//   - quantity is never negative
//   - lastUpdated moves forward with every successful reservation
type StockLevel struct {
	id          kernel.UUID
	productID   kernel.ID
	quantity    int
	lastUpdated time.Time

	isConstructed bool
}

// NewStockLevel creates the ledger entry for a product with a fresh identifier.
func NewStockLevel(productID kernel.ID, quantity int, at time.Time) (*StockLevel, error) {
	return RestoreStockLevel(kernel.NewUUID(), productID, quantity, at)
}

// RestoreStockLevel rebuilds a stock level loaded from storage.
func RestoreStockLevel(id kernel.UUID, productID kernel.ID, quantity int, lastUpdated time.Time) (*StockLevel, error) {
	s := &StockLevel{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setProductID(productID),
		s.setQuantity(quantity),
		s.setLastUpdated(lastUpdated),
	); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *StockLevel) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockLevelIsNotConstructed
	}
	return nil
}

func (s *StockLevel) ID() kernel.UUID {
	return s.id
}

func (s *StockLevel) ProductID() kernel.ID {
	return s.productID
}

func (s *StockLevel) Quantity() int {
	return s.quantity
}

func (s *StockLevel) LastUpdated() time.Time {
	return s.lastUpdated
}

// CanReserve reports whether quantity units are on hand.
func (s *StockLevel) CanReserve(quantity int) bool {
	return quantity > 0 && s.quantity >= quantity
}

// Reserve takes quantity units out of stock and stamps the change with at.
//
// Returns:
//   - nil when stock was sufficient; quantity is decreased
//   - ErrInsufficientStock when fewer units are on hand; nothing changes
//   - a validation error for a non-positive quantity
func (s *StockLevel) Reserve(quantity int, at time.Time) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !s.CanReserve(quantity) {
		return fmt.Errorf("%w: %d requested, %d on hand for product %s",
			ErrInsufficientStock, quantity, s.quantity, s.productID)
	}

	s.quantity -= quantity
	if at.After(s.lastUpdated) {
		s.lastUpdated = at
	}
	return nil
}

func (s *StockLevel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StockLevel) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	s.productID = productID
	return nil
}

func (s *StockLevel) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	s.quantity = quantity
	return nil
}

func (s *StockLevel) setLastUpdated(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("lastUpdated")
	}
	s.lastUpdated = at
	return nil
}
