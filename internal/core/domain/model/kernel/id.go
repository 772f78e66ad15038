package kernel

import (
	"fmt"
	"strconv"

	"warehouse/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is the integer identity of orders and products. Valid IDs are
// strictly positive; the zero value is invalid.
type ID struct {
	value int64
}

// NewID validates and wraps a positive integer identifier.
//
// Example:
//
//	orderID, err := kernel.NewID(1)
//	if err != nil {
//	    // zero or negative identifier
//	}
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustID is NewID for constants and trusted storage values. It panics on
// non-positive input.
func MustID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (i ID) Int64() int64 {
	return i.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate reports ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
