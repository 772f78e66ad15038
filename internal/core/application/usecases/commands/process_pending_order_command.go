package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrProcessPendingOrderCommandIsNotConstructed = errors.New(
	"ProcessPendingOrderCommand must be created via NewProcessPendingOrderCommand constructor",
)

// ProcessPendingOrderCommand asks for the next waiting order after
// afterOrderID to be processed. Zero starts from the oldest order.
type ProcessPendingOrderCommand struct {
	afterOrderID int64

	guard guard.ConstructorGuard
}

func NewProcessPendingOrderCommand(afterOrderID int64) (ProcessPendingOrderCommand, error) {
	if afterOrderID < 0 {
		return ProcessPendingOrderCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"afterOrderId", fmt.Errorf("%d is negative", afterOrderID))
	}
	return ProcessPendingOrderCommand{
		afterOrderID: afterOrderID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ProcessPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessPendingOrderCommandIsNotConstructed)
}

func (c ProcessPendingOrderCommand) AfterOrderID() int64 {
	return c.afterOrderID
}
