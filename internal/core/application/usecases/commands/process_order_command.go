package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrProcessOrderCommandIsNotConstructed = errors.New(
	"ProcessOrderCommand must be created via NewProcessOrderCommand constructor",
)

// ProcessOrderCommand asks for one order to be run through the processing
// pipeline: priority, stock reservation, pricing, delivery estimate,
// confirmation and audit.
//
// Example:
//
//	cmd, err := NewProcessOrderCommand(1)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type ProcessOrderCommand struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewProcessOrderCommand validates the order id. Ids must be positive.
func NewProcessOrderCommand(orderID int64) (ProcessOrderCommand, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return ProcessOrderCommand{}, err
	}

	return ProcessOrderCommand{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderCommandIsNotConstructed)
}

func (c ProcessOrderCommand) OrderID() kernel.ID {
	return c.orderID
}
