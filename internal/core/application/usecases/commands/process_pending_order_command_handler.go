package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/errs"
)

var ErrNoPendingOrder = errors.New("no pending order found")

// OrderProcessor runs one order through the processing pipeline.
type OrderProcessor interface {
	Handle(ctx context.Context, cmd ProcessOrderCommand) (ProcessOrderResult, error)
}

// PendingOrderError is what processing a picked order returned, together
// with the id of that order.
type PendingOrderError struct {
	OrderID kernel.ID
	Err     error
}

func (e *PendingOrderError) Error() string {
	return e.Err.Error()
}

func (e *PendingOrderError) Unwrap() error {
	return e.Err
}

// ProcessPendingOrderCommandHandler picks the waiting order with the lowest
// id after the command's cursor and hands it to the processing pipeline.
// Waiting orders are New ones and Processing ones stalled for at least
// ProcessingStallTimeout. When nothing waits after the cursor the search
// starts over from the oldest order, so an order held back by insufficient
// stock does not keep later ones from being processed.
type ProcessPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	processor  OrderProcessor
	clock      clock.Clock
}

func NewProcessPendingOrderCommandHandler(
	uowFactory UoWFactory,
	processor OrderProcessor,
	clk clock.Clock,
) (ProcessPendingOrderCommandHandler, error) {
	if err := errors.Join(
		requireNonNil(uowFactory, "uowFactory"),
		requireNonNil(processor, "processor"),
		requireNonNil(clk, "clock"),
	); err != nil {
		return ProcessPendingOrderCommandHandler{}, err
	}
	return ProcessPendingOrderCommandHandler{uowFactory: uowFactory, processor: processor, clock: clk}, nil
}

// Handle returns ErrNoPendingOrder when nothing is waiting. Errors from
// processing the picked order are wrapped in *PendingOrderError.
func (h ProcessPendingOrderCommandHandler) Handle(
	ctx context.Context,
	command ProcessPendingOrderCommand,
) (ProcessOrderResult, error) {
	if err := command.Validate(); err != nil {
		return ProcessOrderResult{}, err
	}

	orders := h.uowFactory.Create().OrderRepository()
	stalledBefore := h.clock.Now().Add(-ProcessingStallTimeout)

	pending, err := orders.GetFirstPending(ctx, command.AfterOrderID(), stalledBefore)
	if errors.Is(err, errs.ErrObjectNotFound) && command.AfterOrderID() > 0 {
		pending, err = orders.GetFirstPending(ctx, 0, stalledBefore)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ProcessOrderResult{}, ErrNoPendingOrder
	}
	if err != nil {
		return ProcessOrderResult{}, err
	}

	cmd, err := NewProcessOrderCommand(pending.ID().Int64())
	if err != nil {
		return ProcessOrderResult{}, err
	}

	result, err := h.processor.Handle(ctx, cmd)
	if err != nil {
		return ProcessOrderResult{}, &PendingOrderError{OrderID: pending.ID(), Err: err}
	}
	return result, nil
}

func requireNonNil(v any, name string) error {
	if v == nil {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
