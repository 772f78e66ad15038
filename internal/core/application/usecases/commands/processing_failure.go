package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// FailureKind classifies why an order could not be processed.
type FailureKind int

const (
	// FailureOrderNotFound means no order has the requested id.
	FailureOrderNotFound FailureKind = iota + 1

	// FailureInsufficientStock means the product has fewer units on hand than
	// ordered. Nothing was changed.
	FailureInsufficientStock

	// FailureNotification means the order was reserved and priced but the
	// confirmation could not be delivered. The order is left Failed.
	FailureNotification
)

// Messages shown to callers for client-side failures.
const (
	MsgOrderNotFound     = "Order not found."
	MsgInsufficientStock = "Insufficient stock to process the order."
)

func (k FailureKind) String() string {
	switch k {
	case FailureOrderNotFound:
		return "OrderNotFound"
	case FailureInsufficientStock:
		return "InsufficientStock"
	case FailureNotification:
		return "NotificationFailure"
	default:
		return "Unknown"
	}
}

// ProcessingFailure is the business outcome of an order that could not be
// processed. Any other error returned by the handler is an internal error.
type ProcessingFailure struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (f *ProcessingFailure) Error() string {
	return f.Message
}

func (f *ProcessingFailure) Unwrap() error {
	return f.Cause
}

// IsClientError reports whether the failure was caused by the request
// rather than by the service or its dependencies.
func (f *ProcessingFailure) IsClientError() bool {
	return f.Kind == FailureOrderNotFound || f.Kind == FailureInsufficientStock
}

// AsProcessingFailure extracts a *ProcessingFailure from err's chain.
func AsProcessingFailure(err error) (*ProcessingFailure, bool) {
	var failure *ProcessingFailure
	ok := errors.As(err, &failure)
	return failure, ok
}

// ProcessOrderResult is returned for a successfully processed order.
type ProcessOrderResult struct {
	OrderID               kernel.ID
	TotalCost             kernel.Money
	EstimatedDeliveryDate time.Time
	DeliveryType          order.DeliveryType
}
