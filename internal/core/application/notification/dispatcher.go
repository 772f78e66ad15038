// Package notification composes the customer-facing confirmation for a
// processed order and hands it to the configured gateway.
package notification

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// ContentType is the media type of serialised confirmation messages.
const ContentType = "application/json; charset=utf-8"

// DefaultRecipient is used when neither the order nor the configuration
// provides a customer contact.
const DefaultRecipient = "customer@example.com"

const (
	subjectFormat = "Order Confirmation - Order #%d"
	bodyFormat    = "Dear Customer,\n\n" +
		"Thank you for your order #%d. Your order has been processed and will be delivered soon.\n\n" +
		"Best Regards,\nWarehouse Team"
)

var tracer = otel.Tracer("warehouse/notification")

// ErrGatewayRejected is matched by every *RejectedError.
var ErrGatewayRejected = errors.New("notification rejected by gateway")

// RejectedError is returned by gateways when the remote side refused a
// message. Its text is the gateway's own reason and is shown to callers.
type RejectedError struct {
	Reason string
	Cause  error
}

func NewRejectedError(reason string, cause error) *RejectedError {
	return &RejectedError{Reason: reason, Cause: cause}
}

func (e *RejectedError) Error() string {
	return e.Reason
}

func (e *RejectedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrGatewayRejected}
	}
	return []error{ErrGatewayRejected, e.Cause}
}

// Dispatcher sends order confirmations.
type Dispatcher struct {
	gateway          ports.NotificationGateway
	defaultRecipient string
	logger           *zap.Logger
}

// NewDispatcher builds a dispatcher. An empty defaultRecipient falls back to
// DefaultRecipient.
func NewDispatcher(gateway ports.NotificationGateway, defaultRecipient string, logger *zap.Logger) (*Dispatcher, error) {
	if gateway == nil {
		return nil, errs.NewValueIsRequiredError("gateway")
	}
	if defaultRecipient == "" {
		defaultRecipient = DefaultRecipient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		gateway:          gateway,
		defaultRecipient: defaultRecipient,
		logger:           logger.With(zap.String("component", "notification")),
	}, nil
}

// Compose builds the confirmation for an order without sending it.
func (d *Dispatcher) Compose(o *order.Order) ports.Notification {
	to := o.CustomerEmail()
	if to == "" {
		to = d.defaultRecipient
	}
	id := o.ID().Int64()
	return ports.Notification{
		ID:      kernel.NewUUID(),
		To:      to,
		Subject: fmt.Sprintf(subjectFormat, id),
		Body:    fmt.Sprintf(bodyFormat, id),
	}
}

// Notify sends the confirmation for o. Gateway errors are returned as is so
// that their text reaches the caller.
func (d *Dispatcher) Notify(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	msg := d.Compose(o)

	ctx, span := tracer.Start(ctx, "notification.Notify")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("order.id", o.ID().Int64()),
		attribute.String("notification.id", msg.ID.String()),
	)

	if err := d.gateway.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.logger.Warn("confirmation not delivered",
			zap.Int64("orderId", o.ID().Int64()),
			zap.String("notificationId", msg.ID.String()),
			zap.Error(err))
		return err
	}

	d.logger.Info("confirmation sent",
		zap.Int64("orderId", o.ID().Int64()),
		zap.String("notificationId", msg.ID.String()))
	return nil
}
