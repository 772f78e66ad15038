package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
)

// Notification is one message addressed to a customer.
type Notification struct {
	ID      kernel.UUID
	To      string
	Subject string
	Body    string
}

// NotificationGateway delivers notifications to an external channel.
// Any returned error means the customer may not have been notified; its
// text is shown to the caller as the failure reason.
type NotificationGateway interface {
	Send(ctx context.Context, n Notification) error
}
