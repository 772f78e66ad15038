package notification_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/core/application/notification"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type MockGateway struct{ mock.Mock }

func (m *MockGateway) Send(ctx context.Context, n ports.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func testOrder(t *testing.T, email string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, email)
	require.NoError(t, err)
	return o
}

func TestNewDispatcher(t *testing.T) {
	t.Run("should require a gateway", func(t *testing.T) {
		d, err := notification.NewDispatcher(nil, "", nil)

		assert.Nil(t, d)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDispatcher_Compose(t *testing.T) {
	d, err := notification.NewDispatcher(new(MockGateway), "", nil)
	require.NoError(t, err)

	t.Run("should build the confirmation text", func(t *testing.T) {
		msg := d.Compose(testOrder(t, ""))

		require.NoError(t, msg.ID.Validate())
		assert.Equal(t, "customer@example.com", msg.To)
		assert.Equal(t, "Order Confirmation - Order #1", msg.Subject)
		assert.Equal(t,
			"Dear Customer,\n\nThank you for your order #1. Your order has been processed and will be delivered soon.\n\nBest Regards,\nWarehouse Team",
			msg.Body)
	})

	t.Run("should prefer the order's own contact", func(t *testing.T) {
		msg := d.Compose(testOrder(t, "jane@example.com"))

		assert.Equal(t, "jane@example.com", msg.To)
	})

	t.Run("should use configured default contact", func(t *testing.T) {
		custom, _ := notification.NewDispatcher(new(MockGateway), "orders@example.org", nil)

		assert.Equal(t, "orders@example.org", custom.Compose(testOrder(t, "")).To)
	})
}

func TestDispatcher_Notify(t *testing.T) {
	t.Run("should send composed message", func(t *testing.T) {
		gateway := new(MockGateway)
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(n ports.Notification) bool {
			return n.To == "customer@example.com" && n.Subject == "Order Confirmation - Order #1"
		})).Return(nil).Once()
		d, _ := notification.NewDispatcher(gateway, "", nil)

		err := d.Notify(t.Context(), testOrder(t, ""))

		require.NoError(t, err)
		gateway.AssertExpectations(t)
	})

	t.Run("should return gateway error text unchanged and log it", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		gateway := new(MockGateway)
		gateway.On("Send", mock.Anything, mock.Anything).
			Return(errors.New("Something bad happened when sending email")).Once()
		d, _ := notification.NewDispatcher(gateway, "", zap.New(core))

		err := d.Notify(t.Context(), testOrder(t, ""))

		require.EqualError(t, err, "Something bad happened when sending email")
		require.Equal(t, 1, logs.FilterMessage("confirmation not delivered").Len())
	})

	t.Run("should reject unconstructed order", func(t *testing.T) {
		gateway := new(MockGateway)
		d, _ := notification.NewDispatcher(gateway, "", nil)

		err := d.Notify(t.Context(), &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestRejectedError(t *testing.T) {
	t.Run("should read as the gateway reason", func(t *testing.T) {
		err := notification.NewRejectedError("Something bad happened when sending email", nil)

		assert.Equal(t, "Something bad happened when sending email", err.Error())
		require.ErrorIs(t, err, notification.ErrGatewayRejected)
	})

	t.Run("should keep the underlying cause", func(t *testing.T) {
		cause := context.DeadlineExceeded
		err := notification.NewRejectedError("write timed out", cause)

		require.ErrorIs(t, err, notification.ErrGatewayRejected)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		var rejected *notification.RejectedError
		require.ErrorAs(t, errors.Join(errors.New("notify"), err), &rejected)
		assert.Equal(t, "write timed out", rejected.Reason)
	})
}
