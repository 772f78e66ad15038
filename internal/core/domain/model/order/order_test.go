package order_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var processedAt = time.Date(2024, 11, 7, 10, 10, 10, 0, time.UTC)

func validOutcome() order.Outcome {
	return order.Outcome{
		Priority:              50,
		TotalCost:             kernel.MustMoney("94.95"),
		EstimatedDeliveryDate: processedAt.AddDate(0, 0, 5),
		ProcessedAt:           processedAt,
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "")
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "jane@example.com")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(1), o.ID().Int64())
		assert.Equal(t, int64(100), o.ProductID().Int64())
		assert.Equal(t, 5, o.Quantity())
		assert.Equal(t, order.Express, o.DeliveryType())
		assert.Equal(t, "jane@example.com", o.CustomerEmail())
		assert.Equal(t, order.New, o.Status())
		assert.Nil(t, o.Outcome())
	})

	t.Run("should allow missing customer email", func(t *testing.T) {
		o := newOrder(t)

		assert.Empty(t, o.CustomerEmail())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 0, order.Standard, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with unknown delivery type", func(t *testing.T) {
		o, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 1, order.UnknownDeliveryType, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := order.NewOrder(kernel.MustID(1), kernel.MustID(100), 1, order.Standard, "not an address")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customerEmail")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(kernel.ID{}, kernel.ID{}, -1, order.UnknownDeliveryType, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ID must be created")
		assert.Contains(t, err.Error(), "productId")
		assert.Contains(t, err.Error(), "quantity is invalid")
		assert.Contains(t, err.Error(), "delivery type is invalid")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore a new order without outcome", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "", order.New, nil)

		require.NoError(t, err)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should restore a failed order with its outcome", func(t *testing.T) {
		outcome := validOutcome()

		o, err := order.RestoreOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "", order.Failed, &outcome)

		require.NoError(t, err)
		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, outcome, *o.Outcome())
	})

	t.Run("should reject processed order without outcome", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "", order.Processed, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject new order with outcome", func(t *testing.T) {
		outcome := validOutcome()

		_, err := order.RestoreOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "", order.New, &outcome)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.MustID(1), kernel.MustID(100), 5, order.Express, "", order.Unknown, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1 := newOrder(t)
	o2, _ := order.NewOrder(kernel.MustID(1), kernel.MustID(200), 9, order.SameDay, "")
	o3, _ := order.NewOrder(kernel.MustID(2), kernel.MustID(100), 5, order.Express, "")

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should require reservation when starting a new order", func(t *testing.T) {
		o := newOrder(t)

		needsReservation, err := o.StartProcessing()

		require.NoError(t, err)
		assert.True(t, needsReservation)
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should record outcome and complete", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()

		require.NoError(t, o.RecordOutcome(validOutcome()))
		require.NoError(t, o.Complete())

		assert.Equal(t, order.Processed, o.Status())
		assert.Equal(t, "94.95", o.Outcome().TotalCost.String())
	})

	t.Run("should not reserve again when retrying a failed order", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		require.NoError(t, o.RecordOutcome(validOutcome()))
		require.NoError(t, o.Fail())

		needsReservation, err := o.StartProcessing()

		require.NoError(t, err)
		assert.False(t, needsReservation)
		assert.Equal(t, order.Processing, o.Status())
		assert.NotNil(t, o.Outcome())
	})

	t.Run("should not process a processed order again", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		_ = o.RecordOutcome(validOutcome())
		_ = o.Complete()

		_, err := o.StartProcessing()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Processed is not a valid status to start processing")
		assert.Equal(t, order.Processed, o.Status())
	})

	t.Run("should not record outcome outside processing", func(t *testing.T) {
		o := newOrder(t)

		err := o.RecordOutcome(validOutcome())

		require.Error(t, err)
		assert.Nil(t, o.Outcome())
	})

	t.Run("should reject delivery estimate before processing time", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		outcome := validOutcome()
		outcome.EstimatedDeliveryDate = processedAt.Add(-time.Hour)

		err := o.RecordOutcome(outcome)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not complete or fail a new order", func(t *testing.T) {
		o := newOrder(t)

		require.Error(t, o.Complete())
		require.Error(t, o.Fail())
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("should resume a processing order once it is stalled", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		require.NoError(t, o.RecordOutcome(validOutcome()))

		assert.False(t, o.IsStalled(processedAt.Add(time.Minute), 5*time.Minute))
		require.ErrorIs(t, o.ResumeStalled(processedAt.Add(time.Minute), 5*time.Minute), order.ErrOrderIsBeingProcessed)

		assert.True(t, o.IsStalled(processedAt.Add(5*time.Minute), 5*time.Minute))
		require.NoError(t, o.ResumeStalled(processedAt.Add(5*time.Minute), 5*time.Minute))
		assert.Equal(t, order.Processing, o.Status())
	})

	t.Run("should only resume processing orders", func(t *testing.T) {
		o := newOrder(t)

		err := o.ResumeStalled(processedAt.Add(time.Hour), time.Minute)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.False(t, o.IsStalled(processedAt.Add(time.Hour), time.Minute))
	})

	t.Run("outcome getter should return a copy", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		_ = o.RecordOutcome(validOutcome())

		o.Outcome().Priority = 999

		assert.Equal(t, 50, o.Outcome().Priority)
	})
}

func TestOrder_Snapshot(t *testing.T) {
	t.Run("should capture processed state", func(t *testing.T) {
		o := newOrder(t)
		_, _ = o.StartProcessing()
		_ = o.RecordOutcome(validOutcome())
		_ = o.Complete()

		s := o.Snapshot()

		assert.Equal(t, order.Snapshot{
			OrderID:               1,
			ProductID:             100,
			Quantity:              5,
			DeliveryType:          "Express",
			Status:                "Processed",
			Priority:              50,
			TotalCost:             "94.95",
			EstimatedDeliveryDate: time.Date(2024, 11, 12, 10, 10, 10, 0, time.UTC),
			ProcessedAt:           processedAt,
		}, s)
	})

	t.Run("should leave outcome fields empty for new order", func(t *testing.T) {
		s := newOrder(t).Snapshot()

		assert.Equal(t, "New", s.Status)
		assert.Zero(t, s.Priority)
		assert.Empty(t, s.TotalCost)
	})
}
