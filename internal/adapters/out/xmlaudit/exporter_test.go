package xmlaudit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"warehouse/internal/adapters/out/xmlaudit"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processedSnapshot() order.Snapshot {
	return order.Snapshot{
		OrderID:               1,
		ProductID:             100,
		Quantity:              5,
		DeliveryType:          "Express",
		CustomerEmail:         "customer@example.com",
		Status:                "Processed",
		Priority:              50,
		TotalCost:             "94.95",
		EstimatedDeliveryDate: time.Date(2024, 11, 12, 10, 10, 10, 0, time.UTC),
		ProcessedAt:           time.Date(2024, 11, 7, 10, 10, 10, 0, time.UTC),
	}
}

const expectedDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Order>
  <OrderId>1</OrderId>
  <ProductId>100</ProductId>
  <Quantity>5</Quantity>
  <DeliveryType>Express</DeliveryType>
  <CustomerEmail>customer@example.com</CustomerEmail>
  <Status>Processed</Status>
  <Priority>50</Priority>
  <TotalCost>94.95</TotalCost>
  <EstimatedDeliveryDate>2024-11-12T10:10:10Z</EstimatedDeliveryDate>
  <ProcessedAt>2024-11-07T10:10:10Z</ProcessedAt>
</Order>
`

func TestExporter_Export(t *testing.T) {
	t.Run("should write the snapshot as Order_{id}.xml", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := xmlaudit.NewExporter(dir)
		require.NoError(t, err)

		require.NoError(t, exporter.Export(context.Background(), processedSnapshot()))

		content, err := os.ReadFile(filepath.Join(dir, "Order_1.xml"))
		require.NoError(t, err)
		assert.Equal(t, expectedDocument, string(content))
	})

	t.Run("should replace an earlier snapshot and leave no temp files", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := xmlaudit.NewExporter(dir)
		require.NoError(t, err)

		first := processedSnapshot()
		first.Status = "Failed"
		require.NoError(t, exporter.Export(context.Background(), first))
		require.NoError(t, exporter.Export(context.Background(), processedSnapshot()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		content, err := os.ReadFile(filepath.Join(dir, xmlaudit.FileName(1)))
		require.NoError(t, err)
		assert.Contains(t, string(content), "<Status>Processed</Status>")
	})

	t.Run("should not write after cancellation", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := xmlaudit.NewExporter(dir)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, exporter.Export(ctx, processedSnapshot()), context.Canceled)
		_, statErr := os.Stat(filepath.Join(dir, "Order_1.xml"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("should fail when the directory disappeared", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "audit")
		exporter, err := xmlaudit.NewExporter(dir)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(dir))

		require.Error(t, exporter.Export(context.Background(), processedSnapshot()))
	})
}

func TestNewExporter(t *testing.T) {
	t.Run("should require a directory", func(t *testing.T) {
		_, err := xmlaudit.NewExporter("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should create missing directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "a", "b")
		_, err := xmlaudit.NewExporter(dir)
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}
