// Package xmlaudit writes an XML snapshot of every processed order to a
// directory, one file per order.
package xmlaudit

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
)

// document is the on-disk layout of a snapshot. Element names are part of the
// file format consumed by downstream tooling.
type document struct {
	XMLName               xml.Name `xml:"Order"`
	OrderID               int64    `xml:"OrderId"`
	ProductID             int64    `xml:"ProductId"`
	Quantity              int      `xml:"Quantity"`
	DeliveryType          string   `xml:"DeliveryType"`
	CustomerEmail         string   `xml:"CustomerEmail,omitempty"`
	Status                string   `xml:"Status"`
	Priority              int      `xml:"Priority"`
	TotalCost             string   `xml:"TotalCost"`
	EstimatedDeliveryDate string   `xml:"EstimatedDeliveryDate"`
	ProcessedAt           string   `xml:"ProcessedAt"`
}

type Exporter struct {
	dir string
}

// NewExporter creates dir when it does not exist.
func NewExporter(dir string) (*Exporter, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audit directory: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// FileName returns the name of the snapshot file of an order.
func FileName(orderID int64) string {
	return fmt.Sprintf("Order_%d.xml", orderID)
}

// Export replaces any earlier snapshot of the same order. Readers never see a
// partially written file.
func (e *Exporter) Export(ctx context.Context, snapshot order.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := xml.MarshalIndent(toDocument(snapshot), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(e.dir, ".order-*.xml")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err = tmp.WriteString(xml.Header); err == nil {
		_, err = tmp.Write(append(payload, '\n'))
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return os.Rename(tmp.Name(), filepath.Join(e.dir, FileName(snapshot.OrderID)))
}

func toDocument(s order.Snapshot) document {
	return document{
		OrderID:               s.OrderID,
		ProductID:             s.ProductID,
		Quantity:              s.Quantity,
		DeliveryType:          s.DeliveryType,
		CustomerEmail:         s.CustomerEmail,
		Status:                s.Status,
		Priority:              s.Priority,
		TotalCost:             s.TotalCost,
		EstimatedDeliveryDate: formatTime(s.EstimatedDeliveryDate),
		ProcessedAt:           formatTime(s.ProcessedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
