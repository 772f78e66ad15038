// Package emailgateway delivers order confirmations to an HTTP email service.
package emailgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"warehouse/internal/core/application/notification"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const maxErrorBody = 512

var tracer = otel.Tracer("warehouse/emailgateway")

type message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Gateway posts each notification as one JSON document.
type Gateway struct {
	url    string
	client *http.Client
}

// NewGateway creates a gateway for url. A nil client gets a default one with
// a 10 second timeout.
func NewGateway(url string, client *http.Client) (*Gateway, error) {
	if url == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if client == nil {
		client = &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		}
	}
	return &Gateway{url: url, client: client}, nil
}

// Send returns a *notification.RejectedError for any non-2xx answer. Its text
// is the response body, or the status line when the body is empty.
func (g *Gateway) Send(ctx context.Context, n ports.Notification) error {
	ctx, span := tracer.Start(ctx, "emailgateway.Send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	payload, err := json.Marshal(message{To: n.To, Subject: n.Subject, Body: n.Body})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(payload))
	if err != nil {
		span.RecordError(err)
		return err
	}
	req.Header.Set("Content-Type", notification.ContentType)
	req.Header.Set("Idempotency-Key", n.ID.String())

	span.SetAttributes(
		attribute.String("http.url", g.url),
		attribute.String("http.method", http.MethodPost),
		attribute.String("notification.id", n.ID.String()),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := g.client.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	reason := strings.TrimSpace(string(body))
	if reason == "" {
		reason = resp.Status
	}

	err = notification.NewRejectedError(reason, nil)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
