// Package kafkagateway publishes order confirmations to a Kafka topic for an
// external mailer to consume.
package kafkagateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"warehouse/internal/core/application/notification"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("warehouse/kafkagateway")

// MessageWriter is the subset of *kafka.Writer the gateway needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type message struct {
	ID      string `json:"id"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Gateway struct {
	writer MessageWriter
	topic  string
}

// NewWriter builds a writer for a comma separated broker list.
func NewWriter(brokersCSV, topic string) (*kafka.Writer, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}, nil
}

func NewGateway(writer MessageWriter, topic string) (*Gateway, error) {
	if writer == nil {
		return nil, errs.NewValueIsRequiredError("writer")
	}
	return &Gateway{writer: writer, topic: topic}, nil
}

// Send keys the record by notification id so that redeliveries land on the
// same partition and can be deduplicated downstream.
func (g *Gateway) Send(ctx context.Context, n ports.Notification) error {
	ctx, span := tracer.Start(ctx, "kafkagateway.Send", trace.WithSpanKind(trace.SpanKindProducer))
	defer span.End()

	span.SetAttributes(
		attribute.String("messaging.system", "kafka"),
		attribute.String("messaging.destination.name", g.topic),
		attribute.String("notification.id", n.ID.String()),
	)

	value, err := json.Marshal(message{ID: n.ID.String(), To: n.To, Subject: n.Subject, Body: n.Body})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(n.ID.String()),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte(notification.ContentType)},
		},
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{msg: &msg})

	if err = g.writer.WriteMessages(ctx, msg); err != nil {
		err = notification.NewRejectedError(err.Error(), err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (g *Gateway) Close() error {
	return g.writer.Close()
}

// headerCarrier adapts Kafka record headers to propagation.TextMapCarrier.
type headerCarrier struct {
	msg *kafka.Message
}

func (c headerCarrier) Get(key string) string {
	for _, h := range c.msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c headerCarrier) Set(key, value string) {
	for i, h := range c.msg.Headers {
		if h.Key == key {
			c.msg.Headers[i].Value = []byte(value)
			return
		}
	}
	c.msg.Headers = append(c.msg.Headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.msg.Headers))
	for _, h := range c.msg.Headers {
		keys = append(keys, h.Key)
	}
	return keys
}
