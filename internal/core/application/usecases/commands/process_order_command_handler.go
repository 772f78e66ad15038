package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/product"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("warehouse/commands")

// ProcessingStallTimeout is how long an order may stay Processing before
// another run is allowed to take it over.
const ProcessingStallTimeout = 5 * time.Minute

// ProcessOrderCommandHandler runs a single order through the processing
// pipeline.
//
// The stock reservation and the computed outcome are committed in one
// transaction. The confirmation is sent only after that commit; if it cannot
// be delivered the order is marked Failed and keeps its reservation, so a
// retry does not reserve twice. Once the order is committed as Processing
// the remaining steps ignore cancellation of ctx; an order left Processing by
// a crash is taken over after ProcessingStallTimeout. The audit snapshot is
// best effort.
//
// Example:
//
//	handler, _ := NewProcessOrderCommandHandler(uowFactory, ledger, dispatcher, exporter, clock.System{}, logger, m)
//	cmd, _ := NewProcessOrderCommand(1)
//	result, err := handler.Handle(ctx, cmd)
//	if failure, ok := AsProcessingFailure(err); ok {
//	    // OrderNotFound, InsufficientStock or NotificationFailure
//	}
type ProcessOrderCommandHandler struct {
	uowFactory UoWFactory
	reserver   StockReserver
	notifier   Notifier
	auditor    ports.AuditExporter
	clock      clock.Clock
	logger     *zap.Logger
	metrics    *metrics.ProcessingMetrics

	scorer    services.PriorityScorer
	pricing   services.PricingCalculator
	estimator services.DeliveryEstimator
}

// NewProcessOrderCommandHandler wires the handler. auditor and m may be nil;
// every other dependency is required.
func NewProcessOrderCommandHandler(
	uowFactory UoWFactory,
	reserver StockReserver,
	notifier Notifier,
	auditor ports.AuditExporter,
	clk clock.Clock,
	logger *zap.Logger,
	m *metrics.ProcessingMetrics,
) (*ProcessOrderCommandHandler, error) {
	var missing []error
	if uowFactory == nil {
		missing = append(missing, errs.NewValueIsRequiredError("uowFactory"))
	}
	if reserver == nil {
		missing = append(missing, errs.NewValueIsRequiredError("reserver"))
	}
	if notifier == nil {
		missing = append(missing, errs.NewValueIsRequiredError("notifier"))
	}
	if clk == nil {
		missing = append(missing, errs.NewValueIsRequiredError("clock"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		reserver:   reserver,
		notifier:   notifier,
		auditor:    auditor,
		clock:      clk,
		logger:     logger.With(zap.String("component", "process-order")),
		metrics:    m,
		scorer:     services.NewPriorityScorer(),
		pricing:    services.NewPricingCalculator(),
		estimator:  services.NewDeliveryEstimator(),
	}, nil
}

// Handle processes the order named by cmd.
//
// Returns:
//   - ProcessOrderResult when the order was processed and the customer notified
//   - *ProcessingFailure for order-not-found, insufficient-stock and
//     notification failures
//   - any other error for internal failures; no state was committed unless
//     the order reached Processing
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) (result ProcessOrderResult, err error) {
	if err = cmd.Validate(); err != nil {
		return ProcessOrderResult{}, err
	}

	started := time.Now()
	orderID := cmd.OrderID()
	logger := h.logger.With(zap.Int64("orderId", orderID.Int64()))

	ctx, span := tracer.Start(ctx, "ProcessOrder",
		trace.WithAttributes(attribute.Int64("order.id", orderID.Int64())))
	defer func() {
		outcome := outcomeOf(err)
		h.metrics.Observe(outcome, time.Since(started))
		span.SetAttributes(attribute.String("order.outcome", outcome))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	o, err := h.reserveAndPrice(ctx, cmd)
	if err != nil {
		logger.Warn("order not processed", zap.Error(err))
		return ProcessOrderResult{}, err
	}

	// The reservation is committed; finish the order even if the caller leaves.
	ctx = context.WithoutCancel(ctx)

	if err = h.notifier.Notify(ctx, o); err != nil {
		if failErr := h.markFailed(ctx, o); failErr != nil {
			logger.Error("order could not be marked failed", zap.Error(failErr))
		}
		logger.Warn("order failed on notification", zap.Error(err))
		return ProcessOrderResult{}, &ProcessingFailure{
			Kind:    FailureNotification,
			Message: err.Error(),
			Cause:   err,
		}
	}

	if err = h.markProcessed(ctx, o); err != nil {
		logger.Error("order notified but not marked processed", zap.Error(err))
		return ProcessOrderResult{}, err
	}

	h.export(ctx, o, logger)

	outcome := o.Outcome()
	logger.Info("order processed",
		zap.Int("priority", outcome.Priority),
		zap.String("totalCost", outcome.TotalCost.String()),
		zap.Time("estimatedDeliveryDate", outcome.EstimatedDeliveryDate))

	return ProcessOrderResult{
		OrderID:               o.ID(),
		TotalCost:             outcome.TotalCost,
		EstimatedDeliveryDate: outcome.EstimatedDeliveryDate,
		DeliveryType:          o.DeliveryType(),
	}, nil
}

// reserveAndPrice moves the order to Processing, reserves its stock when it
// was New and records priority, total cost and delivery estimate, all in one
// transaction.
func (h *ProcessOrderCommandHandler) reserveAndPrice(ctx context.Context, cmd ProcessOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, &ProcessingFailure{Kind: FailureOrderNotFound, Message: MsgOrderNotFound, Cause: err}
	}
	if err != nil {
		return nil, err
	}

	p, err := uow.ProductRepository().Get(ctx, o.ProductID())
	if err != nil {
		return nil, fmt.Errorf("loading product %s: %w", o.ProductID(), err)
	}

	now := h.clock.Now()

	var needsReservation bool
	if o.Status() == order.Processing {
		err = o.ResumeStalled(now, ProcessingStallTimeout)
	} else {
		needsReservation, err = o.StartProcessing()
	}
	if err != nil {
		return nil, err
	}

	if needsReservation {
		err = h.reserver.Reserve(ctx, uow.StockLevelRepository(), o.ProductID(), o.Quantity(), now)
		if errors.Is(err, product.ErrInsufficientStock) {
			return nil, &ProcessingFailure{Kind: FailureInsufficientStock, Message: MsgInsufficientStock, Cause: err}
		}
		if err != nil {
			return nil, err
		}
	}

	priority, err := h.scorer.Score(o.Quantity(), o.DeliveryType(), now)
	if err != nil {
		return nil, err
	}

	totalCost, err := h.pricing.TotalCost(p.UnitPrice(), o.Quantity())
	if err != nil {
		return nil, err
	}

	estimatedDelivery, err := h.estimator.Estimate(o.DeliveryType(), priority, now)
	if err != nil {
		return nil, err
	}

	if err = o.RecordOutcome(order.Outcome{
		Priority:              priority,
		TotalCost:             totalCost,
		EstimatedDeliveryDate: estimatedDelivery,
		ProcessedAt:           now,
	}); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h *ProcessOrderCommandHandler) markFailed(ctx context.Context, o *order.Order) error {
	if err := o.Fail(); err != nil {
		return err
	}
	return h.save(ctx, o)
}

func (h *ProcessOrderCommandHandler) markProcessed(ctx context.Context, o *order.Order) error {
	if err := o.Complete(); err != nil {
		return err
	}
	return h.save(ctx, o)
}

func (h *ProcessOrderCommandHandler) save(ctx context.Context, o *order.Order) error {
	var uow OrderUoW = h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ProcessOrderCommandHandler) export(ctx context.Context, o *order.Order, logger *zap.Logger) {
	if h.auditor == nil {
		return
	}
	if err := h.auditor.Export(ctx, o.Snapshot()); err != nil {
		h.metrics.AuditFailed()
		logger.Warn("audit snapshot not written", zap.Error(err))
	}
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeProcessed
	}
	failure, ok := AsProcessingFailure(err)
	if !ok {
		return metrics.OutcomeError
	}
	switch failure.Kind {
	case FailureOrderNotFound:
		return metrics.OutcomeOrderNotFound
	case FailureInsufficientStock:
		return metrics.OutcomeInsufficientStock
	case FailureNotification:
		return metrics.OutcomeNotificationError
	default:
		return metrics.OutcomeError
	}
}
