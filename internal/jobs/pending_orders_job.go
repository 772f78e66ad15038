package jobs

import (
	"context"
	"errors"
	"sync"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultPendingOrdersSchedule runs the job every five seconds.
const DefaultPendingOrdersSchedule = "*/5 * * * * *"

type PendingOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ProcessPendingOrderCommand) (commands.ProcessOrderResult, error)
}

// PendingOrdersJob processes one waiting order per tick. A tick that is
// still running when the next one fires causes that next tick to be skipped.
//
// The job walks the waiting orders by id and remembers the last one it tried,
// so an order held back by insufficient stock is retried once per pass and
// reported once rather than on every tick.
type PendingOrdersJob struct {
	handler  PendingOrderHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger

	mu       sync.Mutex
	cursor   int64
	heldBack map[int64]struct{}
}

func NewPendingOrdersJob(handler PendingOrderHandler, schedule string, logger *zap.Logger) *PendingOrdersJob {
	if schedule == "" {
		schedule = DefaultPendingOrdersSchedule
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PendingOrdersJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "pending_orders_job")),
		heldBack: make(map[int64]struct{}),
	}
}

func (j *PendingOrdersJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Pending orders job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running tick to finish.
func (j *PendingOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Pending orders job stopped")
}

// RunOnce processes the next pending order, if any.
func (j *PendingOrdersJob) RunOnce(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	cmd, err := commands.NewProcessPendingOrderCommand(j.cursor)
	if err != nil {
		j.logger.Error("Pending orders job failed", zap.Error(err))
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err == nil {
		orderID := result.OrderID.Int64()
		j.cursor = orderID
		delete(j.heldBack, orderID)
		j.logger.Info("Pending order processed", zap.Int64("orderId", orderID))
		return
	}

	if errors.Is(err, commands.ErrNoPendingOrder) {
		j.cursor = 0
		clear(j.heldBack)
		return
	}

	var orderID int64
	var pendingErr *commands.PendingOrderError
	if errors.As(err, &pendingErr) {
		orderID = pendingErr.OrderID.Int64()
		j.cursor = orderID
	}

	if failure, ok := commands.AsProcessingFailure(err); ok && failure.IsClientError() {
		if _, reported := j.heldBack[orderID]; reported {
			j.logger.Debug("Pending order still held back", zap.Int64("orderId", orderID))
			return
		}
		j.heldBack[orderID] = struct{}{}
		j.logger.Warn("Pending order held back",
			zap.Int64("orderId", orderID),
			zap.String("reason", failure.Kind.String()),
			zap.String("message", failure.Message))
		return
	}

	j.logger.Error("Pending orders job failed", zap.Int64("orderId", orderID), zap.Error(err))
}
