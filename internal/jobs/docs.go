// Package jobs provides scheduled background tasks for the warehouse service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// PendingOrdersJob picks the next waiting order after the one it tried last
// and runs it through the processing pipeline, one order per tick. Waiting
// orders are New ones and Processing ones that stalled. The schedule comes from
// PENDING_ORDERS_SCHEDULE and defaults to every five seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(pendingOrderHandler, cfg.PendingOrdersSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty queue is silent and sends the job back to the oldest order. An
// order held back by insufficient stock is logged as a warning the first time
// and retried on the next pass; anything else is logged as an error.
package jobs
