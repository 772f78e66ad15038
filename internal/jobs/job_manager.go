package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager starts and stops the background jobs of the service together.
type JobManager struct {
	pendingOrdersJob *PendingOrdersJob
}

func NewJobManager(pendingOrderHandler PendingOrderHandler, schedule string, logger *zap.Logger) *JobManager {
	return &JobManager{
		pendingOrdersJob: NewPendingOrdersJob(pendingOrderHandler, schedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.pendingOrdersJob.Stop()
}
