package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderTotalIntegrityJob *OrderTotalIntegrityJob
}

// NewJobManager creates a new job manager with all required jobs.
// integritySpec is a six-field cron expression; empty means DefaultIntegritySpec.
func NewJobManager(
	mismatchFinder MismatchFinder,
	integritySpec string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		orderTotalIntegrityJob: NewOrderTotalIntegrityJob(mismatchFinder, integritySpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderTotalIntegrityJob.Start(); err != nil {
		return fmt.Errorf("failed to start order total integrity job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderTotalIntegrityJob.Stop()
}
