package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"farmstore/internal/core/application/usecases/queries"
)

// Orders in NEW longer than this are flagged by the reminder job.
const defaultStaleThreshold = 30 * time.Minute

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderReminderJob *StaleOrderReminderJob
	dailyOrderSummaryJob  *DailyOrderSummaryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the orders query handler as a dependency to wire up job execution.
func NewJobManager(getOrdersHandler queries.GetOrdersQueryHandler, logger *slog.Logger) *JobManager {
	return &JobManager{
		staleOrderReminderJob: NewStaleOrderReminderJob(getOrdersHandler, defaultStaleThreshold, logger),
		dailyOrderSummaryJob:  NewDailyOrderSummaryJob(getOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order reminder job: %w", err)
	}

	if err := jm.dailyOrderSummaryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.staleOrderReminderJob.Stop()
		return fmt.Errorf("failed to start daily order summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyOrderSummaryJob.Stop()
	jm.staleOrderReminderJob.Stop()
}
