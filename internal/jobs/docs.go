// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order backlog.
//
// # Available Jobs
//
// 1. StaleOrderReminderJob - Runs every five minutes to flag NEW orders nobody has contacted
// 2. DailyOrderSummaryJob - Runs daily at 18:00 to log an order count breakdown by status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getOrdersHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log query failures and carry on; a transient DB error never stops the schedule
// - Failed job starts will stop any already running jobs
package jobs
