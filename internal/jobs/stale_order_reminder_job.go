package jobs

import (
	"context"
	"log/slog"
	"time"

	"farmstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleOrderReminderJob periodically scans for orders still in NEW that
// nobody has contacted. Every NEW order is a buyer waiting for a call, so
// the job surfaces the backlog in the logs for the admin to act on.
type StaleOrderReminderJob struct {
	handler   queries.GetOrdersQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderReminderJob creates the reminder job. Orders in NEW for
// longer than threshold are reported on each run.
func NewStaleOrderReminderJob(handler queries.GetOrdersQueryHandler, threshold time.Duration, logger *slog.Logger) *StaleOrderReminderJob {
	return &StaleOrderReminderJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_order_reminder_job"),
	}
}

// Start begins the reminder job, running every five minutes.
func (j *StaleOrderReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()

		rows, err := j.handler.Handle(ctx, queries.NewGetOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order reminder job failed", "error", err)
			return
		}

		stale := staleNewOrders(rows, j.threshold, time.Now().UTC())
		if len(stale) == 0 {
			return
		}

		oldest := stale[len(stale)-1]
		j.logger.WarnContext(ctx, "Orders awaiting first contact",
			"count", len(stale),
			"oldest_order_id", oldest.ID.String(),
			"oldest_age", time.Since(oldest.CreatedAt).Round(time.Minute).String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order reminder job started (running every five minutes)")
	return nil
}

// Stop stops the reminder job.
func (j *StaleOrderReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order reminder job stopped")
}

// staleNewOrders filters rows down to NEW orders older than threshold.
// Rows arrive newest first, so the last element is the oldest offender.
func staleNewOrders(rows []queries.GetOrdersQueryResponse, threshold time.Duration, now time.Time) []queries.GetOrdersQueryResponse {
	stale := make([]queries.GetOrdersQueryResponse, 0)
	for _, row := range rows {
		if row.Status == "NEW" && now.Sub(row.CreatedAt) > threshold {
			stale = append(stale, row)
		}
	}
	return stale
}
