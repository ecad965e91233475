package jobs

import (
	"context"
	"log/slog"

	"farmstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DailyOrderSummaryJob logs an end-of-day breakdown of orders by status so
// the admin can see at a glance how the day went without opening the panel.
type DailyOrderSummaryJob struct {
	handler queries.GetOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDailyOrderSummaryJob creates the summary job.
func NewDailyOrderSummaryJob(handler queries.GetOrdersQueryHandler, logger *slog.Logger) *DailyOrderSummaryJob {
	return &DailyOrderSummaryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "daily_order_summary_job"),
	}
}

// Start begins the summary job, running once a day at 18:00.
func (j *DailyOrderSummaryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 18 * * *", func() {
		ctx := context.Background()

		rows, err := j.handler.Handle(ctx, queries.NewGetOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Daily order summary job failed", "error", err)
			return
		}

		counts := countByStatus(rows)
		j.logger.InfoContext(ctx, "Daily order summary",
			"total", len(rows),
			"new", counts["NEW"],
			"contacted", counts["CONTACTED"],
			"confirmed", counts["CONFIRMED"],
			"delivered", counts["DELIVERED"],
			"cancelled", counts["CANCELLED"],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily order summary job started (running daily at 18:00)")
	return nil
}

// Stop stops the summary job.
func (j *DailyOrderSummaryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Daily order summary job stopped")
}

func countByStatus(rows []queries.GetOrdersQueryResponse) map[string]int {
	counts := make(map[string]int, 5)
	for _, row := range rows {
		counts[row.Status]++
	}
	return counts
}
