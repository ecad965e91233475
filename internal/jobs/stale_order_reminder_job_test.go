package jobs

import (
	"testing"
	"time"

	"farmstore/internal/core/application/usecases/queries"
	"farmstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func orderRow(status string, age time.Duration, now time.Time) queries.GetOrdersQueryResponse {
	return queries.GetOrdersQueryResponse{
		ID:        kernel.NewUUID(),
		Status:    status,
		CreatedAt: now.Add(-age),
	}
}

func TestStaleNewOrders_FiltersByStatusAndAge(t *testing.T) {
	now := time.Now().UTC()
	threshold := 30 * time.Minute

	rows := []queries.GetOrdersQueryResponse{
		orderRow("NEW", 5*time.Minute, now),
		orderRow("NEW", 45*time.Minute, now),
		orderRow("CONTACTED", 2*time.Hour, now),
		orderRow("NEW", 90*time.Minute, now),
		orderRow("DELIVERED", 3*time.Hour, now),
	}

	stale := staleNewOrders(rows, threshold, now)

	assert.Len(t, stale, 2)
	for _, row := range stale {
		assert.Equal(t, "NEW", row.Status)
	}
}

func TestStaleNewOrders_EmptyWhenNothingStale(t *testing.T) {
	now := time.Now().UTC()

	rows := []queries.GetOrdersQueryResponse{
		orderRow("NEW", time.Minute, now),
		orderRow("CONFIRMED", 2*time.Hour, now),
	}

	assert.Empty(t, staleNewOrders(rows, 30*time.Minute, now))
}

func TestStaleNewOrders_PreservesNewestFirstOrder(t *testing.T) {
	now := time.Now().UTC()

	newest := orderRow("NEW", time.Hour, now)
	oldest := orderRow("NEW", 3*time.Hour, now)
	rows := []queries.GetOrdersQueryResponse{newest, oldest}

	stale := staleNewOrders(rows, 30*time.Minute, now)

	assert.Len(t, stale, 2)
	assert.Equal(t, newest.ID, stale[0].ID)
	assert.Equal(t, oldest.ID, stale[1].ID)
}

func TestCountByStatus(t *testing.T) {
	now := time.Now().UTC()

	rows := []queries.GetOrdersQueryResponse{
		orderRow("NEW", time.Minute, now),
		orderRow("NEW", time.Hour, now),
		orderRow("DELIVERED", time.Hour, now),
		orderRow("CANCELLED", time.Hour, now),
	}

	counts := countByStatus(rows)

	assert.Equal(t, 2, counts["NEW"])
	assert.Equal(t, 1, counts["DELIVERED"])
	assert.Equal(t, 1, counts["CANCELLED"])
	assert.Equal(t, 0, counts["CONTACTED"])
}
