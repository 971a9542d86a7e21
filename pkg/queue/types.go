// Package queue runs the worker pool that drains the action queue:
// lease a batch, match rules, execute actions, record outcomes.
package queue

import (
	"errors"
	"time"
)

// ErrNoItemsAvailable is returned by a poll that found nothing to lease.
var ErrNoItemsAvailable = errors.New("no queue items available")

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a point-in-time snapshot of one worker.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentItemID  string       `json:"current_item_id,omitempty"`
	ItemsProcessed int          `json:"items_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// PoolHealth is the pool-level health snapshot for the health endpoint.
type PoolHealth struct {
	IsHealthy       bool           `json:"is_healthy"`
	DBReachable     bool           `json:"db_reachable"`
	DBError         string         `json:"db_error,omitempty"`
	PodID           string         `json:"pod_id"`
	ActiveWorkers   int            `json:"active_workers"`
	TotalWorkers    int            `json:"total_workers"`
	QueueDepth      int            `json:"queue_depth"`
	WorkerStats     []WorkerHealth `json:"worker_stats"`
	LastOrphanScan  time.Time      `json:"last_orphan_scan"`
	OrphansRequeued int            `json:"orphans_requeued"`
}
