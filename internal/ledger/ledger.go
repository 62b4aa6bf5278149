// Package ledger stores accumulated seconds per calendar day and task.
package ledger

import (
	"errors"
	"time"

	"github.com/daytally-io/daytally/internal/models"
)

// MaxDaySeconds is one calendar day's worth of seconds. A (day, task) total
// never exceeds it; credits past the cap are clamped, not rejected.
const MaxDaySeconds = 86400

// ErrNegativeCredit is returned when a credit amount is below zero.
var ErrNegativeCredit = errors.New("credit amount must not be negative")

// Ledger is the durable per-day-per-task accumulated-seconds store consumed
// by the stopwatch engine and the aggregator.
type Ledger interface {
	// Credit merges seconds into the entry for (day, taskName), creating it
	// if absent. Concurrent credits to the same key merge additively.
	Credit(day time.Time, taskName string, seconds float64) error

	// Query returns all entries for a single calendar day, ordered by task name.
	Query(day time.Time) ([]models.Entry, error)

	// QueryRange returns all entries between start and end inclusive,
	// ordered by day then task name.
	QueryRange(start, end time.Time) ([]models.Entry, error)
}
