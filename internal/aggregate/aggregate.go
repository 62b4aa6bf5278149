// Package aggregate computes read-side views over the ledger: day totals,
// month totals and the padded month grid used by the calendar.
package aggregate

import (
	"time"

	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/ledger"
)

// Aggregator answers calendar and report queries from ledger entries.
type Aggregator struct {
	led ledger.Ledger
	loc *time.Location
}

// New creates an aggregator reading from led, bucketing days in loc.
func New(led ledger.Ledger, loc *time.Location) *Aggregator {
	return &Aggregator{led: led, loc: loc}
}

// TotalsForDay returns task name -> seconds for one calendar day. Duplicate
// entries for a task are summed; the ledger shouldn't produce them, but the
// view must not depend on that.
func (a *Aggregator) TotalsForDay(day time.Time) (map[string]float64, error) {
	entries, err := a.led.Query(day)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64, len(entries))
	for _, e := range entries {
		totals[e.TaskName] += e.Seconds
	}
	return totals, nil
}

// TotalsForMonth returns day start -> total seconds across all tasks for
// every day of the month containing anchor. Days without activity are
// present with a zero total, not absent.
func (a *Aggregator) TotalsForMonth(anchor time.Time) (map[time.Time]float64, error) {
	first := clock.MonthStart(anchor, a.loc)
	last := first.AddDate(0, 1, -1)

	totals := make(map[time.Time]float64)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		totals[day] = 0
	}

	entries, err := a.led.QueryRange(first, last)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		day := clock.DayStart(e.Day, a.loc)
		totals[day] += e.Seconds
	}
	return totals, nil
}

// MonthGrid returns the ordered day sequence spanning full weeks that cover
// the month containing anchor. Leading and trailing days of adjacent months
// are included so every row is a complete week starting on weekStart.
func (a *Aggregator) MonthGrid(anchor time.Time, weekStart time.Weekday) []time.Time {
	first := clock.MonthStart(anchor, a.loc)
	last := first.AddDate(0, 1, -1)

	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7
	day := first.AddDate(0, 0, -lead)

	var grid []time.Time
	for !day.After(last) || len(grid)%7 != 0 {
		grid = append(grid, day)
		day = day.AddDate(0, 0, 1)
	}
	return grid
}
