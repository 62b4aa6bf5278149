package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daytally-io/daytally/internal/aggregate"
)

// tickCmd schedules the next stopwatch tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadCalendarCmd loads month totals and the padded grid for the month
// containing anchor.
func loadCalendarCmd(agg *aggregate.Aggregator, anchor time.Time, weekStart time.Weekday) tea.Cmd {
	return func() tea.Msg {
		totals, err := agg.TotalsForMonth(anchor)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return calendarLoadedMsg{
			Anchor: anchor,
			Grid:   agg.MonthGrid(anchor, weekStart),
			Totals: totals,
		}
	}
}

// loadDayCmd loads the per-task breakdown for a day.
func loadDayCmd(agg *aggregate.Aggregator, day time.Time) tea.Cmd {
	return func() tea.Msg {
		totals, err := agg.TotalsForDay(day)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return dayLoadedMsg{Day: day, Totals: totals}
	}
}

// loadTodayCmd loads per-task totals for the current day.
func loadTodayCmd(agg *aggregate.Aggregator, day time.Time) tea.Cmd {
	return func() tea.Msg {
		totals, err := agg.TotalsForDay(day)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return todayLoadedMsg{Totals: totals}
	}
}

// clearErrorAfter clears the error display after a delay.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}
