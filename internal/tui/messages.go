package tui

import (
	"time"
)

// tickMsg advances the stopwatch while it is running.
type tickMsg time.Time

// calendarLoadedMsg carries month totals and the padded grid for the
// calendar view.
type calendarLoadedMsg struct {
	Anchor time.Time
	Grid   []time.Time
	Totals map[time.Time]float64
}

// dayLoadedMsg carries the per-task breakdown for the selected day.
type dayLoadedMsg struct {
	Day    time.Time
	Totals map[string]float64
}

// todayLoadedMsg carries per-task totals for the current day, shown next to
// each task in the timer view.
type todayLoadedMsg struct {
	Totals map[string]float64
}

// LedgerChangedMsg is sent by the watcher when a ledger file changed on disk.
type LedgerChangedMsg struct{}

// TasksChangedMsg is sent by the watcher when a task file changed on disk.
type TasksChangedMsg struct{}

// SettingsChangedMsg is sent by the watcher when settings changed on disk.
type SettingsChangedMsg struct{}

// ErrorMsg reports an error to display in the status bar.
type ErrorMsg struct {
	Err error
}

// ClearErrorMsg clears the error display.
type ClearErrorMsg struct{}
