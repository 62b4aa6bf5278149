// Package stopwatch implements the state machine that accumulates elapsed
// time for the selected task and flushes daily totals to the ledger.
package stopwatch

import (
	"errors"
	"sync"
	"time"

	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/ledger"
	"github.com/daytally-io/daytally/internal/registry"
)

// Errors returned on engine misuse. The TUI guards these calls, so in the
// canonical flow they never propagate to the user.
var (
	ErrAlreadyRunning = errors.New("stopwatch is already running")
	ErrNotRunning     = errors.New("stopwatch is not running")
	ErrNoTaskSelected = errors.New("no task selected")
)

// pendingCredit is a ledger flush that hasn't succeeded yet. Failed flushes
// are retained here and retried before any new flush, so a storage error
// never discards tracked seconds.
type pendingCredit struct {
	day      time.Time
	taskName string
	seconds  float64
}

// Engine drives the stopwatch. It has two states, stopped and running;
// Tick is only meaningful while running and is driven by an external
// scheduler with instants from the injected clock.
//
// All methods are safe for concurrent use; a mutex serializes ticks against
// start/stop/select so a delayed tick can never interleave mid-transition.
type Engine struct {
	mu sync.Mutex

	clk clock.Clock
	loc *time.Location
	led ledger.Ledger
	reg *registry.Registry

	running  bool
	elapsed  float64 // seconds accrued in the current day's session
	lastTick time.Time

	pending []pendingCredit
}

// New creates a stopped engine over the given registry and ledger.
func New(clk clock.Clock, loc *time.Location, led ledger.Ledger, reg *registry.Registry) *Engine {
	return &Engine{
		clk: clk,
		loc: loc,
		led: led,
		reg: reg,
	}
}

// Running reports whether the stopwatch is running.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Elapsed returns the current session's accumulated seconds.
func (e *Engine) Elapsed() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elapsed
}

// PendingSeconds returns the total of unflushed seconds awaiting a retry.
func (e *Engine) PendingSeconds() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total float64
	for _, p := range e.pending {
		total += p.seconds
	}
	return total
}

// Start begins a new session for the selected task. The counter starts from
// zero: the previous session's seconds were flushed on stop and only remain
// on screen until now. Start never fails on storage; queued credits from an
// earlier failed flush are retried here, and if the retry fails they stay
// queued for the first tick to retry and report.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		return ErrAlreadyRunning
	}
	task := e.reg.Selected()
	if task == nil {
		return ErrNoTaskSelected
	}

	_ = e.drainPendingLocked()

	e.elapsed = 0
	task.SessionSeconds = 0
	e.lastTick = e.clk.Now()
	e.running = true
	return nil
}

// Stop halts the stopwatch and flushes the session's seconds to the ledger
// under the day they were accrued. The elapsed value is left in place so the
// final total stays on screen until the task is switched or restarted.
func (e *Engine) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return ErrNotRunning
	}
	return e.stopLocked()
}

// Tick advances the stopwatch to now. On a calendar-day change it flushes
// the previous day's accumulated seconds and continues accumulation in the
// new day. Safe to call with arbitrarily large gaps between ticks.
func (e *Engine) Tick(now time.Time) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		// A timer may fire after stop; ignore it.
		return nil
	}

	task := e.reg.Selected()
	if task == nil {
		return ErrNoTaskSelected
	}

	delta := now.Sub(e.lastTick).Seconds()
	if delta < 0 {
		// Clock stepped backwards; accrue nothing, realign the baseline.
		e.lastTick = now
		return e.drainPendingLocked()
	}

	if !clock.SameLocalDay(e.lastTick, now, e.loc) {
		e.rolloverLocked(task.Name, now, delta)
	} else {
		e.elapsed += delta
	}

	task.SessionSeconds = e.elapsed
	e.lastTick = now

	return e.drainPendingLocked()
}

// SelectTask switches the selected task. If the stopwatch is running, the
// outgoing task's session is stopped and flushed first; switching never
// silently merges two tasks' time.
func (e *Engine) SelectTask(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.running {
		if err := e.stopLocked(); err != nil {
			return err
		}
	}

	if err := e.reg.Select(id); err != nil {
		return err
	}
	e.elapsed = e.reg.Selected().SessionSeconds
	return nil
}

// SyncSelected realigns the live counter with the selected task, e.g. after
// the registry mutated underneath a stopped engine.
func (e *Engine) SyncSelected() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if task := e.reg.Selected(); task != nil {
		e.elapsed = task.SessionSeconds
	} else {
		e.elapsed = 0
	}
}

// rolloverLocked handles a tick whose instant falls on a later calendar day
// than the previous tick.
//
// Exactly one flush happens no matter how many midnights passed:
//   - one day ahead: the accumulated seconds go to the previous tick's day
//     and the session continues with the post-midnight slice of the delta
//   - more than one day ahead (host suspended): the accumulated seconds and
//     the whole gap go to the previous tick's day, capped by the ledger's
//     daily clamp, and the new day starts at zero
//
// On a single-day crossing the slice of the delta that fell before midnight
// is not accrued anywhere; at tick cadence it is at most one interval.
func (e *Engine) rolloverLocked(taskName string, now time.Time, delta float64) {
	prevDay := clock.DayStart(e.lastTick, e.loc)
	newDay := clock.DayStart(now, e.loc)
	gapDays := int(newDay.Sub(prevDay).Hours() / 24)

	if gapDays > 1 {
		e.enqueueLocked(prevDay, taskName, e.elapsed+delta)
		e.elapsed = 0
		return
	}

	e.enqueueLocked(prevDay, taskName, e.elapsed)

	sinceMidnight := now.Sub(newDay).Seconds()
	if sinceMidnight > delta {
		sinceMidnight = delta
	}
	e.elapsed = sinceMidnight
}

func (e *Engine) stopLocked() error {
	e.running = false

	if e.elapsed > 0 {
		e.enqueueLocked(clock.DayStart(e.lastTick, e.loc), e.reg.Selected().Name, e.elapsed)
	}
	// elapsed is intentionally not reset: the total stays visible until the
	// next Start or task switch.
	return e.drainPendingLocked()
}

// enqueueLocked records a flush to be written. Routing every credit through
// the pending queue keeps ordering stable and makes retries after a ledger
// failure automatic.
func (e *Engine) enqueueLocked(day time.Time, taskName string, seconds float64) {
	if seconds <= 0 {
		return
	}
	// Merge with an existing pending credit for the same key.
	for i := range e.pending {
		if e.pending[i].day.Equal(day) && e.pending[i].taskName == taskName {
			e.pending[i].seconds += seconds
			return
		}
	}
	e.pending = append(e.pending, pendingCredit{day: day, taskName: taskName, seconds: seconds})
}

// drainPendingLocked writes queued credits in order, stopping at the first
// failure. Whatever remains is retried on the next tick or stop.
func (e *Engine) drainPendingLocked() error {
	for len(e.pending) > 0 {
		p := e.pending[0]
		if err := e.led.Credit(p.day, p.taskName, p.seconds); err != nil {
			return err
		}
		e.pending = e.pending[1:]
	}
	return nil
}
