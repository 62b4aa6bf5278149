package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daytally-io/daytally/internal/aggregate"
	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/ledger"
	"github.com/daytally-io/daytally/internal/models"
	"github.com/daytally-io/daytally/internal/registry"
	"github.com/daytally-io/daytally/internal/stopwatch"
)

// Tabs.
const (
	tabTimer = iota
	tabCalendar
)

// Overlays.
const (
	overlayNone = iota
	overlayHelp
	overlayAddTask
	overlayRenameTask
)

// Confirm modes.
const (
	confirmNone = iota
	confirmDelete
	confirmQuit
)

// Model is the root Bubbletea model for the TUI.
type Model struct {
	clk      clock.Clock
	loc      *time.Location
	settings *models.Settings
	reg      *registry.Registry
	led      *ledger.FileLedger
	engine   *stopwatch.Engine
	agg      *aggregate.Aggregator

	// UI state
	tab           int
	width         int
	height        int
	activeOverlay int
	form          *TaskForm
	confirmMode   int
	confirmTaskID string
	err           error

	// Calendar state
	calAnchor   time.Time
	calSelected time.Time
	calGrid     []time.Time
	monthTotals map[time.Time]float64
	dayTotals   map[string]float64

	// Timer view read model
	todayTotals map[string]float64

	ticking bool
}

// NewModel creates the initial TUI model.
func NewModel(
	clk clock.Clock,
	loc *time.Location,
	settings *models.Settings,
	reg *registry.Registry,
	led *ledger.FileLedger,
	engine *stopwatch.Engine,
	agg *aggregate.Aggregator,
) Model {
	today := clock.DayStart(clk.Now(), loc)
	return Model{
		clk:         clk,
		loc:         loc,
		settings:    settings,
		reg:         reg,
		led:         led,
		engine:      engine,
		agg:         agg,
		calAnchor:   today,
		calSelected: today,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadTodayCmd(m.agg, clock.DayStart(m.clk.Now(), m.loc)),
		m.reloadCalendar(),
	)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// ── Stopwatch tick ─────────────────────────────────────────────
	case tickMsg:
		if !m.engine.Running() {
			m.ticking = false
			return m, nil
		}
		if err := m.engine.Tick(time.Time(msg)); err != nil {
			m.err = err
			cmds = append(cmds, clearErrorAfter(5*time.Second))
		}
		cmds = append(cmds, tickCmd(config.TickInterval(m.settings)))
		return m, tea.Batch(cmds...)

	// ── Read models ────────────────────────────────────────────────
	case calendarLoadedMsg:
		m.calAnchor = msg.Anchor
		m.calGrid = msg.Grid
		m.monthTotals = msg.Totals
		return m, nil

	case dayLoadedMsg:
		m.dayTotals = msg.Totals
		return m, nil

	case todayLoadedMsg:
		m.todayTotals = msg.Totals
		return m, nil

	// ── File watcher ───────────────────────────────────────────────
	case LedgerChangedMsg:
		m.led.Invalidate()
		cmds = append(cmds,
			loadTodayCmd(m.agg, clock.DayStart(m.clk.Now(), m.loc)),
			m.reloadCalendar(),
			loadDayCmd(m.agg, m.calSelected),
		)
		return m, tea.Batch(cmds...)

	case TasksChangedMsg:
		// Don't reload tasks underneath a live session; the running state
		// owns the registry until it stops.
		if m.engine.Running() {
			return m, nil
		}
		if cmd := m.reloadTasks(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case SettingsChangedMsg:
		settings, err := config.LoadSettings()
		if err != nil {
			m.err = err
			return m, clearErrorAfter(5 * time.Second)
		}
		m.settings = settings
		return m, m.reloadCalendar()

	// ── Error handling ─────────────────────────────────────────────
	case ErrorMsg:
		m.err = msg.Err
		return m, clearErrorAfter(5 * time.Second)

	case ClearErrorMsg:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKey processes key events.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmMode != confirmNone {
		return m.handleConfirmKey(msg)
	}
	if m.activeOverlay == overlayAddTask || m.activeOverlay == overlayRenameTask {
		return m.handleFormKey(msg)
	}
	if m.activeOverlay == overlayHelp {
		m.activeOverlay = overlayNone
		return m, nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		if m.engine.Running() {
			m.confirmMode = confirmQuit
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, globalKeys.Help):
		m.activeOverlay = overlayHelp
		return m, nil

	case key.Matches(msg, globalKeys.Tab):
		m.tab = 1 - m.tab
		if m.tab == tabCalendar {
			return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, m.calSelected))
		}
		return m, nil

	case key.Matches(msg, globalKeys.TimerTab):
		m.tab = tabTimer
		return m, nil

	case key.Matches(msg, globalKeys.CalTab):
		m.tab = tabCalendar
		return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, m.calSelected))
	}

	if m.tab == tabTimer {
		return m.handleTimerKey(msg)
	}
	return m.handleCalendarKey(msg)
}

// handleTimerKey processes keys in the timer view.
func (m Model) handleTimerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, timerKeys.Toggle):
		return m.toggleStopwatch()

	case key.Matches(msg, timerKeys.Up):
		return m.moveSelection(-1)

	case key.Matches(msg, timerKeys.Down):
		return m.moveSelection(1)

	case key.Matches(msg, timerKeys.Add):
		m.activeOverlay = overlayAddTask
		m.form = NewTaskForm(formModeAdd, m.width)
		return m, nil

	case key.Matches(msg, timerKeys.Rename):
		task := m.reg.Selected()
		if task == nil {
			return m, nil
		}
		m.activeOverlay = overlayRenameTask
		m.form = NewTaskForm(formModeRename, m.width)
		m.form.PreFill(task.TaskID, task.Name)
		return m, nil

	case key.Matches(msg, timerKeys.Delete):
		task := m.reg.Selected()
		if task == nil {
			return m, nil
		}
		if m.reg.Len() <= 1 {
			m.err = registry.ErrLastTask
			return m, clearErrorAfter(5 * time.Second)
		}
		m.confirmMode = confirmDelete
		m.confirmTaskID = task.TaskID
		return m, nil
	}

	return m, nil
}

// handleCalendarKey processes keys in the calendar view.
func (m Model) handleCalendarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, calendarKeys.Left):
		return m.moveCalSelection(-1)
	case key.Matches(msg, calendarKeys.Right):
		return m.moveCalSelection(1)
	case key.Matches(msg, calendarKeys.Up):
		return m.moveCalSelection(-7)
	case key.Matches(msg, calendarKeys.Down):
		return m.moveCalSelection(7)

	case key.Matches(msg, calendarKeys.PrevMonth):
		m.calAnchor = clock.MonthStart(m.calAnchor, m.loc).AddDate(0, -1, 0)
		m.calSelected = m.calAnchor
		return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, m.calSelected))

	case key.Matches(msg, calendarKeys.NextMonth):
		m.calAnchor = clock.MonthStart(m.calAnchor, m.loc).AddDate(0, 1, 0)
		m.calSelected = m.calAnchor
		return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, m.calSelected))

	case key.Matches(msg, calendarKeys.Today):
		today := clock.DayStart(m.clk.Now(), m.loc)
		m.calAnchor = today
		m.calSelected = today
		return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, m.calSelected))
	}

	return m, nil
}

// handleConfirmKey processes keys while a confirmation prompt is shown.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, confirmKeys.Yes):
		mode := m.confirmMode
		m.confirmMode = confirmNone

		switch mode {
		case confirmQuit:
			// Flush the live session before leaving.
			if m.engine.Running() {
				if err := m.engine.Stop(); err != nil {
					m.err = err
					return m, clearErrorAfter(5 * time.Second)
				}
			}
			return m, tea.Quit

		case confirmDelete:
			return m.deleteTask(m.confirmTaskID)
		}
		return m, nil

	case key.Matches(msg, confirmKeys.No), key.Matches(msg, confirmKeys.Cancel):
		m.confirmMode = confirmNone
		m.confirmTaskID = ""
		return m, nil
	}

	return m, nil
}

// handleFormKey processes keys while the add/rename form is shown.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, overlayKeys.Cancel):
		m.activeOverlay = overlayNone
		m.form = nil
		return m, nil

	case key.Matches(msg, overlayKeys.Save):
		name := m.form.Name()
		overlay := m.activeOverlay
		taskID := m.form.TaskID()
		m.activeOverlay = overlayNone
		m.form = nil

		if overlay == overlayAddTask {
			return m.addTask(name)
		}
		return m.renameTask(taskID, name)
	}

	var cmd tea.Cmd
	m.form.Update(msg, &cmd)
	return m, cmd
}

// toggleStopwatch starts or stops the engine. Misuse errors cannot happen
// here because the transition is picked from the current state.
func (m Model) toggleStopwatch() (tea.Model, tea.Cmd) {
	if m.engine.Running() {
		if err := m.engine.Stop(); err != nil {
			m.err = err
			return m, clearErrorAfter(5 * time.Second)
		}
		m.ticking = false
		// Stop flushed to the ledger; refresh totals.
		return m, loadTodayCmd(m.agg, clock.DayStart(m.clk.Now(), m.loc))
	}

	if err := m.engine.Start(); err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	m.ticking = true
	return m, tickCmd(config.TickInterval(m.settings))
}

// moveSelection moves the task selection by delta, stopping and flushing a
// live session first so time never bleeds across tasks.
func (m Model) moveSelection(delta int) (tea.Model, tea.Cmd) {
	if m.reg.Len() == 0 {
		return m, nil
	}
	idx := m.reg.SelectedIndex() + delta
	if idx < 0 || idx >= m.reg.Len() {
		return m, nil
	}

	wasRunning := m.engine.Running()
	if err := m.engine.SelectTask(m.reg.Tasks()[idx].TaskID); err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	if wasRunning {
		m.ticking = false
		return m, loadTodayCmd(m.agg, clock.DayStart(m.clk.Now(), m.loc))
	}
	return m, nil
}

func (m Model) addTask(name string) (tea.Model, tea.Cmd) {
	task, err := m.reg.Add(name)
	if err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	if err := config.SaveTask(task); err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	return m, nil
}

func (m Model) renameTask(id, name string) (tea.Model, tea.Cmd) {
	task, err := m.reg.Rename(id, name)
	if err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	if err := config.SaveTask(task); err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	return m, nil
}

func (m Model) deleteTask(id string) (tea.Model, tea.Cmd) {
	task, err := m.reg.Delete(id)
	if err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	if err := config.DeleteTaskFile(task.TaskID); err != nil {
		m.err = err
		return m, clearErrorAfter(5 * time.Second)
	}
	m.engine.SyncSelected()
	return m, nil
}

// reloadCalendar reloads the month view for the current anchor.
func (m *Model) reloadCalendar() tea.Cmd {
	return loadCalendarCmd(m.agg, m.calAnchor, config.WeekStart(m.settings))
}

// reloadTasks re-reads task files from disk, preserving selection by ID.
func (m *Model) reloadTasks() tea.Cmd {
	tasks, err := config.LoadTasks()
	if err != nil {
		m.err = err
		return clearErrorAfter(5 * time.Second)
	}
	if len(tasks) == 0 {
		// Never let the task list go empty; keep the in-memory set.
		return nil
	}

	// Carry live session counters over by task ID.
	counters := make(map[string]float64, m.reg.Len())
	for _, t := range m.reg.Tasks() {
		counters[t.TaskID] = t.SessionSeconds
	}
	var selectedID string
	if sel := m.reg.Selected(); sel != nil {
		selectedID = sel.TaskID
	}

	for _, t := range tasks {
		t.SessionSeconds = counters[t.TaskID]
	}

	fresh := registry.New(tasks)
	if selectedID != "" {
		if err := fresh.Select(selectedID); err != nil {
			fresh.SelectIndex(0)
		}
	}
	*m.reg = *fresh
	m.engine.SyncSelected()
	return nil
}

// moveCalSelection moves the selected calendar day by delta days.
func (m Model) moveCalSelection(delta int) (tea.Model, tea.Cmd) {
	day := m.calSelected.AddDate(0, 0, delta)
	m.calSelected = day

	// Follow the selection across month edges.
	if !clock.MonthStart(day, m.loc).Equal(clock.MonthStart(m.calAnchor, m.loc)) {
		m.calAnchor = day
		return m, tea.Batch(m.reloadCalendar(), loadDayCmd(m.agg, day))
	}
	return m, loadDayCmd(m.agg, day)
}
