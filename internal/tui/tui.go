// Package tui implements the interactive terminal UI for daytally.
package tui

import (
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daytally-io/daytally/internal/aggregate"
	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/ledger"
	"github.com/daytally-io/daytally/internal/registry"
	"github.com/daytally-io/daytally/internal/stopwatch"
	"github.com/daytally-io/daytally/internal/watcher"
)

// programRef is a shared reference to the tea.Program for goroutine sends.
// It's set after tea.NewProgram but before p.Run().
type programRef struct {
	mu sync.Mutex
	p  *tea.Program
}

func (r *programRef) Set(p *tea.Program) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = p
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.Lock()
	p := r.p
	r.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// Clear nils out the program reference, preventing post-exit sends.
func (r *programRef) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.p = nil
}

// Run launches the TUI.
func Run() error {
	if err := config.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create data directories: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	tasks, err := config.LoadTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}

	reg := registry.New(tasks)
	if reg.Len() == 0 {
		// First launch: the task list must never be empty.
		task, err := reg.Add("General")
		if err != nil {
			return err
		}
		if err := config.SaveTask(task); err != nil {
			return fmt.Errorf("failed to save default task: %w", err)
		}
	}

	ledgerDir, err := config.LedgerDir()
	if err != nil {
		return err
	}

	loc := time.Local
	clk := clock.System{}
	led := ledger.NewFileLedger(ledgerDir, loc)
	engine := stopwatch.New(clk, loc, led, reg)
	agg := aggregate.New(led, loc)

	ref := &programRef{}
	model := NewModel(clk, loc, settings, reg, led, engine, agg)

	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.Set(p)

	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	go forwardWatcherEvents(w, ref)

	_, err = p.Run()
	ref.Clear()
	return err
}

// forwardWatcherEvents translates watcher events into TUI messages.
func forwardWatcherEvents(w *watcher.Watcher, ref *programRef) {
	for event := range w.Events() {
		switch event.Type {
		case watcher.EventLedgerChanged:
			ref.Send(LedgerChangedMsg{})
		case watcher.EventTasksChanged:
			ref.Send(TasksChangedMsg{})
		case watcher.EventSettingsChanged:
			ref.Send(SettingsChangedMsg{})
		}
	}
}
