// Package registry holds the ordered in-memory set of tasks and the
// selection pointer. Persistence is the caller's concern: operations return
// the affected task so it can be written through the config layer.
package registry

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/daytally-io/daytally/internal/models"
)

// Errors returned by registry operations.
var (
	ErrEmptyTaskName = errors.New("task name must not be empty")
	ErrLastTask      = errors.New("cannot delete the last remaining task")
	ErrTaskNotFound  = errors.New("task not found")
)

// Registry is an ordered set of tasks with a selected index.
type Registry struct {
	tasks    []*models.Task
	selected int
}

// New creates a registry from persisted tasks, which are expected to be
// position-ordered. Selection starts at the first task.
func New(tasks []*models.Task) *Registry {
	return &Registry{tasks: tasks}
}

// Tasks returns the tasks in display order.
func (r *Registry) Tasks() []*models.Task {
	return r.tasks
}

// Len returns the number of tasks.
func (r *Registry) Len() int {
	return len(r.tasks)
}

// Selected returns the currently selected task, or nil when the registry is
// empty.
func (r *Registry) Selected() *models.Task {
	if len(r.tasks) == 0 {
		return nil
	}
	return r.tasks[r.selected]
}

// SelectedIndex returns the index of the selected task.
func (r *Registry) SelectedIndex() int {
	return r.selected
}

// ByID returns the task with the given ID.
func (r *Registry) ByID(id string) (*models.Task, error) {
	for _, t := range r.tasks {
		if t.TaskID == id {
			return t, nil
		}
	}
	return nil, ErrTaskNotFound
}

// Add appends a new task. Empty or whitespace-only names are rejected;
// duplicate names are allowed.
func (r *Registry) Add(name string) (*models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTaskName
	}

	position := 1
	if n := len(r.tasks); n > 0 {
		position = r.tasks[n-1].Position + 1
	}
	task := models.NewTask(uuid.NewString(), name, position)
	r.tasks = append(r.tasks, task)
	return task, nil
}

// Rename changes a task's name in place. Historical ledger entries keep the
// name they were credited under.
func (r *Registry) Rename(id, name string) (*models.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTaskName
	}
	task, err := r.ByID(id)
	if err != nil {
		return nil, err
	}
	task.Rename(name)
	return task, nil
}

// Delete removes a task. Deleting the sole remaining task is rejected.
// When the selected task is removed, selection clamps to a valid index.
func (r *Registry) Delete(id string) (*models.Task, error) {
	if len(r.tasks) <= 1 {
		return nil, ErrLastTask
	}

	idx := -1
	for i, t := range r.tasks {
		if t.TaskID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrTaskNotFound
	}

	task := r.tasks[idx]
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)

	if r.selected > idx || r.selected >= len(r.tasks) {
		r.selected--
	}
	if r.selected < 0 {
		r.selected = 0
	}
	return task, nil
}

// Select moves the selection pointer to the task with the given ID.
func (r *Registry) Select(id string) error {
	for i, t := range r.tasks {
		if t.TaskID == id {
			r.selected = i
			return nil
		}
	}
	return ErrTaskNotFound
}

// SelectIndex moves the selection pointer to an index, clamping to range.
func (r *Registry) SelectIndex(i int) {
	if len(r.tasks) == 0 {
		r.selected = 0
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(r.tasks) {
		i = len(r.tasks) - 1
	}
	r.selected = i
}
