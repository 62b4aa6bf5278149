package models

import "time"

// Task represents a user-defined tracked activity.
// This corresponds to task YAML files in the ~/.daytally/tasks/ directory.
type Task struct {
	Version   int       `yaml:"version"`
	TaskID    string    `yaml:"task_id"` // UUID, internal only
	Name      string    `yaml:"name"`
	Position  int       `yaml:"position"` // Display/selection ordering
	CreatedAt time.Time `yaml:"created_at"`
	UpdatedAt time.Time `yaml:"updated_at"`

	// SessionSeconds is the live stopwatch value for this task. It is
	// volatile: only accumulated daily totals are persisted, via the ledger.
	SessionSeconds float64 `yaml:"-"`
}

// NewTask creates a new task with default values.
func NewTask(id, name string, position int) *Task {
	now := time.Now().UTC()
	return &Task{
		Version:   1,
		TaskID:    id,
		Name:      name,
		Position:  position,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename changes the task's name. Ledger entries already written under the
// old name are immutable snapshots and are not touched.
func (t *Task) Rename(name string) {
	t.Name = name
	t.UpdatedAt = time.Now().UTC()
}
