package models

import "time"

// Entry is one accumulated daily total: seconds tracked for a single task
// name on a single calendar day. The task name is a denormalized copy taken
// at credit time; renaming a task does not rewrite past entries.
type Entry struct {
	Day      time.Time `yaml:"day"` // Local midnight of the calendar day
	TaskName string    `yaml:"task"`
	Seconds  float64   `yaml:"seconds"`
}
