package config

import (
	"os"
	"sort"
	"strings"

	"github.com/daytally-io/daytally/internal/models"
)

// LoadTasks loads all tasks from the tasks directory, ordered by position.
func LoadTasks() ([]*models.Task, error) {
	tasksDir, err := TasksDir()
	if err != nil {
		return nil, err
	}

	if !FileExists(tasksDir) {
		return []*models.Task{}, nil
	}

	entries, err := os.ReadDir(tasksDir)
	if err != nil {
		return nil, err
	}

	var tasks []*models.Task
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		var task models.Task
		if err := LoadYAML(TaskFile(tasksDir, strings.TrimSuffix(entry.Name(), ".yaml")), &task); err != nil {
			return nil, err
		}
		tasks = append(tasks, &task)
	}

	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Position != tasks[j].Position {
			return tasks[i].Position < tasks[j].Position
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// SaveTask saves a task to its YAML file.
func SaveTask(task *models.Task) error {
	tasksDir, err := TasksDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(tasksDir, 0o755); err != nil {
		return err
	}
	return SaveYAML(TaskFile(tasksDir, task.TaskID), task)
}

// DeleteTaskFile permanently deletes a task file.
func DeleteTaskFile(taskID string) error {
	tasksDir, err := TasksDir()
	if err != nil {
		return err
	}
	path := TaskFile(tasksDir, taskID)
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}
