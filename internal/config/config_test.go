package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daytally-io/daytally/internal/models"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestSaveYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.yaml")

	in := models.NewSettings()
	in.WeekStart = "sunday"
	require.NoError(t, SaveYAML(path, in))

	// No temp file may survive the rename.
	assert.False(t, FileExists(path+".tmp"))

	var out models.Settings
	require.NoError(t, LoadYAML(path, &out))
	assert.Equal(t, "sunday", out.WeekStart)
	assert.Equal(t, in.TickIntervalMS, out.TickIntervalMS)
}

func TestLoadYAMLMissingFile(t *testing.T) {
	var out models.Settings
	err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &out)
	assert.Error(t, err)
}

func TestLoadSettingsDefaultsWhenAbsent(t *testing.T) {
	setupHome(t)

	settings, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), settings)
}

func TestSettingsRoundTrip(t *testing.T) {
	setupHome(t)

	in := models.NewSettings()
	in.WeekStart = "sunday"
	in.TickIntervalMS = 250
	require.NoError(t, SaveSettings(in))

	out, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "sunday", out.WeekStart)
	assert.Equal(t, 250, out.TickIntervalMS)
}

func TestLoadTasksEmptyWhenDirAbsent(t *testing.T) {
	setupHome(t)

	tasks, err := LoadTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveAndLoadTasksOrderedByPosition(t *testing.T) {
	setupHome(t)

	// Save out of order; loading must sort by position.
	require.NoError(t, SaveTask(models.NewTask("id-b", "Admin", 2)))
	require.NoError(t, SaveTask(models.NewTask("id-c", "Meetings", 3)))
	require.NoError(t, SaveTask(models.NewTask("id-a", "Writing", 1)))

	tasks, err := LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "Writing", tasks[0].Name)
	assert.Equal(t, "Admin", tasks[1].Name)
	assert.Equal(t, "Meetings", tasks[2].Name)
}

func TestLoadTasksSkipsForeignFiles(t *testing.T) {
	setupHome(t)
	require.NoError(t, EnsureDirs())

	tasksDir, err := TasksDir()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "notes.txt"), []byte("x"), 0o644))

	require.NoError(t, SaveTask(models.NewTask("id-a", "Writing", 1)))

	tasks, err := LoadTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestDeleteTaskFile(t *testing.T) {
	setupHome(t)

	task := models.NewTask("id-a", "Writing", 1)
	require.NoError(t, SaveTask(task))
	require.NoError(t, DeleteTaskFile(task.TaskID))

	tasks, err := LoadTasks()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Deleting a missing file is not an error.
	assert.NoError(t, DeleteTaskFile(task.TaskID))
}

func TestEnsureDirs(t *testing.T) {
	home := setupHome(t)

	require.NoError(t, EnsureDirs())
	assert.DirExists(t, filepath.Join(home, GlobalDirName, TasksDirName))
	assert.DirExists(t, filepath.Join(home, GlobalDirName, LedgerDirName))

	// Idempotent.
	assert.NoError(t, EnsureDirs())
}

func TestTickInterval(t *testing.T) {
	s := models.NewSettings()
	assert.Equal(t, time.Duration(s.TickIntervalMS)*time.Millisecond, TickInterval(s))

	s.TickIntervalMS = 0
	assert.Equal(t, 100*time.Millisecond, TickInterval(s))

	s.TickIntervalMS = -5
	assert.Equal(t, 100*time.Millisecond, TickInterval(s))
}

func TestWeekStart(t *testing.T) {
	s := models.NewSettings()
	assert.Equal(t, time.Monday, WeekStart(s))

	s.WeekStart = "sunday"
	assert.Equal(t, time.Sunday, WeekStart(s))

	s.WeekStart = "something-else"
	assert.Equal(t, time.Monday, WeekStart(s))
}
