package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/registry"
)

func setupHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestTaskAddAndDelete(t *testing.T) {
	setupHome(t)

	require.NoError(t, runTaskAdd(taskAddCmd, []string{"Writing"}))
	require.NoError(t, runTaskAdd(taskAddCmd, []string{"Admin"}))

	tasks, err := config.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	require.NoError(t, runTaskDelete(taskDeleteCmd, []string{"1"}))

	tasks, err = config.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Admin", tasks[0].Name)
}

func TestTaskDeleteRefusesLastTask(t *testing.T) {
	setupHome(t)

	require.NoError(t, runTaskAdd(taskAddCmd, []string{"Writing"}))

	err := runTaskDelete(taskDeleteCmd, []string{"1"})
	assert.ErrorIs(t, err, registry.ErrLastTask)

	tasks, err := config.LoadTasks()
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestTaskDeleteInvalidNumber(t *testing.T) {
	setupHome(t)

	require.NoError(t, runTaskAdd(taskAddCmd, []string{"Writing"}))

	assert.Error(t, runTaskDelete(taskDeleteCmd, []string{"5"}))
	assert.Error(t, runTaskDelete(taskDeleteCmd, []string{"zero"}))
}

func TestTaskRename(t *testing.T) {
	setupHome(t)

	require.NoError(t, runTaskAdd(taskAddCmd, []string{"Writing"}))
	require.NoError(t, runTaskRename(taskRenameCmd, []string{"1", "Deep", "Work"}))

	tasks, err := config.LoadTasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Deep Work", tasks[0].Name)
}
