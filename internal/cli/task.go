package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daytally-io/daytally/internal/aggregate"
	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
	"github.com/daytally-io/daytally/internal/registry"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Manage the task list without entering the TUI.`,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskRenameCmd = &cobra.Command{
	Use:   "rename [number] [new-name]",
	Short: "Rename a task",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runTaskRename,
}

var taskDeleteCmd = &cobra.Command{
	Use:     "delete [number]",
	Aliases: []string{"rm"},
	Short:   "Delete a task (past days keep its logged time)",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskRenameCmd)
}

func loadRegistry() (*registry.Registry, error) {
	if err := config.EnsureDirs(); err != nil {
		return nil, err
	}
	tasks, err := config.LoadTasks()
	if err != nil {
		return nil, err
	}
	return registry.New(tasks), nil
}

// resolveTask converts a 1-based list number into a task index.
func resolveTask(reg *registry.Registry, arg string) (int, error) {
	num, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task number: %s", arg)
	}
	if num < 1 || num > reg.Len() {
		return 0, fmt.Errorf("no task #%d (have %d tasks)", num, reg.Len())
	}
	return num - 1, nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		fmt.Println("No tasks. Run 'daytally task add <name>' to create one.")
		return nil
	}

	agg, err := newAggregator()
	if err != nil {
		return err
	}
	day := clock.DayStart(time.Now(), time.Local)
	totals, err := agg.TotalsForDay(day)
	if err != nil {
		return err
	}

	for i, t := range reg.Tasks() {
		today := ""
		if sec, ok := totals[t.Name]; ok && sec > 0 {
			today = "  " + aggregate.FormatTotal(sec) + " today"
		}
		fmt.Printf("  #%d  %s%s\n", i+1, t.Name, today)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	task, err := reg.Add(name)
	if err != nil {
		return err
	}
	if err := config.SaveTask(task); err != nil {
		return err
	}

	fmt.Printf("Task %q created.\n", task.Name)
	return nil
}

func runTaskRename(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	idx, err := resolveTask(reg, args[0])
	if err != nil {
		return err
	}

	task := reg.Tasks()[idx]
	oldName := task.Name
	name := strings.TrimSpace(strings.Join(args[1:], " "))
	if _, err := reg.Rename(task.TaskID, name); err != nil {
		return err
	}
	if err := config.SaveTask(task); err != nil {
		return err
	}

	fmt.Printf("Task %q renamed to %q.\n", oldName, task.Name)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	idx, err := resolveTask(reg, args[0])
	if err != nil {
		return err
	}

	task := reg.Tasks()[idx]
	if _, err := reg.Delete(task.TaskID); err != nil {
		return err
	}
	if err := config.DeleteTaskFile(task.TaskID); err != nil {
		return err
	}

	fmt.Printf("Task %q deleted. Past days keep its logged time.\n", task.Name)
	return nil
}
