package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/daytally-io/daytally/internal/aggregate"
)

// renderTimerView renders the stopwatch pane and the task list.
func (m Model) renderTimerView(width, height int) string {
	clockPane := m.renderClock(width)
	listHeight := height - lipgloss.Height(clockPane)
	if listHeight < 3 {
		listHeight = 3
	}
	taskPane := m.renderTaskList(width, listHeight)

	return lipgloss.JoinVertical(lipgloss.Left, clockPane, taskPane)
}

// renderClock renders the live stopwatch readout for the selected task.
func (m Model) renderClock(width int) string {
	task := m.reg.Selected()

	name := "(no task)"
	if task != nil {
		name = task.Name
	}

	readout := aggregate.FormatClock(m.engine.Elapsed())
	var line string
	if m.engine.Running() {
		line = clockRunningStyle.Render("▶ "+readout) + taskDimStyle.Render("  tracking "+name)
	} else {
		line = clockStoppedStyle.Render("■ "+readout) + taskDimStyle.Render("  "+name)
	}

	if pending := m.engine.PendingSeconds(); pending > 0 {
		line += "\n" + lipgloss.NewStyle().Foreground(colorYellow).
			Render(fmt.Sprintf("⚠ %s unsaved, retrying", aggregate.FormatTotal(pending)))
	}

	return paneBorderStyle.Width(width - 2).Render(line)
}

// renderTaskList renders the ordered tasks with their totals for today.
func (m Model) renderTaskList(width, height int) string {
	tasks := m.reg.Tasks()
	if len(tasks) == 0 {
		return paneBorderStyle.Width(width - 2).Render(taskDimStyle.Render("No tasks. Press 'a' to add one."))
	}

	innerWidth := width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		total := m.todayTotals[task.Name]

		right := taskDimStyle.Render(aggregate.FormatTotal(total) + " today")
		if task.SessionSeconds > 0 {
			right = taskDimStyle.Render(aggregate.FormatClock(task.SessionSeconds)) + "  " + right
		}

		left := taskNameStyle.Render(task.Name)
		gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		line := " " + left + strings.Repeat(" ", gap) + right + " "

		if i == m.reg.SelectedIndex() {
			line = selectedItemStyle.Render(line)
		}
		lines = append(lines, line)
	}

	// Clip to the available height, keeping the selection visible.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if sel := m.reg.SelectedIndex(); sel >= visible {
		start = sel - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	return paneBorderStyle.Width(width - 2).Render(strings.Join(lines[start:end], "\n"))
}
