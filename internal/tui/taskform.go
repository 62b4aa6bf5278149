package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Form modes.
const (
	formModeAdd    = "add"
	formModeRename = "rename"
)

// TaskForm is the add/rename task overlay form.
type TaskForm struct {
	mode   string
	taskID string // For rename mode

	nameInput textinput.Model
	width     int
}

// NewTaskForm creates a new task form.
func NewTaskForm(mode string, width int) *TaskForm {
	ni := textinput.New()
	ni.Placeholder = "Task name"
	ni.CharLimit = 120
	ni.Width = 40
	ni.Focus()

	return &TaskForm{
		mode:      mode,
		nameInput: ni,
		width:     width,
	}
}

// PreFill fills the form with the existing task name for renaming.
func (tf *TaskForm) PreFill(taskID, name string) {
	tf.taskID = taskID
	tf.nameInput.SetValue(name)
	tf.nameInput.CursorEnd()
}

// Name returns the current name value.
func (tf *TaskForm) Name() string {
	return tf.nameInput.Value()
}

// TaskID returns the target task ID (rename mode only).
func (tf *TaskForm) TaskID() string {
	return tf.taskID
}

// Update forwards a message to the name input.
func (tf *TaskForm) Update(msg tea.Msg, cmd *tea.Cmd) {
	tf.nameInput, *cmd = tf.nameInput.Update(msg)
}

// View renders the task form.
func (tf *TaskForm) View() string {
	title := "Add Task"
	if tf.mode == formModeRename {
		title = "Rename Task"
	}

	formWidth := tf.width / 2
	if formWidth > 50 {
		formWidth = 50
	}
	if formWidth < 30 {
		formWidth = 30
	}

	footer := hintStyle.Render("Enter save  |  Esc cancel")
	content := overlayTitleStyle.Render(title) + "\n" + tf.nameInput.View() + "\n\n" + footer
	return overlayStyle.Width(formWidth).Render(content)
}
