package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	if m.confirmMode == confirmDelete {
		return renderConfirmBar("Delete task? Past days keep its logged time. (y/n)", width)
	}
	if m.confirmMode == confirmQuit {
		return renderConfirmBar("Stopwatch running. Stop and quit? (y/n)", width)
	}

	if m.err != nil {
		return renderErrorBar(m.err.Error(), width)
	}

	left := " " + getKeyHints(m)

	right := ""
	if m.engine.Running() {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("● tracking") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.activeOverlay == overlayAddTask || m.activeOverlay == overlayRenameTask {
		return keyHint("Enter", "save") + "  " + keyHint("Esc", "cancel")
	}

	base := keyHint("q", "quit") + "  " + keyHint("?", "help") + "  " + keyHint("Tab", "view")

	if m.tab == tabTimer {
		return base + "  " + keyHint("Space", "start/stop") + "  " + keyHint("j/k", "task") + "  " +
			keyHint("a", "add") + "  " + keyHint("r", "rename") + "  " + keyHint("x", "delete")
	}
	return base + "  " + keyHint("h/j/k/l", "day") + "  " + keyHint("[/]", "month") + "  " + keyHint("t", "today")
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}

func renderConfirmBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorYellow).
		Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "0"}).
		Width(width).
		Render(" " + msg)
}

func renderErrorBar(msg string, width int) string {
	return statusBarStyle.
		Background(colorRed).
		Width(width).
		Render(" " + msg)
}
