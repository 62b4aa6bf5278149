package tui

import "strings"

// renderHelp renders the help overlay.
func renderHelp() string {
	sections := []struct {
		title string
		rows  [][2]string
	}{
		{
			title: "Global",
			rows: [][2]string{
				{"q / Ctrl+c", "quit"},
				{"?", "toggle help"},
				{"Tab / 1 / 2", "switch view"},
			},
		},
		{
			title: "Timer",
			rows: [][2]string{
				{"Space", "start / stop the stopwatch"},
				{"j / k", "select task (stops a running session)"},
				{"a", "add task"},
				{"r", "rename task"},
				{"x", "delete task"},
			},
		},
		{
			title: "Calendar",
			rows: [][2]string{
				{"h / l", "previous / next day"},
				{"j / k", "next / previous week"},
				{"[ / ]", "previous / next month"},
				{"t", "jump to today"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Keyboard Shortcuts"))
	for _, s := range sections {
		b.WriteString("\n" + calHeaderStyle.Render(s.title) + "\n")
		for _, row := range s.rows {
			b.WriteString("  " + keyStyle.Render(padRight(row[0], 12)) + hintStyle.Render(row[1]) + "\n")
		}
	}
	b.WriteString("\n" + hintStyle.Render("Press any key to close"))

	return overlayStyle.Render(b.String())
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
