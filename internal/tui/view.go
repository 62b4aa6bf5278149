package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the full TUI frame.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	statusBar := renderStatusBar(&m, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.tab {
	case tabTimer:
		content = m.renderTimerView(m.width, contentHeight)
	case tabCalendar:
		content = m.renderCalendarView(m.width, contentHeight)
	}
	content = lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, content)

	frame := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	switch m.activeOverlay {
	case overlayHelp:
		return centerOverlay(renderHelp(), m.width, m.height)
	case overlayAddTask, overlayRenameTask:
		if m.form != nil {
			return centerOverlay(m.form.View(), m.width, m.height)
		}
	}

	return frame
}

// renderHeader renders the tab line.
func (m Model) renderHeader() string {
	tabs := []string{"1 Timer", "2 Calendar"}
	parts := make([]string, 0, len(tabs))
	for i, label := range tabs {
		if i == m.tab {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, inactiveTabStyle.Render(label))
		}
	}
	line := " " + strings.Join(parts, tabSepStyle.Render("  │  "))
	return headerStyle.Width(m.width).Render(line)
}

// centerOverlay places overlay content in the middle of the screen.
func centerOverlay(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
