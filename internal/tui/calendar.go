package tui

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/daytally-io/daytally/internal/aggregate"
	"github.com/daytally-io/daytally/internal/clock"
	"github.com/daytally-io/daytally/internal/config"
)

// renderCalendarView renders the month grid next to the day breakdown.
func (m Model) renderCalendarView(width, height int) string {
	gridWidth := width / 2
	if gridWidth < 30 {
		gridWidth = width
	}

	grid := m.renderMonthGrid(gridWidth)
	if gridWidth == width {
		return grid
	}

	breakdown := m.renderDayBreakdown(width - gridWidth)
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, breakdown)
}

// renderMonthGrid renders week rows for the anchor month. Each cell shows
// the day number and a dot when any time was tracked that day.
func (m Model) renderMonthGrid(width int) string {
	title := calHeaderStyle.Render(m.calAnchor.Format("January 2006"))

	weekStart := config.WeekStart(m.settings)
	var headerCells []string
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(weekStart) + i) % 7)
		headerCells = append(headerCells, calWeekdayStyle.Render(day.String()[:2]))
	}
	header := strings.Join(headerCells, "  ")

	today := clock.DayStart(m.clk.Now(), m.loc)
	anchorMonth := clock.MonthStart(m.calAnchor, m.loc)

	var rows []string
	var row []string
	for _, day := range m.calGrid {
		cell := day.Format("_2")
		if m.monthTotals[day] > 0 {
			cell += calDotStyle.Render("•")
		} else {
			cell += " "
		}

		switch {
		case day.Equal(m.calSelected):
			cell = calSelectedStyle.Render(cell)
		case day.Equal(today):
			cell = calTodayStyle.Render(cell)
		case !clock.MonthStart(day, m.loc).Equal(anchorMonth):
			cell = calOverflowDayStyle.Render(cell)
		default:
			cell = calDayStyle.Render(cell)
		}

		row = append(row, cell)
		if len(row) == 7 {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}

	monthTotal := 0.0
	for _, secs := range m.monthTotals {
		monthTotal += secs
	}
	footer := taskDimStyle.Render("month total " + aggregate.FormatTotal(monthTotal))

	content := title + "\n\n" + header + "\n" + strings.Join(rows, "\n") + "\n\n" + footer
	return paneBorderStyle.Width(width - 2).Render(content)
}

// renderDayBreakdown renders the per-task totals for the selected day.
func (m Model) renderDayBreakdown(width int) string {
	title := calHeaderStyle.Render(m.calSelected.Format("Mon, Jan 2"))

	if len(m.dayTotals) == 0 {
		content := title + "\n\n" + taskDimStyle.Render("No time tracked.")
		return paneBorderStyle.Width(width - 2).Render(content)
	}

	names := make([]string, 0, len(m.dayTotals))
	for name := range m.dayTotals {
		names = append(names, name)
	}
	sort.Strings(names)

	innerWidth := width - 6
	if innerWidth < 20 {
		innerWidth = 20
	}

	var total float64
	lines := make([]string, 0, len(names)+2)
	for _, name := range names {
		secs := m.dayTotals[name]
		total += secs

		left := taskNameStyle.Render(name)
		right := aggregate.FormatTotal(secs)
		gap := innerWidth - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		lines = append(lines, left+strings.Repeat(" ", gap)+right)
	}
	lines = append(lines, "", calHeaderStyle.Render("total "+aggregate.FormatTotal(total)))

	content := title + "\n\n" + strings.Join(lines, "\n")
	return paneBorderStyle.Width(width - 2).Render(content)
}
