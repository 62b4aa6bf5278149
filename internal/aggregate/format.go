package aggregate

import "fmt"

// FormatClock renders a live stopwatch value as MM:SS.CC, with hundredths
// for sub-second motion. Minutes grow past two digits rather than wrap.
func FormatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	whole := int(seconds)
	hundredths := int(seconds*100) % 100
	return fmt.Sprintf("%02d:%02d.%02d", whole/60, whole%60, hundredths)
}

// FormatTotal renders a historical total as "1h 05m", omitting the hour part
// when it is zero ("42m"). Sub-minute residue is truncated.
func FormatTotal(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes := int(seconds) / 60
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
