package table

import "time"

// FormatRelativeDate renders a timestamp the way the dashboard displays
// activity times: "Today, at 15:04:05", "Yesterday, at 15:04:05", or
// "02 Jan 2006, 15:04:05" for anything older. The clock is 24-hour and
// calendar days are compared in local time.
func FormatRelativeDate(t time.Time) string {
	return formatRelative(t, time.Now())
}

func formatRelative(t, now time.Time) string {
	t = t.In(now.Location())
	if sameDay(t, now) {
		return "Today, at " + t.Format("15:04:05")
	}
	if sameDay(t, now.AddDate(0, 0, -1)) {
		return "Yesterday, at " + t.Format("15:04:05")
	}
	return t.Format("02 Jan 2006, 15:04:05")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
