package service

import "time"

// Window bounds are inclusive on both sides and computed in the location of
// the supplied reference time.

// DayWindow returns the bounds of the calendar day containing now.
func DayWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	loc := now.Location()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// WeekWindow returns the bounds of the week containing now. Weeks run
// Monday 00:00:00.000 through Sunday 23:59:59.999.
func WeekWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	loc := now.Location()
	diff := int(time.Monday - now.Weekday())
	if now.Weekday() == time.Sunday {
		diff = -6
	}
	start = time.Date(y, m, d+diff, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d+diff+6, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// MonthWindow returns the bounds of the calendar month containing now.
func MonthWindow(now time.Time) (start, end time.Time) {
	y, m, _ := now.Date()
	loc := now.Location()
	start = time.Date(y, m, 1, 0, 0, 0, 0, loc)
	// Day zero of the next month normalizes to the last day of this one.
	end = time.Date(y, m+1, 0, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}
