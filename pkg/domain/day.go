package domain

import "time"

// Day truncates t to midnight in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysAgo returns the calendar day n days before day.
func DaysAgo(day time.Time, n int) time.Time {
	return Day(day).AddDate(0, 0, -n)
}
