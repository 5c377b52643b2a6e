package display

import "time"

// dayStart truncates t to midnight of its calendar day in loc.
func dayStart(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// beforeDay reports whether a's calendar day is strictly before b's,
// both evaluated in loc. Time-of-day never participates: a deadline at
// 09:00 is not overdue at 17:00 the same day.
func beforeDay(a, b time.Time, loc *time.Location) bool {
	return dayStart(a, loc).Before(dayStart(b, loc))
}

// addDays advances t by n calendar days. AddDate is calendar-correct
// across month and year boundaries and under DST transitions; naive
// n*24h multiplication is not.
func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
