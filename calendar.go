package periodic

import (
	"time"

	"cloudeng.io/datetime"
)

// DateOf returns the civil date of t as a UTC midnight. The time of day and
// the location of t are discarded.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// LastDayOfMonth returns the last day of the month containing t.
func LastDayOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, DaysInMonth(y, m), 0, 0, 0, 0, time.UTC)
}

// AddDays adds n days to the date of t.
func AddDays(t time.Time, n int) time.Time {
	return DateOf(t).AddDate(0, 0, n)
}

// AddMonths adds n months to the date of t. If the day of month does not
// exist in the target month the result is the last day of that month.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	// Normalise via the first of the month so time.Date does not roll
	// a missing day over into the following month.
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := DaysInMonth(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// AddYears adds n years to the date of t, clamping Feb 29 to Feb 28 in
// non-leap target years.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// AddCalendarStep advances t by years, then months, then days. Month and year
// steps clamp to the last valid day of the target month. The clamp is not
// remembered: a further step starts from the clamped day, so Jan 31 stepped by
// one month twice visits Feb 28 and then Mar 28.
func AddCalendarStep(t time.Time, years, months, days int) time.Time {
	next := DateOf(t)
	if years != 0 {
		next = AddYears(next, years)
	}
	if months != 0 {
		next = AddMonths(next, months)
	}
	if days != 0 {
		next = AddDays(next, days)
	}
	return next
}
