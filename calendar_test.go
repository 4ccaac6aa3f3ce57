package periodic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddCalendarStep(t *testing.T) {
	tests := []struct {
		name                string
		start               string
		years, months, days int
		expected            string
	}{
		{
			name:     "one day",
			start:    "2008-02-28",
			days:     1,
			expected: "2008-02-29",
		},
		{
			name:     "day across year end",
			start:    "2008-12-31",
			days:     1,
			expected: "2009-01-01",
		},
		{
			name:     "month across year end",
			start:    "2008-12-15",
			months:   1,
			expected: "2009-01-15",
		},
		{
			name:     "jan 31 plus a month in a leap year",
			start:    "2008-01-31",
			months:   1,
			expected: "2008-02-29",
		},
		{
			name:     "jan 31 plus a month",
			start:    "2009-01-31",
			months:   1,
			expected: "2009-02-28",
		},
		{
			name:     "clamp to 30 day month",
			start:    "2008-03-31",
			months:   1,
			expected: "2008-04-30",
		},
		{
			name:     "feb 29 plus a year",
			start:    "2008-02-29",
			years:    1,
			expected: "2009-02-28",
		},
		{
			name:     "feb 29 plus four years",
			start:    "2008-02-29",
			years:    4,
			expected: "2012-02-29",
		},
		{
			name:     "years are applied before months",
			start:    "2008-02-29",
			years:    1,
			months:   1,
			expected: "2009-03-28",
		},
		{
			name:     "months are applied before days",
			start:    "2008-01-31",
			months:   1,
			days:     1,
			expected: "2008-03-01",
		},
		{
			name:     "zero step is the identity",
			start:    "2008-05-17",
			expected: "2008-05-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := parseDate(t, tt.start)
			expected := parseDate(t, tt.expected)

			next := AddCalendarStep(start, tt.years, tt.months, tt.days)
			assert.Equal(t, expected, next)
		})
	}
}

func TestAddCalendarStep_ClampIsNotSticky(t *testing.T) {
	next := parseDate(t, "2009-01-31")

	next = AddCalendarStep(next, 0, 1, 0)
	assert.Equal(t, parseDate(t, "2009-02-28"), next)

	next = AddCalendarStep(next, 0, 1, 0)
	assert.Equal(t, parseDate(t, "2009-03-28"), next)

	// A long month does not restore the original day.
	next = AddCalendarStep(next, 0, 1, 0)
	assert.Equal(t, parseDate(t, "2009-04-28"), next)
}

func TestAddMonths_Negative(t *testing.T) {
	assert.Equal(t, parseDate(t, "2008-02-29"), AddMonths(parseDate(t, "2008-03-31"), -1))
	assert.Equal(t, parseDate(t, "2007-12-31"), AddMonths(parseDate(t, "2008-01-31"), -1))
}

func TestDateOf(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*3600)
	moment := time.Date(2008, 3, 1, 23, 30, 0, 0, zone)

	assert.Equal(t, time.Date(2008, 3, 1, 0, 0, 0, 0, time.UTC), DateOf(moment))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2008, time.January))
	assert.Equal(t, 29, DaysInMonth(2008, time.February))
	assert.Equal(t, 28, DaysInMonth(2009, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 29, DaysInMonth(2000, time.February))
	assert.Equal(t, 30, DaysInMonth(2008, time.September))
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, parseDate(t, "2008-02-29"), LastDayOfMonth(parseDate(t, "2008-02-10")))
	assert.Equal(t, parseDate(t, "2008-12-31"), LastDayOfMonth(parseDate(t, "2008-12-31")))
}
