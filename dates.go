package periodic

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const (
	DateFormat     = "2006/01/02"
	DatetimeFormat = "2006/01/02 15:04:05"
)

// DateParseError is returned when text cannot be interpreted as a date or a
// calendar period.
type DateParseError struct {
	Text   string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Text, e.Reason)
}

func (e *DateParseError) Unwrap() error {
	return ErrDateParse
}

// FormatDate formats the date of t as YYYY/MM/DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// FormatDatetime formats t as YYYY/MM/DD HH:MM:SS.
func FormatDatetime(t time.Time) string {
	return t.Format(DatetimeFormat)
}

// ParseDatetime parses a date followed by an optional time of day,
// "2008/03/07 13:45:10" or "2008/03/07 13:45". The result is in UTC.
func ParseDatetime(text string) (time.Time, error) {
	fields := strings.Fields(text)
	if len(fields) < 1 || len(fields) > 2 {
		return time.Time{}, &DateParseError{Text: text, Reason: "expected a date and an optional time"}
	}
	date, err := ParseDate(fields[0])
	if err != nil {
		return time.Time{}, err
	}
	if len(fields) == 1 {
		return date, nil
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if tod, err := time.Parse(layout, fields[1]); err == nil {
			return date.Add(time.Duration(tod.Hour())*time.Hour +
				time.Duration(tod.Minute())*time.Minute +
				time.Duration(tod.Second())*time.Second), nil
		}
	}
	return time.Time{}, &DateParseError{Text: text, Reason: fmt.Sprintf("invalid time: %s", fields[1])}
}

// ParseDate parses a full date of the form YYYY/MM/DD. The separators '-'
// and '.' are accepted in place of '/'.
func ParseDate(text string) (time.Time, error) {
	parts := splitDate(text)
	if len(parts) != 3 {
		return time.Time{}, &DateParseError{Text: text, Reason: "expected year, month and day"}
	}
	begin, _, err := parsePeriodParts(text, parts)
	return begin, err
}

// ParsePeriod parses a calendar period expression and returns its first day
// and the day following its last day. Supported expressions are a year
// (2008), a month (2008/03, 2008-03 or 2008/mar) and a single day
// (2008/03/15).
func ParsePeriod(text string) (begin, end time.Time, err error) {
	parts := splitDate(text)
	if len(parts) < 1 || len(parts) > 3 {
		return time.Time{}, time.Time{}, &DateParseError{Text: text, Reason: "expected year[/month[/day]]"}
	}
	return parsePeriodParts(text, parts)
}

// splitDate splits text on '/', '-' and '.'. It returns nil if any field
// is empty, as in "2008//03" or "2008/03/".
func splitDate(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	parts := strings.Split(strings.NewReplacer("-", "/", ".", "/").Replace(text), "/")
	for _, part := range parts {
		if part == "" {
			return nil
		}
	}
	return parts
}

func parsePeriodParts(text string, parts []string) (time.Time, time.Time, error) {
	year, err := parseYear(parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, &DateParseError{Text: text, Reason: err.Error()}
	}
	if len(parts) == 1 {
		begin := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		return begin, AddYears(begin, 1), nil
	}

	month, err := parseMonth(parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, &DateParseError{Text: text, Reason: err.Error()}
	}
	if len(parts) == 2 {
		begin := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		return begin, AddMonths(begin, 1), nil
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil || len(parts[2]) > 2 {
		return time.Time{}, time.Time{}, &DateParseError{Text: text, Reason: fmt.Sprintf("invalid day: %s", parts[2])}
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, time.Time{}, &DateParseError{Text: text, Reason: fmt.Sprintf("day out of range: %d", day)}
	}
	begin := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return begin, AddDays(begin, 1), nil
}

func parseYear(val string) (int, error) {
	if len(val) != 4 {
		return 0, fmt.Errorf("invalid year: %s", val)
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid year: %s", val)
	}
	return n, nil
}

// parseMonth accepts 1 or 2 digit months and month names of at least
// three letters ("mar", "march").
func parseMonth(val string) (time.Month, error) {
	if isDigits(val) {
		if len(val) > 2 {
			return 0, fmt.Errorf("invalid month: %s", val)
		}
		m, err := datetime.ParseNumericMonth(val)
		if err != nil {
			return 0, err
		}
		return time.Month(m), nil
	}
	if len(val) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	m, err := datetime.ParseMonth(val)
	if err != nil {
		return 0, err
	}
	return time.Month(m), nil
}

func isDigits(val string) bool {
	if val == "" {
		return false
	}
	for _, r := range val {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
