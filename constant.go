package periodic

import "errors"

// Unit represents the calendar unit an interval steps by.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Quarter
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

var (
	ErrMalformedInterval = errors.New(
		"malformed interval",
	)
	ErrDateParse = errors.New(
		"invalid date",
	)
	ErrUnboundedInterval = errors.New(
		"unbounded interval. a reference date or a begin date is required",
	)
	ErrDegenerateInterval = errors.New(
		"degenerate interval. days, months and years are all zero",
	)
	ErrInvalidRange = errors.New(
		"invalid range. begin date must not be after end date",
	)
	ErrInvalidStep = errors.New(
		"invalid step. days, months and years must be between 0 and 65535",
	)
	ErrInvalidUnit = errors.New(
		"invalid unit",
	)
	ErrNotRepresentable = errors.New(
		"interval cannot be represented as a recurrence rule",
	)
)
