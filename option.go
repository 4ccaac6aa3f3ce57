package periodic

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures an Interval built by New.
type Option func(*options)

type options struct {
	interval Interval
	err      error
}

// SetDays sets the day step.
//
// Example:
//
//	SetDays(14) // every two weeks
func SetDays(n int) Option {
	return func(o *options) {
		o.interval.Days = n
	}
}

// SetMonths sets the month step.
func SetMonths(n int) Option {
	return func(o *options) {
		o.interval.Months = n
	}
}

// SetYears sets the year step.
func SetYears(n int) Option {
	return func(o *options) {
		o.interval.Years = n
	}
}

// SetEvery adds n of unit to the step. Weeks count as 7 days and quarters as
// 3 months.
//
// Examples:
//
//	SetEvery(2, Week)    // days = 14
//	SetEvery(1, Quarter) // months = 3
func SetEvery(n int, unit Unit) Option {
	return func(o *options) {
		switch unit {
		case Day:
			o.interval.Days += n
		case Week:
			o.interval.Days += 7 * n
		case Month:
			o.interval.Months += n
		case Quarter:
			o.interval.Months += 3 * n
		case Year:
			o.interval.Years += n
		default:
			o.err = fmt.Errorf("%w: %d", ErrInvalidUnit, unit)
		}
	}
}

// SetBegin sets the inclusive lower bound. Pass the zero time to remove it.
func SetBegin(t time.Time) Option {
	return func(o *options) {
		o.interval.Begin = dateOrZero(t)
	}
}

// SetEnd sets the exclusive upper bound. Pass the zero time to remove it.
func SetEnd(t time.Time) Option {
	return func(o *options) {
		o.interval.End = dateOrZero(t)
	}
}

// SetRange sets both bounds, begin inclusive and end exclusive.
func SetRange(begin, end time.Time) Option {
	return func(o *options) {
		o.interval.Begin = dateOrZero(begin)
		o.interval.End = dateOrZero(end)
	}
}

func dateOrZero(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return DateOf(t)
}

// CursorOption configures a Cursor.
type CursorOption func(*Cursor)

// SetAdvanceFunc sets a function called with each occurrence the cursor
// moves to, whether or not it is within range. A panic in f is recovered
// and logged. Pass nil to remove the hook.
//
// Example:
//
//	SetAdvanceFunc(func(next time.Time) {
//	    slog.Info("next period", "date", FormatDate(next))
//	})
func SetAdvanceFunc(f func(next time.Time)) CursorOption {
	return func(c *Cursor) {
		c.afterAdvance = f
	}
}

// SetLogger sets the logger used by the cursor. Defaults to slog.Default().
func SetLogger(logger *slog.Logger) CursorOption {
	return func(c *Cursor) {
		c.logger = logger
	}
}
