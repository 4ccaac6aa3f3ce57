// Package periodic computes recurring calendar periods from compact
// descriptors such as "weekly", "every 2 months" or
// "yearly from 2008/01/01 to 2008/12/31", and iterates over their
// occurrences.
//
// Dates are civil calendar dates. The time of day and the location of any
// time.Time handed to this package are discarded and results are returned
// as UTC midnights.
package periodic

import (
	"iter"
	"strconv"
	"strings"
	"time"
)

// maxStep bounds each of Days, Months and Years.
const maxStep = 1<<16 - 1

// Interval describes a recurring period: a step of Years, Months and Days
// applied as calendar units, optionally bounded by a range.
//
// An Interval is an immutable value and carries no iteration state; use a
// Cursor, Occurrences or Between to walk its occurrences.
//
// Example usage:
//
//	// Every month during 2008:
//	iv, err := Parse("monthly in 2008")
//
//	// The same, constructed explicitly:
//	iv, err := New(
//	    SetMonths(1),
//	    SetRange(time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC)),
//	)
type Interval struct {
	// Days, Months and Years are the step per unit. A unit with a zero
	// count does not take part in stepping.
	Days   int
	Months int
	Years  int

	// Begin is the inclusive lower bound and the origin of the occurrence
	// grid. The zero time means unbounded below.
	Begin time.Time

	// End is the exclusive upper bound. The zero time means unbounded above.
	End time.Time
}

// IsSet reports whether the interval recurs, that is whether at least one of
// Days, Months or Years is nonzero.
func (iv Interval) IsSet() bool {
	return iv.Days > 0 || iv.Months > 0 || iv.Years > 0
}

// Contains reports whether the date of t lies within [Begin, End).
func (iv Interval) Contains(t time.Time) bool {
	d := DateOf(t)
	if !iv.Begin.IsZero() && d.Before(DateOf(iv.Begin)) {
		return false
	}
	if !iv.End.IsZero() && !d.Before(DateOf(iv.End)) {
		return false
	}
	return true
}

// Increment advances the date of t by exactly one period: years first, then
// months, then days, see AddCalendarStep. The result is returned even when it
// falls at or after End; use Contains to detect the end of the range.
//
// Increment is the identity on an interval for which IsSet is false.
func (iv Interval) Increment(t time.Time) time.Time {
	return AddCalendarStep(t, iv.Years, iv.Months, iv.Days)
}

// First returns the earliest occurrence on or after ref. A zero ref means
// "use Begin" and fails with ErrUnboundedInterval when Begin is unset.
//
// When Begin is set the occurrences are Begin, Increment(Begin), ... and the
// first of those not before ref is returned. Without Begin the grid starts
// at ref itself. The boolean is false when the occurrence is at or after End,
// which signals that there are no more occurrences rather than an error.
//
// Stepping from Begin towards a later ref fails with ErrDegenerateInterval
// when IsSet is false.
func (iv Interval) First(ref time.Time) (time.Time, bool, error) {
	if ref.IsZero() && iv.Begin.IsZero() {
		return time.Time{}, false, ErrUnboundedInterval
	}
	if iv.Begin.IsZero() {
		next := DateOf(ref)
		return next, iv.Contains(next), nil
	}

	next := DateOf(iv.Begin)
	if ref.IsZero() {
		return next, iv.Contains(next), nil
	}

	ref = DateOf(ref)
	if next.Before(ref) && !iv.IsSet() {
		return time.Time{}, false, ErrDegenerateInterval
	}
	end := DateOf(iv.End)
	for next.Before(ref) {
		if !iv.End.IsZero() && !next.Before(end) {
			break
		}
		next = iv.Increment(next)
	}
	return next, iv.Contains(next), nil
}

// Start returns a copy of iv whose Begin is First(ref), so that the
// occurrence grid is re-anchored on that date. End is kept.
func (iv Interval) Start(ref time.Time) (Interval, error) {
	first, _, err := iv.First(ref)
	if err != nil {
		return Interval{}, err
	}
	started := iv
	started.Begin = first
	if err := validate(&started); err != nil {
		return Interval{}, err
	}
	return started, nil
}

// Occurrences returns an iterator over the occurrences from First(ref) until
// End. An interval without End yields forever. Iteration stops silently on
// error, and after the first occurrence when IsSet is false.
func (iv Interval) Occurrences(ref time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		c := NewCursor(iv)
		next, ok, err := c.First(ref)
		for ok && err == nil {
			if !yield(next) {
				return
			}
			next, ok, err = c.Next()
		}
	}
}

// Between returns the occurrences that fall within [from, to).
func (iv Interval) Between(from, to time.Time) ([]time.Time, error) {
	if !iv.IsSet() {
		return nil, ErrDegenerateInterval
	}
	if _, _, err := iv.First(from); err != nil {
		return nil, err
	}
	to = DateOf(to)
	var out []time.Time
	for next := range iv.Occurrences(from) {
		if !next.Before(to) {
			break
		}
		out = append(out, next)
	}
	return out, nil
}

// String returns a descriptor that Parse accepts and that parses back to an
// equal Interval.
func (iv Interval) String() string {
	var parts []string
	if iv.Years > 0 {
		parts = append(parts, "every "+plural(iv.Years, "year"))
	}
	if iv.Months > 0 {
		parts = append(parts, "every "+plural(iv.Months, "month"))
	}
	if iv.Days > 0 {
		parts = append(parts, "every "+plural(iv.Days, "day"))
	}
	if !iv.Begin.IsZero() {
		parts = append(parts, "from "+FormatDate(iv.Begin))
	}
	if !iv.End.IsZero() {
		parts = append(parts, "to "+FormatDate(iv.End))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
