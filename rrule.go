package periodic

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// RRule converts the interval to an RFC 5545 recurrence rule with the same
// occurrences. Only single-unit intervals with a Begin can be converted.
//
// RFC 5545 skips months that lack the anchor day where Increment clamps, so
// month and year steps anchored after the 28th are rejected with
// ErrNotRepresentable, as are mixed units and a missing Begin.
func (iv Interval) RRule() (*rrule.RRule, error) {
	if iv.Begin.IsZero() {
		return nil, fmt.Errorf("%w: begin date required", ErrNotRepresentable)
	}

	begin := DateOf(iv.Begin)
	opt := rrule.ROption{Dtstart: begin}
	switch {
	case iv.Days > 0 && iv.Months == 0 && iv.Years == 0:
		if iv.Days%7 == 0 {
			opt.Freq, opt.Interval = rrule.WEEKLY, iv.Days/7
		} else {
			opt.Freq, opt.Interval = rrule.DAILY, iv.Days
		}
	case iv.Months > 0 && iv.Days == 0 && iv.Years == 0:
		opt.Freq, opt.Interval = rrule.MONTHLY, iv.Months
	case iv.Years > 0 && iv.Days == 0 && iv.Months == 0:
		opt.Freq, opt.Interval = rrule.YEARLY, iv.Years
	default:
		return nil, fmt.Errorf("%w: %q does not step by a single unit", ErrNotRepresentable, iv.String())
	}

	if opt.Freq == rrule.MONTHLY || opt.Freq == rrule.YEARLY {
		if begin.Day() > 28 {
			return nil, fmt.Errorf("%w: anchor day %d is clamped in short months", ErrNotRepresentable, begin.Day())
		}
	}

	if !iv.End.IsZero() {
		// UNTIL is inclusive.
		opt.Until = DateOf(iv.End).Add(-time.Second)
	}
	return rrule.NewRRule(opt)
}
