package periodic

import (
	"time"

	"github.com/robfig/cron/v3"
)

// Schedule adapts an Interval to the robfig/cron.Schedule interface, so a
// job can run once per occurrence.
//
// Example usage:
//
//	// Run the month-end report on the first of every month during 2008
//	iv, _ := Parse("monthly in 2008")
//	c := cron.New()
//	c.Schedule(iv.Schedule(), cron.FuncJob(runReport))
type Schedule struct {
	interval Interval
}

var _ cron.Schedule = (*Schedule)(nil)

// Schedule returns a cron schedule firing at midnight on every occurrence
// of iv.
func (iv Interval) Schedule() *Schedule {
	return &Schedule{interval: iv}
}

// Next returns the first occurrence strictly after t, at midnight in t's
// location. This method implements the robfig/cron.Schedule interface.
//
// The zero time, which cron treats as "never", is returned once the range is
// exhausted or when the interval does not recur. An interval without Begin
// is anchored on the date of t, so each call measures one period from the
// day it is asked.
func (s *Schedule) Next(t time.Time) time.Time {
	next, ok, err := s.interval.First(t)
	if err != nil || !ok {
		return time.Time{}
	}

	at := inLocation(next, t.Location())
	if !at.After(t) {
		if !s.interval.IsSet() {
			return time.Time{}
		}
		next = s.interval.Increment(next)
		if !s.interval.Contains(next) {
			return time.Time{}
		}
		at = inLocation(next, t.Location())
	}
	return at
}

func inLocation(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
