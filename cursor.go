package periodic

import (
	"log/slog"
	"time"
)

// Cursor walks the occurrences of an Interval. It holds the current
// occurrence and whether it has been advanced at least once.
//
// A Cursor is not safe for concurrent use. Copying a Cursor (see Clone)
// copies its progress; the copies then advance independently.
type Cursor struct {
	interval Interval
	current  time.Time
	advanced bool

	afterAdvance func(next time.Time)
	logger       *slog.Logger
}

// NewCursor returns a cursor over iv that has not been advanced.
func NewCursor(iv Interval, opts ...CursorOption) *Cursor {
	c := &Cursor{interval: iv}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Interval returns the interval the cursor walks.
func (c *Cursor) Interval() Interval {
	return c.interval
}

// Advanced reports whether First or Next has produced an occurrence.
func (c *Cursor) Advanced() bool {
	return c.advanced
}

// Current returns the occurrence the cursor is on, and false if the cursor
// has not been advanced.
func (c *Cursor) Current() (time.Time, bool) {
	return c.current, c.advanced
}

// Reset returns the cursor to its unadvanced state.
func (c *Cursor) Reset() {
	c.current = time.Time{}
	c.advanced = false
}

// Clone returns an independent copy of the cursor, including its progress.
func (c *Cursor) Clone() *Cursor {
	cp := *c
	return &cp
}

// First anchors the cursor at the interval's first occurrence on or after
// ref, see Interval.First. A following Next continues from that occurrence.
func (c *Cursor) First(ref time.Time) (time.Time, bool, error) {
	next, ok, err := c.interval.First(ref)
	if err != nil {
		c.logger.Debug("interval anchoring failed",
			"interval", c.interval.String(),
			"error", err)
		return time.Time{}, false, err
	}
	c.moveTo(next, ok)
	return next, ok, nil
}

// Next advances the cursor by one period and returns the new occurrence.
// An unadvanced cursor anchors at Begin instead, as First with a zero
// reference would. The boolean is false once the occurrence reaches End.
//
// Next fails with ErrDegenerateInterval on an advanced cursor whose interval
// does not recur, since stepping it would never make progress.
func (c *Cursor) Next() (time.Time, bool, error) {
	if !c.advanced {
		return c.First(time.Time{})
	}
	if !c.interval.IsSet() {
		return c.current, false, ErrDegenerateInterval
	}
	next := c.interval.Increment(c.current)
	ok := c.interval.Contains(next)
	c.moveTo(next, ok)
	return next, ok, nil
}

func (c *Cursor) moveTo(next time.Time, ok bool) {
	c.current = next
	c.advanced = true
	if !ok {
		c.logger.Debug("interval exhausted",
			"interval", c.interval.String(),
			"date", FormatDate(next))
	}
	c.safeAfterAdvance(next)
}

// Handles afterAdvance() panics
func (c *Cursor) safeAfterAdvance(next time.Time) {
	if c.afterAdvance == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("afterAdvance() panicked", "panic", r)
		}
	}()
	c.afterAdvance(next)
}
