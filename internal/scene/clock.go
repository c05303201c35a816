package scene

import "time"

// Clock measures elapsed time since it was started.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock now.
func NewClock() *Clock {
	return NewClockAt(time.Now)
}

// NewClockAt starts a clock against a custom time source.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Elapsed returns seconds since start.
func (c *Clock) Elapsed() float64 {
	return c.now().Sub(c.start).Seconds()
}
