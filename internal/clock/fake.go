package clock

import "time"

// FakeClock is a Clock pinned to a fixed instant for tests.
type FakeClock struct {
	current time.Time
}

// NewFakeClock returns a clock frozen at t (normalized to UTC).
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.current
}

// Advance moves the frozen instant forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
