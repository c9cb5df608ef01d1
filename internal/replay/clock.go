package replay

import (
	"sync"
	"time"
)

// Clock maps games.log offsets to wall time. The offset printed by the
// server restarts at every map change; Clock keeps time moving forward by
// carrying the last offset over.
type Clock struct {
	mu    sync.Mutex
	start time.Time
	base  time.Duration
	last  time.Duration
}

// NewClock creates a clock reading start at offset zero.
func NewClock(start time.Time) *Clock {
	return &Clock{start: start}
}

// Advance moves the clock to the given log offset and returns the
// resulting time.
func (c *Clock) Advance(offset time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	if offset < c.last {
		c.base += c.last
	}
	c.last = offset
	return c.start.Add(c.base + offset)
}

// Now returns the time of the last line seen.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.start.Add(c.base + c.last)
}
