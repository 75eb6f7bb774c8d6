package chat

import (
	"sync"
	"time"
)

// Clock hands out strictly increasing local receipt timestamps, even if the
// wall clock stalls or steps backwards.
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

// NewClock returns a clock backed by time.Now.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// ClockAfter returns a clock whose first result is after last, such as the
// newest receipt time persisted by an earlier run.
func ClockAfter(last time.Time) *Clock {
	return &Clock{now: time.Now, last: last.Round(0)}
}

// Now returns a timestamp strictly after every previous result.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now().Round(0)
	if !t.After(c.last) {
		t = c.last.Add(time.Nanosecond)
	}
	c.last = t
	return t
}
