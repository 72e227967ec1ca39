package game

import "time"

// Clock is the monotonic time source sampled once per tick
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures real time since its creation
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock creates a clock starting at zero now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// TickClock advances by a fixed step on every Advance call.
// It drives headless runs where simulated time must not depend on the host.
type TickClock struct {
	Step time.Duration
	now  time.Duration
}

// NewTickClock creates a clock stepping at tps ticks per second
func NewTickClock(tps int) *TickClock {
	return &TickClock{Step: time.Second / time.Duration(tps)}
}

// Now returns the current simulated time
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward one step
func (c *TickClock) Advance() {
	c.now += c.Step
}
