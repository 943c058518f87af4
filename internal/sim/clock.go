package sim

import "time"

// Clock supplies monotonic milliseconds for spawn timing.
type Clock interface {
	NowMillis() int64
}

// SystemClock reads wall time through Go's monotonic clock reading.
type SystemClock struct {
	start time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// FrameClock derives time from the number of simulated frames, which keeps
// spawn cadence tied to the simulation rather than to scheduling jitter.
type FrameClock struct {
	frames   int64
	tickRate int
}

// NewFrameClock creates a frame clock for the given ticks per second.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{tickRate: tickRate}
}

// Tick advances the clock by one frame.
func (c *FrameClock) Tick() {
	c.frames++
}

// NowMillis returns the simulated time in milliseconds.
func (c *FrameClock) NowMillis() int64 {
	return c.frames * 1000 / int64(c.tickRate)
}
