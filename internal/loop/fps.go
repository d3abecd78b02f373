package loop

import (
	"math"
	"time"
)

// FPSCounter measures frames per second over a sliding window.
type FPSCounter struct {
	window time.Duration
	start  time.Time
	frames int
	fps    int
}

// NewFPSCounter creates a counter that recomputes its rate once per window.
func NewFPSCounter(window time.Duration) *FPSCounter {
	return &FPSCounter{window: window}
}

// Frame records a frame at now.
func (c *FPSCounter) Frame(now time.Time) {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++

	elapsed := now.Sub(c.start)
	if elapsed >= c.window && elapsed > 0 {
		c.fps = int(math.Round(float64(c.frames) / elapsed.Seconds()))
		c.frames = 0
		c.start = now
	}
}

// FPS returns the rate measured over the last complete window.
func (c *FPSCounter) FPS() int {
	return c.fps
}
