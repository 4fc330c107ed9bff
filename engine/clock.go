package engine

import (
	"time"

	"github.com/lunargale/shelfsort/constants"
)

// Updater receives fixed simulation ticks
type Updater interface {
	Update(dt time.Duration)
}

// Renderer draws the current state between ticks
type Renderer interface {
	Render()
}

// Clock drives the fixed-tick simulation loop. The rules engine is
// single-threaded: ticks and renders are interleaved on the caller's
// goroutine, never concurrent. Drift is corrected by scheduling each tick
// against an absolute deadline rather than sleeping a fixed interval
type Clock struct {
	provider     TimeProvider
	tickInterval time.Duration

	lastTickTime time.Time
	nextDeadline time.Time
	tickCount    uint64
}

// NewClock creates a clock ticking at constants.GameUpdateInterval
func NewClock(provider TimeProvider) *Clock {
	now := provider.Now()
	return &Clock{
		provider:     provider,
		tickInterval: constants.GameUpdateInterval,
		lastTickTime: now,
		nextDeadline: now.Add(constants.GameUpdateInterval),
	}
}

// TickCount returns the number of ticks delivered so far
func (c *Clock) TickCount() uint64 {
	return c.tickCount
}

// Step delivers at most one tick if its deadline has passed and returns
// whether a tick ran. Callers interleave Step with rendering and input
// polling on a single goroutine
func (c *Clock) Step(u Updater) bool {
	now := c.provider.Now()
	if now.Before(c.nextDeadline) {
		return false
	}

	dt := now.Sub(c.lastTickTime)
	c.lastTickTime = now

	// Catch-up clamp: after a long stall (terminal suspend, debugger) a
	// single oversized dt would teleport animations and timers
	if dt > 4*c.tickInterval {
		dt = 4 * c.tickInterval
	}

	u.Update(dt)
	c.tickCount++

	c.nextDeadline = c.nextDeadline.Add(c.tickInterval)
	if c.nextDeadline.Before(now) {
		// Too far behind to amortize: rebase instead of burst-ticking
		c.nextDeadline = now.Add(c.tickInterval)
	}
	return true
}

// Run loops Step and Render until stop is closed, sleeping between frames
// at the render interval. Intended for the real game; tests call Step
// directly with a mock provider
func (c *Clock) Run(u Updater, r Renderer, stop <-chan struct{}) {
	frame := time.NewTicker(constants.FrameUpdateInterval)
	defer frame.Stop()

	for {
		select {
		case <-stop:
			return
		case <-frame.C:
			c.Step(u)
			if r != nil {
				r.Render()
			}
		}
	}
}
