package systems

import "github.com/automoto/doomerang-ai/shared/enemyai"

// SimClock is the fixed-step clock of an arena. Now is derived from the tick
// count so it never accumulates rounding error.
type SimClock struct {
	tick int
	step float64
}

var _ enemyai.Clock = (*SimClock)(nil)

func NewSimClock(tickRate int) *SimClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &SimClock{step: 1 / float64(tickRate)}
}

func (c *SimClock) Now() float64       { return float64(c.tick) * c.step }
func (c *SimClock) DeltaTime() float64 { return c.step }
func (c *SimClock) Tick() int          { return c.tick }

// Advance moves the clock one step forward.
func (c *SimClock) Advance() { c.tick++ }
