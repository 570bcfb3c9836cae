package enemyai

import "github.com/automoto/doomerang-ai/shared/gamemath"

// PlayerHandle is a weak reference to the player plus the snapshot taken at
// the last refresh.
type PlayerHandle struct {
	handle    Handle
	valid     bool
	position  gamemath.Vec2
	distance  float64
	lastCheck float64
	checked   bool
	warned    bool
}

func (p *PlayerHandle) Valid() bool { return p.valid }

func (p *PlayerHandle) Handle() Handle { return p.handle }

// Position is the player position at the last refresh.
func (p *PlayerHandle) Position() gamemath.Vec2 { return p.position }

// Distance is the distance to the player at the last refresh.
func (p *PlayerHandle) Distance() float64 { return p.distance }

// LastCheck is the clock time of the last refresh.
func (p *PlayerHandle) LastCheck() float64 { return p.lastCheck }

func (p *PlayerHandle) invalidate() {
	p.handle = NoHandle
	p.valid = false
}
