package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData is a body integrated by the arena. Speeds are px/s.
type PhysicsData struct {
	SpeedX    float64
	SpeedY    float64
	Friction  float64 // px/s removed per tick while not driven
	Kinematic bool    // moved only by SetPosition; skips collision
	OnGround  *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
