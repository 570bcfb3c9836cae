package components

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DamageEventData queues hits against an entity until the combat system
// applies them. Repeated hits in one tick accumulate.
type DamageEventData struct {
	Amount    int
	Knockback gamemath.Vec2
	Hits      int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
