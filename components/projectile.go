package components

import (
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Kind      string
	Owner     enemyai.Handle
	Damage    int
	Velocity  gamemath.Vec2
	Knockback float64
	Age       float64
	Lifetime  float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
