package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Flyer      = donburi.NewTag().SetName("Flyer")
	Projectile = donburi.NewTag().SetName("Projectile")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvDeadZone   = "deadzone"
	ResolvProjectile = "Projectile"
)
