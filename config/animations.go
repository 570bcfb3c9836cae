package config

// Animation trigger names sent through the Animator port.
const (
	AnimAttack   = "Attack"
	AnimBite     = "Bite"
	AnimBreath   = "Breath"
	AnimCast     = "Cast"
	AnimDie      = "Die"
	AnimFly      = "Fly"
	AnimHit      = "Hit"
	AnimJump     = "Jump"
	AnimLand     = "Land"
	AnimTeleport = "Teleport"
	AnimWalk     = "Walk"
)
