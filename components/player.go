package components

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction   float64
	InvulnTimer float64 // seconds of invulnerability left
	StunTimer   float64 // seconds before patrolling resumes after knockback
	AttackTimer float64
	Patrol      []gamemath.Vec2 // waypoints; empty means pace around Home
	PatrolIndex int
	Home        gamemath.Vec2 // feet position of the spawn
	LastSafe    gamemath.Vec2
	Deaths      int
	DamageTaken int
}

var Player = donburi.NewComponentType[PlayerData]()
