package systems

import (
	"math"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer drives the scripted player dummy: it walks its patrol,
// recovers from knockback and swings at the nearest enemy in reach.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	var attacker *donburi.Entry

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		player.InvulnTimer = math.Max(0, player.InvulnTimer-dt)
		player.StunTimer = math.Max(0, player.StunTimer-dt)
		player.AttackTimer = math.Max(0, player.AttackTimer-dt)

		feet := gamemath.V(obj.X+obj.W/2, obj.Y+obj.H)
		if physics.OnGround != nil {
			player.LastSafe = feet
		}

		if player.StunTimer > 0 {
			return
		}
		if len(player.Patrol) >= 2 {
			followPatrolPath(player, feet.X, dt)
		} else {
			paceAroundHome(player, feet.X)
		}
		physics.SpeedX = player.Direction * cfg.Player.PatrolSpeed

		if player.AttackTimer <= 0 && cfg.Player.AttackDamage > 0 {
			attacker = e
		}
	})

	if attacker != nil {
		playerAttack(ecs, attacker)
	}
}

// followPatrolPath walks towards the current waypoint and advances to the
// next one once it is within a step.
func followPatrolPath(player *components.PlayerData, x, dt float64) {
	target := player.Patrol[player.PatrolIndex%len(player.Patrol)]
	if math.Abs(target.X-x) <= math.Max(cfg.Player.PatrolSpeed*dt, 1) {
		player.PatrolIndex = (player.PatrolIndex + 1) % len(player.Patrol)
		target = player.Patrol[player.PatrolIndex]
	}
	if dir := gamemath.Sign(target.X - x); dir != 0 {
		player.Direction = dir
	}
}

// paceAroundHome walks back and forth within PatrolDistance of Home.
func paceAroundHome(player *components.PlayerData, x float64) {
	left := player.Home.X - cfg.Player.PatrolDistance
	right := player.Home.X + cfg.Player.PatrolDistance
	switch {
	case player.Direction > 0 && x >= right:
		player.Direction = cfg.DirectionLeft
	case player.Direction < 0 && x <= left:
		player.Direction = cfg.DirectionRight
	case player.Direction == 0:
		player.Direction = cfg.DirectionRight
	}
}

func playerAttack(ecs *ecs.ECS, e *donburi.Entry) {
	s := session(ecs.World)
	if s == nil || s.Host == nil || s.Host.Damage == nil {
		return
	}
	center := components.Object.Get(e).Center()

	var (
		target = enemyai.NoHandle
		best   = cfg.Player.AttackRange
	)
	components.Enemy.Each(ecs.World, func(en *donburi.Entry) {
		if en.HasComponent(components.Death) || components.Enemy.Get(en).Behavior.Base().IsDead() {
			return
		}
		if d := components.Object.Get(en).Center().Dist(center); d <= best {
			best = d
			target = enemyai.Handle(en.Entity())
		}
	})
	if target == enemyai.NoHandle {
		return
	}

	s.Host.Damage.ApplyDamage(target, cfg.Player.AttackDamage)
	components.Player.Get(e).AttackTimer = cfg.Player.AttackCooldown
}

// resetPlayerAt puts the player back on its feet at feet with full health.
func resetPlayerAt(e *donburi.Entry, feet gamemath.Vec2) {
	obj := components.Object.Get(e)
	obj.SetCenter(gamemath.V(feet.X, feet.Y-obj.H/2))

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = nil

	player := components.Player.Get(e)
	player.InvulnTimer = cfg.Player.InvulnTime
	player.StunTimer = 0

	health := components.Health.Get(e)
	health.Current = health.Max
}
