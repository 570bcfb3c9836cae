package enemyai

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
)

// PathState is the grunt's navigation mode.
type PathState int

const (
	PathDirect PathState = iota
	PathCircumnavigate
	PathJump
)

func (s PathState) String() string {
	switch s {
	case PathCircumnavigate:
		return "circumnavigate"
	case PathJump:
		return "jump"
	}
	return "direct"
}

// Grunt is a melee unit that walks to a stand-off point beside the player,
// jumps over blockers and routes around overhangs.
type Grunt struct {
	*Enemy
	cfg *config.GruntConfig

	state        PathState
	pathTarget   gamemath.Vec2
	pathChosenAt float64

	consecutiveJumps int
	jumpStartedAt    float64
	lastJumpTime     float64
	hasJumped        bool
	leftGround       bool

	// desiredDir is the horizontal drive requested this tick, 0 when idle.
	desiredDir float64

	stuckTimer   float64
	stuckFlagged bool
	stuckJumped  bool
	lastPos      gamemath.Vec2

	isAttacking bool
	attackStart float64
	hitApplied  bool
	lastAttack  float64
	hasAttacked bool
}

func NewGrunt(deps Deps, ai *config.AIConfig) *Grunt {
	e := newEnemy(KindGrunt, deps, &ai.Grunt.Stats, ai)
	return &Grunt{
		Enemy:   e,
		cfg:     &ai.Grunt,
		lastPos: e.Body.Position(),
	}
}

func (g *Grunt) State() PathState          { return g.state }
func (g *Grunt) PathTarget() gamemath.Vec2 { return g.pathTarget }
func (g *Grunt) StuckTimer() float64       { return g.stuckTimer }
func (g *Grunt) ConsecutiveJumps() int     { return g.consecutiveJumps }
func (g *Grunt) IsAttacking() bool         { return g.isAttacking }

func (g *Grunt) Update() {
	if g.dead {
		return
	}
	now := g.now()
	g.RefreshPlayerTracking(now)

	if g.isAttacking {
		g.Sense()
		g.updateAttack(now)
		return
	}

	if !g.PlayerInRange() {
		g.Sense()
		g.resetNavigation()
		g.Stop()
		return
	}

	if g.state == PathDirect {
		g.UpdateFacing()
	}
	g.Sense()

	player := g.Player.Position()
	pos := g.Body.Position()
	if g.meleeReady(now) && g.PlayerDistance() <= g.cfg.AttackRange &&
		math.Abs(player.Y-pos.Y) <= g.cfg.VerticalThreshold {
		g.Attack()
		return
	}

	switch g.state {
	case PathDirect:
		g.updateDirect(now, pos, player)
	case PathJump:
		g.updateJump(now)
	case PathCircumnavigate:
		g.updateCircumnavigate(now, pos, player)
	}
}

// FixedUpdate measures displacement for stuck detection.
func (g *Grunt) FixedUpdate() {
	if g.dead {
		return
	}
	g.updateStuck(g.clock.DeltaTime())
}

// setState switches navigation mode. Entering Circumnavigate always starts
// a new stability window.
func (g *Grunt) setState(s PathState, now float64, reason string) {
	if s == PathCircumnavigate {
		g.pathChosenAt = now
	}
	if g.state == s {
		return
	}
	g.log.WithFields(logrus.Fields{
		"from":   g.state.String(),
		"to":     s.String(),
		"reason": reason,
	}).Debug("path state change")
	g.state = s
}

func (g *Grunt) resetNavigation() {
	g.state = PathDirect
	g.pathTarget = gamemath.Vec2{}
	g.consecutiveJumps = 0
	g.desiredDir = 0
	g.resetStuck()
}

func (g *Grunt) drive(dir, speed float64) {
	g.desiredDir = gamemath.Sign(dir)
	g.MoveHorizontal(dir, speed)
}

func (g *Grunt) halt() {
	g.desiredDir = 0
	g.Stop()
}

// standOffPoint is the spot StandOffDistance short of the player on the
// grunt's side.
func (g *Grunt) standOffPoint(pos, player gamemath.Vec2) gamemath.Vec2 {
	side := gamemath.Sign(pos.X - player.X)
	if side == 0 {
		side = -g.facing
	}
	return gamemath.V(player.X+side*g.cfg.StandOffDistance, player.Y)
}

func (g *Grunt) playerAbove(pos, player gamemath.Vec2) bool {
	return pos.Y-player.Y > g.cfg.VerticalThreshold
}

// jumpReachable reports whether a single jump could land near player.
func (g *Grunt) jumpReachable(pos, player gamemath.Vec2) bool {
	return pos.Y-player.Y <= g.cfg.MaxJumpHeight &&
		math.Abs(player.X-pos.X) <= g.cfg.MaxJumpDistance
}

func (g *Grunt) updateDirect(now float64, pos, player gamemath.Vec2) {
	if g.consecutiveJumps >= g.cfg.MaxJumpAttempts {
		g.enterCircumnavigate(now, pos, player, "jump attempts exhausted")
		return
	}
	if g.playerAbove(pos, player) && g.Spatial.VerticalObstacle(pos, player) {
		g.enterCircumnavigate(now, pos, player, "obstacle above")
		return
	}

	target := g.standOffPoint(pos, player)
	toGo := target.X - pos.X
	if math.Abs(toGo) <= g.cfg.ArrivalTolerance {
		g.halt()
		return
	}
	dir := gamemath.Sign(toGo)
	if dir != g.facing {
		g.SetFacing(dir)
		g.Sense()
	}
	s := g.sensors

	if s.Grounded && (s.WallAhead || s.EnemyAhead) {
		g.enterJump(now, dir, "blocked ahead")
		return
	}
	if s.Grounded && s.LedgeAhead {
		if player.Y > pos.Y+g.cfg.VerticalThreshold {
			// Player is below: step off carefully.
			g.drive(dir, g.Speed()*g.cfg.CautiousSpeedFactor)
			return
		}
		if g.jumpReachable(pos, player) {
			g.enterJump(now, dir, "ledge")
			return
		}
		g.halt()
		return
	}
	g.drive(dir, g.Speed())
}

// enterJump jumps toward dir if the jump cooldown allows it.
func (g *Grunt) enterJump(now, dir float64, reason string) {
	if g.hasJumped && now-g.lastJumpTime < g.cfg.JumpCooldown {
		g.halt()
		return
	}
	if !g.Jump(false) {
		g.halt()
		return
	}
	g.hasJumped = true
	g.lastJumpTime = now
	g.jumpStartedAt = now
	g.leftGround = false
	g.consecutiveJumps++
	g.drive(dir, g.Speed())
	g.setState(PathJump, now, reason)
}

func (g *Grunt) updateJump(now float64) {
	// Keep air control toward the jump direction.
	g.drive(g.facing, g.Speed())
	s := g.sensors
	elapsed := now - g.jumpStartedAt

	if !s.Grounded {
		g.leftGround = true
		if elapsed > g.cfg.JumpTimeout {
			g.failJump(now, "airborne too long")
		}
		return
	}
	if !g.leftGround {
		if elapsed > g.cfg.JumpTimeout {
			g.failJump(now, "never left ground")
		}
		return
	}

	if s.WallAhead || s.EnemyAhead {
		g.failJump(now, "still blocked")
		return
	}
	g.consecutiveJumps = 0
	g.setState(PathDirect, now, "landed")
}

func (g *Grunt) failJump(now float64, reason string) {
	if g.consecutiveJumps >= g.cfg.MaxJumpAttempts {
		pos := g.Body.Position()
		g.enterCircumnavigate(now, pos, g.Player.Position(), reason)
		return
	}
	g.setState(PathDirect, now, reason)
}

func (g *Grunt) enterCircumnavigate(now float64, pos, player gamemath.Vec2, reason string) {
	g.pathTarget = g.chooseLateralTarget(pos, player)
	g.consecutiveJumps = 0
	g.setState(PathCircumnavigate, now, reason)
	g.log.WithField("target", g.pathTarget).Debug("new path target")
}

// chooseLateralTarget walks outward on both sides, starting with the side
// the grunt faces, and returns the first reachable point with ground below
// and open sky toward the player's height.
func (g *Grunt) chooseLateralTarget(pos, player gamemath.Vec2) gamemath.Vec2 {
	step := g.cfg.LateralProbeStep
	drop := g.Body.Size().Y/2 + g.cfg.MaxJumpHeight
	for i := 1; i <= g.cfg.LateralProbeCount; i++ {
		for _, side := range []float64{g.facing, -g.facing} {
			reach := float64(i) * step
			if _, blocked := g.Spatial.WallDistance(pos, gamemath.V(side, 0), reach); blocked {
				continue
			}
			candidate := gamemath.V(pos.X+side*reach, pos.Y)
			if _, ok := g.Spatial.GroundBelow(candidate, drop); !ok {
				continue
			}
			if g.playerAbove(pos, player) && g.Spatial.VerticalObstacle(candidate, gamemath.V(candidate.X, player.Y)) {
				continue
			}
			return candidate
		}
	}
	return gamemath.V(pos.X-g.facing*step*float64(max(1, g.cfg.LateralProbeCount/2)), pos.Y)
}

func (g *Grunt) updateCircumnavigate(now float64, pos, player gamemath.Vec2) {
	stable := now-g.pathChosenAt >= g.cfg.PathStability
	toGo := g.pathTarget.X - pos.X

	if math.Abs(toGo) <= g.cfg.ArrivalTolerance {
		g.halt()
		if stable {
			g.setState(PathDirect, now, "target reached")
		}
		return
	}
	if stable && g.pathClear(pos, player) {
		g.setState(PathDirect, now, "obstacle cleared")
		return
	}

	dir := gamemath.Sign(toGo)
	g.SetFacing(dir)
	s := g.Sense()
	if s.Grounded && s.WallAhead {
		if g.Jump(false) {
			g.hasJumped = true
			g.lastJumpTime = now
		}
	}
	speed := g.Speed()
	if s.LedgeAhead {
		speed *= g.cfg.CautiousSpeedFactor
	}
	g.drive(dir, speed)
}

func (g *Grunt) pathClear(pos, player gamemath.Vec2) bool {
	if g.playerAbove(pos, player) && g.Spatial.VerticalObstacle(pos, player) {
		return false
	}
	return g.Spatial.LineOfSight(pos, player)
}

func (g *Grunt) meleeReady(now float64) bool {
	return !g.hasAttacked || now-g.lastAttack >= g.cfg.AttackCooldown
}

// Attack starts a melee swing. The hit lands after AttackWindup.
func (g *Grunt) Attack() {
	if g.isAttacking {
		return
	}
	now := g.now()
	g.isAttacking = true
	g.attackStart = now
	g.hitApplied = false
	g.lastAttack = now
	g.hasAttacked = true
	g.halt()
	g.trigger(config.AnimAttack)
	g.cue(config.SoundGruntSwing)
}

func (g *Grunt) updateAttack(now float64) {
	g.halt()
	elapsed := now - g.attackStart
	if !g.hitApplied && elapsed >= g.cfg.AttackWindup {
		g.hitApplied = true
		g.landHit()
	}
	if elapsed >= g.cfg.AttackDuration {
		g.isAttacking = false
	}
}

// landHit damages the player if it is still within reach in front.
func (g *Grunt) landHit() {
	if !g.Player.Valid() {
		return
	}
	pos := g.Body.Position()
	player := g.Player.Position()
	if pos.Dist(player) > g.cfg.AttackRange {
		return
	}
	if dx := player.X - pos.X; dx != 0 && gamemath.Sign(dx) != g.facing {
		return
	}
	g.damage.ApplyDamage(g.Player.Handle(), g.cfg.Damage)
	g.damage.ApplyKnockback(g.Player.Handle(), gamemath.V(g.facing*g.cfg.KnockbackX, g.cfg.KnockbackY))
}

func (g *Grunt) resetStuck() {
	g.stuckTimer = 0
	g.stuckFlagged = false
	g.stuckJumped = false
}

// updateStuck accrues time spent trying to move without moving and
// escalates: flag, then one jump, then reverse with a forced jump and a new
// lateral target.
func (g *Grunt) updateStuck(dt float64) {
	pos := g.Body.Position()
	moved := pos.Dist(g.lastPos)
	g.lastPos = pos

	if g.desiredDir == 0 || g.isAttacking || moved >= g.cfg.StuckMinSpeed*dt {
		g.resetStuck()
		return
	}
	g.stuckTimer += dt

	if g.stuckTimer >= g.cfg.StuckCheckWindow && !g.stuckFlagged {
		g.stuckFlagged = true
		g.log.WithField("for", g.stuckTimer).Debug("stuck")
	}
	if g.stuckTimer >= g.cfg.StuckJumpAfter && !g.stuckJumped {
		g.stuckJumped = true
		g.Jump(false)
	}
	if g.stuckTimer >= g.cfg.StuckReverseAfter {
		now := g.now()
		g.SetFacing(-g.facing)
		g.Jump(true)
		g.pathTarget = gamemath.V(pos.X+g.facing*g.cfg.LateralProbeStep*2, pos.Y)
		g.consecutiveJumps = 0
		g.setState(PathCircumnavigate, now, "stuck, reversing")
		g.desiredDir = g.facing
		g.log.Info("stuck, reversing direction")
		g.resetStuck()
	}
}
