package enemyai

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DragonState is the boss combat phase.
type DragonState int

const (
	DragonGrounded DragonState = iota
	DragonFlying
	DragonChangingHeight
)

func (s DragonState) String() string {
	switch s {
	case DragonFlying:
		return "flying"
	case DragonChangingHeight:
		return "changing_height"
	}
	return "grounded"
}

// Boss alternates between a grounded phase with bite and breath attacks and
// a flying phase with long range fireballs. Phase changes are eased
// vertical moves during which nothing else runs.
type Boss struct {
	*Enemy
	cfg *config.BossConfig

	state            DragonState
	isChangingHeight bool
	toFlying         bool
	heightTween      *gween.Tween
	changeTargetY    float64

	damageSinceChange int
	lastPhaseChange   float64

	groundLevel     float64
	hasGround       bool
	lastGroundSense float64

	breath *ProjectileAttacker
	flying *ProjectileAttacker

	isBreathing bool
	breathStart float64
	lastBite    float64
	hasBitten   bool
}

func NewBoss(deps Deps, ai *config.AIConfig) *Boss {
	e := newEnemy(KindBoss, deps, &ai.Boss.Stats, ai)
	b := &Boss{
		Enemy:           e,
		cfg:             &ai.Boss,
		breath:          NewProjectileAttacker(e, &ai.Boss.Breath),
		flying:          NewProjectileAttacker(e, &ai.Boss.Flying),
		lastPhaseChange: e.now(),
	}
	e.OnDamage(func(_ *Enemy, amount int) {
		b.damageSinceChange += amount
	})
	return b
}

func (b *Boss) State() DragonState          { return b.state }
func (b *Boss) IsChangingHeight() bool      { return b.isChangingHeight }
func (b *Boss) DamageSinceChange() int      { return b.damageSinceChange }
func (b *Boss) LastPhaseChange() float64    { return b.lastPhaseChange }
func (b *Boss) GroundLevel() float64        { return b.groundLevel }
func (b *Boss) Breath() *ProjectileAttacker { return b.breath }
func (b *Boss) Flying() *ProjectileAttacker { return b.flying }

func (b *Boss) Update() {
	if b.dead {
		return
	}
	now := b.now()
	b.RefreshPlayerTracking(now)

	if b.isChangingHeight {
		b.updateHeightChange(b.clock.DeltaTime())
		return
	}
	b.senseGround(now)

	if b.isBreathing {
		b.updateBreath(now)
		return
	}
	if b.shouldChangePhase(now) {
		b.startPhaseChange(now)
		return
	}

	if !b.PlayerInRange() {
		b.Stop()
		return
	}
	b.UpdateFacing()

	switch b.state {
	case DragonGrounded:
		b.updateGroundedAttacks(now)
	case DragonFlying:
		b.updateFlyingAttacks(now)
	}
}

// FixedUpdate holds the boss at the altitude of its phase and re-centers
// over the player while flying.
func (b *Boss) FixedUpdate() {
	if b.dead || b.isChangingHeight {
		return
	}
	dt := b.clock.DeltaTime()
	pos := b.Body.Position()

	switch b.state {
	case DragonGrounded:
		if b.hasGround {
			b.Body.SetPosition(gamemath.V(pos.X, b.groundedY()))
		}
	case DragonFlying:
		t := gamemath.Clamp(b.cfg.HeightLerp*dt, 0, 1)
		y := gamemath.Lerp(pos.Y, b.flyingY(), t)
		b.Body.SetPosition(gamemath.V(pos.X, y))

		vx := 0.0
		if b.PlayerInRange() {
			vx = gamemath.ClampSpeed((b.Player.Position().X-pos.X)*b.cfg.FollowGain, b.cfg.FlySpeed)
		}
		b.Body.SetVelocity(gamemath.V(vx, 0))
	}
}

func (b *Boss) groundedY() float64 { return b.groundLevel - b.Body.Size().Y/2 }
func (b *Boss) flyingY() float64   { return b.groundLevel - b.cfg.FlyHeight }

// senseGround refreshes the ground level on its interval. When every probe
// misses, the last known level is kept; with none known the ground is
// assumed FallbackGroundOffset below the boss.
func (b *Boss) senseGround(now float64) {
	if b.hasGround && now-b.lastGroundSense < b.cfg.GroundSenseInterval {
		return
	}
	b.lastGroundSense = now
	pos := b.Body.Position()
	if y, ok := b.Spatial.FindGroundLevel(pos, b.cfg.GroundSearchDistances, b.cfg.GroundLateralOffsets); ok {
		b.groundLevel = y
		b.hasGround = true
		return
	}
	if b.hasGround {
		return
	}
	b.groundLevel = pos.Y + b.cfg.FallbackGroundOffset
	b.hasGround = true
	b.log.WithField("assumed_y", b.groundLevel).Warn("ground not found, using fallback level")
}

func (b *Boss) shouldChangePhase(now float64) bool {
	since := now - b.lastPhaseChange
	if b.cfg.PhaseTrigger == config.PhaseTriggerTimer {
		return since >= b.cfg.PhaseInterval
	}
	return b.damageSinceChange >= b.cfg.PhaseChangeDamageThreshold &&
		since >= b.cfg.PhaseChangeCooldown
}

func (b *Boss) startPhaseChange(now float64) {
	b.lastPhaseChange = now
	b.damageSinceChange = 0
	b.ChangeHeight(b.state != DragonFlying)
}

// ChangeHeight starts the eased move to the flying or grounded altitude.
// It is ignored while a change is already running.
func (b *Boss) ChangeHeight(toFlying bool) bool {
	if b.isChangingHeight {
		return false
	}
	if !b.hasGround {
		b.senseGround(b.now())
	}
	pos := b.Body.Position()
	b.toFlying = toFlying
	if toFlying {
		b.changeTargetY = b.flyingY()
		b.trigger(config.AnimFly)
		b.cue(config.SoundBossTakeoff)
	} else {
		b.changeTargetY = b.groundedY()
		b.trigger(config.AnimLand)
		b.cue(config.SoundBossLand)
	}
	b.heightTween = gween.New(float32(pos.Y), float32(b.changeTargetY), float32(b.cfg.HeightChangeDuration), ease.InOutQuad)
	b.isChangingHeight = true
	b.isBreathing = false
	b.state = DragonChangingHeight
	b.Hold()
	b.Body.SetKinematic(true)
	b.log.WithFields(logrus.Fields{
		"to_flying": toFlying,
		"target_y":  b.changeTargetY,
	}).Info("boss changing height")
	return true
}

func (b *Boss) updateHeightChange(dt float64) {
	pos := b.Body.Position()
	y, done := b.heightTween.Update(float32(dt))
	b.Hold()
	if !done {
		b.Body.SetPosition(gamemath.V(pos.X, float64(y)))
		return
	}
	b.Body.SetPosition(gamemath.V(pos.X, b.changeTargetY))
	b.Body.SetKinematic(false)
	b.isChangingHeight = false
	b.heightTween = nil
	if b.toFlying {
		b.state = DragonFlying
	} else {
		b.state = DragonGrounded
	}
	b.log.WithField("state", b.state.String()).Debug("height change finished")
}

func (b *Boss) biteReady(now float64) bool {
	return !b.hasBitten || now-b.lastBite >= b.cfg.BiteCooldown
}

// updateGroundedAttacks bites when in reach, breathes when the breath gate
// is open and walks toward the player otherwise. At most one attack fires.
func (b *Boss) updateGroundedAttacks(now float64) {
	player := b.Player.Position()
	dist := b.PlayerDistance()

	if dist <= b.cfg.BiteRange {
		b.Stop()
		if b.biteReady(now) {
			b.bite(now)
		}
		return
	}
	if dist <= b.breath.Range() && b.breath.CanAttack(player) {
		b.Stop()
		if b.breath.ShootProjectile(player, "") {
			b.isBreathing = true
			b.breathStart = now
			b.trigger(config.AnimBreath)
			b.cue(config.SoundBossBreath)
		}
		return
	}
	b.MoveHorizontal(player.X-b.Body.Position().X, b.Speed())
}

func (b *Boss) bite(now float64) {
	b.lastBite = now
	b.hasBitten = true
	b.trigger(config.AnimBite)
	b.cue(config.SoundBossBite)
	target := b.Player.Handle()
	b.damage.ApplyDamage(target, b.cfg.BiteDamage)
	b.damage.ApplyKnockback(target, gamemath.V(b.facing*b.cfg.BiteKnockbackX, b.cfg.BiteKnockbackY))
}

func (b *Boss) updateBreath(now float64) {
	b.Stop()
	if now-b.breathStart >= b.cfg.BreathDuration {
		b.isBreathing = false
	}
}

// updateFlyingAttacks fires the long range attack when its gate is open.
func (b *Boss) updateFlyingAttacks(now float64) {
	player := b.Player.Position()
	if !b.flying.CanAttack(player) {
		return
	}
	if b.flying.ShootProjectile(player, "") {
		b.trigger(config.AnimAttack)
		b.cue(config.SoundBossFireball)
	}
}

// Attack runs the attack selection of the current phase.
func (b *Boss) Attack() {
	if b.dead || b.isChangingHeight || !b.Player.Valid() {
		return
	}
	switch b.state {
	case DragonGrounded:
		b.updateGroundedAttacks(b.now())
	case DragonFlying:
		b.updateFlyingAttacks(b.now())
	}
}

// OnPlayerContact is called every physics tick the player overlaps the
// boss. It is independent of attack cooldowns.
func (b *Boss) OnPlayerContact(player Handle, at gamemath.Vec2) {
	if b.dead {
		return
	}
	dir := gamemath.Sign(at.X - b.Body.Position().X)
	if dir == 0 {
		dir = b.facing
	}
	b.damage.ApplyDamage(player, b.cfg.ContactDamage)
	b.damage.ApplyKnockback(player, gamemath.V(dir*b.cfg.ContactKnockback, -b.cfg.ContactKnockback/2))
}
