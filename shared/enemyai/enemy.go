package enemyai

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
)

// Kind names an enemy variant.
type Kind string

const (
	KindArcher Kind = "archer"
	KindMage   Kind = "mage"
	KindGrunt  Kind = "grunt"
	KindBoss   Kind = "boss"
)

// Enemy is the state and behavior shared by every variant.
type Enemy struct {
	Name      string
	Kind      Kind
	Health    int
	MaxHealth int

	Self   Handle
	Body   Body
	Player PlayerHandle

	Spatial *SpatialQuery

	stats    *config.EnemyStats
	tracking *config.TrackingConfig

	clock    Clock
	locator  PlayerLocator
	damage   DamageSink
	factory  ProjectileFactory
	audio    AudioCue
	animator Animator
	log      logrus.FieldLogger

	sensors Sensors
	facing  float64
	dead    bool

	onDamage []func(e *Enemy, amount int)
	onDeath  []func(e *Enemy)
}

func newEnemy(kind Kind, deps Deps, stats *config.EnemyStats, ai *config.AIConfig) *Enemy {
	h := deps.Host
	e := &Enemy{
		Name:      stats.Name,
		Kind:      kind,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Self:      deps.Self,
		Body:      deps.Body,
		Spatial:   NewSpatialQuery(deps.Physics, &ai.Sensors),
		stats:     stats,
		tracking:  &ai.Tracking,
		clock:     h.Clock,
		locator:   h.Player,
		damage:    h.Damage,
		factory:   h.Projectiles,
		audio:     h.Audio,
		animator:  deps.Animator,
		facing:    config.DirectionRight,
	}
	if e.damage == nil {
		e.damage = nopDamage{}
	}
	if e.audio == nil {
		e.audio = nopAudio{}
	}
	if e.animator == nil {
		e.animator = nopAnimator{}
	}
	log := h.Log
	if log == nil {
		log = discardLogger()
	}
	e.log = log.WithFields(logrus.Fields{
		"enemy": stats.Name,
		"kind":  string(kind),
		"id":    uint64(deps.Self),
	})
	return e
}

func (e *Enemy) Base() *Enemy { return e }

// Attack is overridden by every variant.
func (e *Enemy) Attack() {}

func (e *Enemy) Speed() float64           { return e.stats.Speed }
func (e *Enemy) DetectionRadius() float64 { return e.stats.DetectionRadius }
func (e *Enemy) Facing() float64          { return e.facing }
func (e *Enemy) Sensors() Sensors         { return e.sensors }
func (e *Enemy) IsDead() bool             { return e.dead }
func (e *Enemy) Log() logrus.FieldLogger  { return e.log }

func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// OnDamage registers fn to run after health is reduced.
func (e *Enemy) OnDamage(fn func(e *Enemy, amount int)) {
	e.onDamage = append(e.onDamage, fn)
}

// OnDeath registers fn to run once when the enemy dies.
func (e *Enemy) OnDeath(fn func(e *Enemy)) {
	e.onDeath = append(e.onDeath, fn)
}

// FindPlayer resolves the player through the locator. A missing player is
// not an error; the handle simply stays invalid.
func (e *Enemy) FindPlayer() bool {
	if e.locator == nil {
		e.Player.invalidate()
		return false
	}
	h, ok := e.locator.FindPlayerByTag()
	if !ok {
		e.Player.invalidate()
		return false
	}
	e.Player.handle = h
	e.Player.valid = true
	return true
}

// RefreshPlayerTracking re-resolves the player and its position once the
// tracking interval has passed since the previous refresh.
func (e *Enemy) RefreshPlayerTracking(now float64) {
	p := &e.Player
	if p.checked && now <= p.lastCheck+e.tracking.CheckInterval {
		return
	}
	p.checked = true
	p.lastCheck = now

	if !p.valid && !e.FindPlayer() {
		e.warnMissingPlayer()
		return
	}
	pos, ok := e.locator.GetPosition(p.handle)
	if !ok {
		p.invalidate()
		e.warnMissingPlayer()
		return
	}
	if p.warned {
		e.log.Debug("player reacquired")
		p.warned = false
	}
	p.position = pos
	p.distance = e.Body.Position().Dist(pos)
}

// warnMissingPlayer logs once per streak of failed lookups.
func (e *Enemy) warnMissingPlayer() {
	if e.Player.warned {
		return
	}
	e.Player.warned = true
	e.log.Warn("no player found, idling")
}

// PlayerDistance is the distance from the current body position to the
// player snapshot.
func (e *Enemy) PlayerDistance() float64 {
	return e.Body.Position().Dist(e.Player.position)
}

// PlayerInRange reports whether a valid player is within detection radius.
func (e *Enemy) PlayerInRange() bool {
	return e.Player.valid && e.PlayerDistance() <= e.stats.DetectionRadius
}

// TakeDamage lowers health, clamped at zero, and dies when it reaches zero.
// Calls after death and non-positive amounts are ignored.
func (e *Enemy) TakeDamage(amount int) {
	if e.dead || amount <= 0 {
		return
	}
	e.Health = max(e.Health-amount, 0)
	e.Health = min(e.Health, e.MaxHealth)
	for _, fn := range e.onDamage {
		fn(e, amount)
	}
	if e.Health == 0 {
		e.Die()
		return
	}
	e.animator.SetTrigger(config.AnimHit)
	e.audio.PlayOneShot(config.SoundEnemyHurt, e.Body.Position())
}

// Die runs the death effects. Only the first call has any effect.
func (e *Enemy) Die() {
	if e.dead {
		return
	}
	e.dead = true
	e.Health = 0
	e.Body.SetVelocity(gamemath.Vec2{})
	e.animator.SetTrigger(config.AnimDie)
	e.audio.PlayOneShot(config.SoundEnemyDeath, e.Body.Position())
	e.log.Info("enemy died")
	for _, fn := range e.onDeath {
		fn(e)
	}
}

// CheckSurroundings casts the short range probes for the current body.
func (e *Enemy) CheckSurroundings() Sensors {
	return e.Spatial.Sense(e.Body.Position(), e.Body.Size(), e.facing)
}

// Sense stores a fresh sensor snapshot for this tick.
func (e *Enemy) Sense() Sensors {
	e.sensors = e.CheckSurroundings()
	return e.sensors
}

// UpdateFacing turns toward the player when the horizontal offset exceeds
// the facing threshold.
func (e *Enemy) UpdateFacing() {
	if !e.Player.valid {
		return
	}
	dx := e.Player.position.X - e.Body.Position().X
	if math.Abs(dx) > e.tracking.FacingThreshold {
		e.facing = gamemath.Sign(dx)
	}
}

// SetFacing turns the enemy. Zero is ignored.
func (e *Enemy) SetFacing(dir float64) {
	if dir != 0 {
		e.facing = gamemath.Sign(dir)
	}
}

// Jump applies the jump impulse. Without force it requires the last sensor
// snapshot to be grounded.
func (e *Enemy) Jump(force bool) bool {
	if !force && !e.sensors.Grounded {
		return false
	}
	v := e.Body.Velocity()
	v.Y = -e.stats.JumpSpeed
	e.Body.SetVelocity(v)
	e.sensors.Grounded = false
	e.animator.SetTrigger(config.AnimJump)
	e.audio.PlayOneShot(config.SoundEnemyJump, e.Body.Position())
	return true
}

// MoveHorizontal drives the body along X and faces the direction of travel.
func (e *Enemy) MoveHorizontal(dir, speed float64) {
	e.SetFacing(dir)
	v := e.Body.Velocity()
	v.X = gamemath.Sign(dir) * speed
	e.Body.SetVelocity(v)
}

// Stop zeroes horizontal velocity.
func (e *Enemy) Stop() {
	v := e.Body.Velocity()
	v.X = 0
	e.Body.SetVelocity(v)
}

// Hold zeroes both velocity components.
func (e *Enemy) Hold() {
	e.Body.SetVelocity(gamemath.Vec2{})
}

func (e *Enemy) now() float64 { return e.clock.Now() }

func (e *Enemy) trigger(name string) { e.animator.SetTrigger(name) }

func (e *Enemy) cue(event string) { e.audio.PlayOneShot(event, e.Body.Position()) }
