package enemyai

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
)

// Mage hovers above the player, blinks away when crowded and casts
// fireballs after a windup.
type Mage struct {
	*Enemy
	cfg      *config.MageConfig
	fireball *ProjectileAttacker

	isCasting bool
	castStart float64

	isTeleporting bool
	teleportStart float64
	teleportDest  gamemath.Vec2
	lastTeleport  float64
	hasTeleported bool
}

func NewMage(deps Deps, ai *config.AIConfig) *Mage {
	e := newEnemy(KindMage, deps, &ai.Mage.Stats, ai)
	return &Mage{
		Enemy:    e,
		cfg:      &ai.Mage,
		fireball: NewProjectileAttacker(e, &ai.Mage.Fireball),
	}
}

func (m *Mage) Fireball() *ProjectileAttacker { return m.fireball }
func (m *Mage) IsCasting() bool               { return m.isCasting }
func (m *Mage) IsTeleporting() bool           { return m.isTeleporting }

func (m *Mage) Update() {
	if m.dead {
		return
	}
	now := m.now()
	m.RefreshPlayerTracking(now)

	if m.isTeleporting {
		m.updateTeleport(now)
		return
	}
	if m.isCasting {
		m.updateCast(now)
		return
	}

	if !m.PlayerInRange() {
		m.Hold()
		return
	}
	m.UpdateFacing()

	if m.PlayerDistance() <= m.cfg.TeleportThreshold && m.teleportReady(now) {
		m.startTeleport(now)
		return
	}
	m.Attack()
}

// FixedUpdate steers toward the hover point while idle.
func (m *Mage) FixedUpdate() {
	if m.dead || m.isCasting || m.isTeleporting {
		return
	}
	if !m.PlayerInRange() {
		return
	}
	target := m.HoverPoint(m.now())
	v := target.Sub(m.Body.Position()).Scale(m.cfg.FollowGain)
	if l := v.Len(); l > m.Speed() {
		v = v.Scale(m.Speed() / l)
	}
	m.Body.SetVelocity(v)
}

// HoverPoint is the bobbing point above the player the mage steers to.
func (m *Mage) HoverPoint(now float64) gamemath.Vec2 {
	bob := m.cfg.HoverAmplitude * math.Sin(m.cfg.HoverFrequency*now)
	return m.Player.Position().Add(gamemath.V(0, -m.cfg.HoverHeight+bob))
}

// Attack starts a cast when the fireball gate is open.
func (m *Mage) Attack() {
	if m.isCasting || !m.Player.Valid() {
		return
	}
	if !m.fireball.CanAttack(m.Player.Position()) {
		return
	}
	m.isCasting = true
	m.castStart = m.now()
	m.Hold()
	m.Body.SetKinematic(true)
	m.trigger(config.AnimCast)
	m.log.Debug("casting fireball")
}

func (m *Mage) updateCast(now float64) {
	m.Hold()
	if now-m.castStart < m.cfg.CastWindup {
		return
	}
	m.isCasting = false
	m.Body.SetKinematic(false)
	if !m.Player.Valid() {
		return
	}
	if m.fireball.ShootProjectile(m.Player.Position(), "") {
		m.cue(config.SoundFireballCast)
	}
}

func (m *Mage) teleportReady(now float64) bool {
	return !m.hasTeleported || now-m.lastTeleport >= m.cfg.TeleportCooldown
}

func (m *Mage) startTeleport(now float64) {
	m.isTeleporting = true
	m.teleportStart = now
	m.lastTeleport = now
	m.hasTeleported = true
	m.teleportDest = m.teleportDestination()
	m.Hold()
	m.Body.SetKinematic(true)
	m.trigger(config.AnimTeleport)
	m.cue(config.SoundTeleport)
}

// teleportDestination picks a point TeleportDistance away from the player.
// A wall on that side shortens the jump or flips it to the other side.
func (m *Mage) teleportDestination() gamemath.Vec2 {
	pos := m.Body.Position()
	away := gamemath.Sign(pos.X - m.Player.Position().X)
	if away == 0 {
		away = -m.facing
	}
	margin := m.Body.Size().X
	dist := m.cfg.TeleportDistance

	best, bestDist := away, 0.0
	for _, dir := range []float64{away, -away} {
		wall, blocked := m.Spatial.WallDistance(pos, gamemath.V(dir, 0), dist+margin)
		if !blocked {
			return pos.Add(gamemath.V(dir*dist, 0))
		}
		if free := wall - margin; free > bestDist {
			best, bestDist = dir, free
		}
	}
	return pos.Add(gamemath.V(best*bestDist, 0))
}

func (m *Mage) updateTeleport(now float64) {
	m.Hold()
	if now-m.teleportStart < m.cfg.TeleportDuration {
		return
	}
	m.Body.SetPosition(m.teleportDest)
	m.Body.SetKinematic(false)
	m.isTeleporting = false
	m.log.WithField("to", m.teleportDest).Debug("teleported")
}
