package enemyai

import (
	"errors"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
)

// ErrNoProjectilePrefab is returned by factories that have no prefab for a
// projectile kind.
var ErrNoProjectilePrefab = errors.New("enemyai: no projectile prefab")

// AttackGate is the outcome of each ranged attack precondition.
type AttackGate struct {
	CooldownReady bool
	InRange       bool
	ClearShot     bool
}

// Open reports whether every precondition holds.
func (g AttackGate) Open() bool {
	return g.CooldownReady && g.InRange && g.ClearShot
}

// ProjectileAttacker gates and fires ranged attacks for one enemy.
type ProjectileAttacker struct {
	owner *Enemy
	cfg   *config.RangedAttackConfig

	lastAttackTime float64
	hasAttacked    bool
	warned         bool
}

func NewProjectileAttacker(owner *Enemy, cfg *config.RangedAttackConfig) *ProjectileAttacker {
	return &ProjectileAttacker{owner: owner, cfg: cfg}
}

func (a *ProjectileAttacker) Range() float64 { return a.cfg.Range }

// LastAttackTime returns the time of the last successful shot.
func (a *ProjectileAttacker) LastAttackTime() (float64, bool) {
	return a.lastAttackTime, a.hasAttacked
}

// CooldownReady reports whether the cooldown has elapsed. An attacker that
// never fired is ready.
func (a *ProjectileAttacker) CooldownReady(now float64) bool {
	return !a.hasAttacked || now-a.lastAttackTime >= a.cfg.Cooldown
}

// Origin is the spawn point for a shot at target, with the configured offset
// mirrored toward the target.
func (a *ProjectileAttacker) Origin(target gamemath.Vec2) gamemath.Vec2 {
	pos := a.owner.Body.Position()
	dir := gamemath.Sign(target.X - pos.X)
	if dir == 0 {
		dir = a.owner.facing
	}
	offset := gamemath.V(a.cfg.SpawnOffsetX, a.cfg.SpawnOffsetY).MirrorX(dir)
	return pos.Add(offset)
}

// Gate evaluates all three preconditions without short circuiting.
func (a *ProjectileAttacker) Gate(target gamemath.Vec2) AttackGate {
	pos := a.owner.Body.Position()
	return AttackGate{
		CooldownReady: a.CooldownReady(a.owner.now()),
		InRange:       pos.Dist(target) <= a.cfg.Range,
		ClearShot:     a.owner.Spatial.LineOfSight(a.Origin(target), target),
	}
}

// CanAttack reports whether a shot at target may fire now. Cooldown is
// checked first, then range, then line of sight.
func (a *ProjectileAttacker) CanAttack(target gamemath.Vec2) bool {
	if !a.CooldownReady(a.owner.now()) {
		return false
	}
	if a.owner.Body.Position().Dist(target) > a.cfg.Range {
		return false
	}
	return a.owner.Spatial.LineOfSight(a.Origin(target), target)
}

// ShootProjectile fires at target. Line of sight is checked again right
// before spawning; a blocked shot or a failed spawn consumes no cooldown.
// An empty kind uses the configured projectile.
func (a *ProjectileAttacker) ShootProjectile(target gamemath.Vec2, kind string) bool {
	if kind == "" {
		kind = a.cfg.Kind
	}
	origin := a.Origin(target)
	if !a.owner.Spatial.LineOfSight(origin, target) {
		return false
	}
	dir := target.Sub(origin).Normalized()
	if dir.IsZero() {
		dir = gamemath.V(a.owner.facing, 0)
	}

	if a.owner.factory == nil {
		a.warnSpawn(kind, ErrNoProjectilePrefab)
		return false
	}
	_, err := a.owner.factory.SpawnProjectile(ProjectileSpec{
		Kind:      kind,
		Position:  origin,
		Direction: dir,
		Speed:     a.cfg.ProjectileSpeed,
		Damage:    a.cfg.Damage,
		Owner:     a.owner.Self,
	})
	if err != nil {
		a.warnSpawn(kind, err)
		return false
	}
	a.warned = false
	a.lastAttackTime = a.owner.now()
	a.hasAttacked = true
	return true
}

func (a *ProjectileAttacker) warnSpawn(kind string, err error) {
	if a.warned {
		return
	}
	a.warned = true
	a.owner.log.WithFields(logrus.Fields{
		"projectile": kind,
		"error":      err,
	}).Warn("projectile spawn failed, skipping attack")
}
