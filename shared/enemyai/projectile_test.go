package enemyai

import (
	"errors"
	"testing"

	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestArcherAttacker returns an archer standing at the origin with a
// bow of the given cooldown and range and no spawn offset.
func newTestArcherAttacker(r *rig, cooldown, rng float64) *Archer {
	r.ai.Archer.Bow.Cooldown = cooldown
	r.ai.Archer.Bow.Range = rng
	r.ai.Archer.Bow.SpawnOffsetX = 0
	r.ai.Archer.Bow.SpawnOffsetY = 0
	return NewArcher(r.deps(), r.ai)
}

func TestCanAttackCooldownScenario(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	a := newTestArcherAttacker(r, 1.5, 100)
	target := gamemath.V(50, -18)

	r.clock.now = 0
	require.True(t, a.Bow().CanAttack(target))
	require.True(t, a.Bow().ShootProjectile(target, ""))

	r.clock.now = 1.0
	assert.False(t, a.Bow().CanAttack(target))

	r.clock.now = 1.6
	assert.True(t, a.Bow().CanAttack(target))
}

func TestCooldownDominatesRangeAndSight(t *testing.T) {
	tests := []struct {
		name    string
		target  gamemath.Vec2
		blocked bool
	}{
		{"in range clear", gamemath.V(50, -18), false},
		{"out of range", gamemath.V(500, -18), false},
		{"blocked", gamemath.V(50, -18), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
			a := newTestArcherAttacker(r, 2, 100)
			require.True(t, a.Bow().ShootProjectile(gamemath.V(50, -18), ""))
			if tt.blocked {
				r.phys.boxes = append(r.phys.boxes, solid(20, -100, 30, 0))
			}

			r.clock.now = 1.9
			assert.False(t, a.Bow().CanAttack(tt.target))
			assert.False(t, a.Bow().Gate(tt.target).CooldownReady)
		})
	}
}

func TestCanAttackRequiresLineOfSight(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	r.phys.boxes = append(r.phys.boxes, solid(20, -100, 30, 0))
	a := newTestArcherAttacker(r, 1, 100)
	target := gamemath.V(50, -18)

	gate := a.Bow().Gate(target)
	assert.True(t, gate.CooldownReady)
	assert.True(t, gate.InRange)
	assert.False(t, gate.ClearShot)
	assert.False(t, gate.Open())
	assert.False(t, a.Bow().CanAttack(target))
}

func TestCanAttackRangeIsInclusive(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	a := newTestArcherAttacker(r, 1, 100)

	assert.True(t, a.Bow().CanAttack(gamemath.V(100, -18)))
	assert.False(t, a.Bow().CanAttack(gamemath.V(100.5, -18)))
}

func TestShootRevalidatesLineOfSight(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	a := newTestArcherAttacker(r, 1, 100)
	target := gamemath.V(50, -18)
	require.True(t, a.Bow().CanAttack(target))

	// A wall appears between the decision and the shot.
	r.phys.boxes = append(r.phys.boxes, solid(20, -100, 30, 0))
	assert.False(t, a.Bow().ShootProjectile(target, ""))

	assert.Empty(t, r.factory.specs)
	_, fired := a.Bow().LastAttackTime()
	assert.False(t, fired)
}

func TestShootSpawnsNormalizedProjectile(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	a := newTestArcherAttacker(r, 1, 100)
	r.clock.now = 3

	require.True(t, a.Bow().ShootProjectile(gamemath.V(30, -58), ""))
	require.Len(t, r.factory.specs, 1)

	spec := r.factory.specs[0]
	assert.Equal(t, "arrow", spec.Kind)
	assert.InDelta(t, 0.6, spec.Direction.X, 1e-9)
	assert.InDelta(t, -0.8, spec.Direction.Y, 1e-9)
	assert.Equal(t, r.ai.Archer.Bow.ProjectileSpeed, spec.Speed)
	assert.Equal(t, r.ai.Archer.Bow.Damage, spec.Damage)
	assert.Equal(t, Handle(3), spec.Owner)

	last, fired := a.Bow().LastAttackTime()
	assert.True(t, fired)
	assert.Equal(t, 3.0, last)
}

func TestShootFactoryErrorConsumesNothing(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	r.factory.err = ErrNoProjectilePrefab
	a := newTestArcherAttacker(r, 1, 100)

	assert.False(t, a.Bow().ShootProjectile(gamemath.V(50, -18), ""))
	assert.True(t, a.Bow().CooldownReady(0))

	r.factory.err = errors.New("pool exhausted")
	assert.False(t, a.Bow().ShootProjectile(gamemath.V(50, -18), "arrow"))

	r.factory.err = nil
	assert.True(t, a.Bow().ShootProjectile(gamemath.V(50, -18), "arrow"))
}

func TestShootWithoutFactory(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	deps := r.deps()
	deps.Host.Projectiles = nil
	a := NewArcher(deps, r.ai)

	assert.False(t, a.Bow().ShootProjectile(gamemath.V(50, -18), ""))
	assert.True(t, a.Bow().CooldownReady(0))
}

func TestSpawnOffsetMirrorsTowardTarget(t *testing.T) {
	r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
	r.ai.Archer.Bow.SpawnOffsetX = 10
	r.ai.Archer.Bow.SpawnOffsetY = -6
	a := NewArcher(r.deps(), r.ai)

	assert.Equal(t, gamemath.V(10, -24), a.Bow().Origin(gamemath.V(100, -18)))
	assert.Equal(t, gamemath.V(-10, -24), a.Bow().Origin(gamemath.V(-100, -18)))
}

func TestArcherApproachThenShoot(t *testing.T) {
	t.Run("approaches beyond eighty percent", func(t *testing.T) {
		r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
		a := newTestArcherAttacker(r, 1, 10)
		r.placePlayer(12, -18)

		a.Update()

		assert.Greater(t, r.body.vel.X, 0.0)
		assert.Empty(t, r.factory.specs)
	})

	t.Run("attacks within eighty percent", func(t *testing.T) {
		r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
		a := newTestArcherAttacker(r, 1, 10)
		r.placePlayer(7, -18)
		r.body.vel = gamemath.V(50, 0)

		a.Update()

		assert.Zero(t, r.body.vel.X)
		require.Len(t, r.factory.specs, 1)
		assert.Equal(t, 1, r.anim.count("Attack"))
	})

	t.Run("holds at platform edge", func(t *testing.T) {
		r := newRig(gamemath.V(0, -18), gamemath.V(16, 36))
		r.phys.boxes = []box{solid(-500, 0, 5, 50)}
		a := newTestArcherAttacker(r, 1, 100)
		r.placePlayer(200, -18)

		a.Update()

		assert.Zero(t, r.body.vel.X)
	})
}
