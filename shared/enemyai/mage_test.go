package enemyai

import (
	"testing"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMage(r *rig) *Mage {
	r.ai.Tracking.CheckInterval = 0
	return NewMage(r.deps(), r.ai)
}

func TestMageHoversAbovePlayer(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(300, -20)
	m := newTestMage(r)

	m.Update()
	m.FixedUpdate()

	assert.False(t, m.IsCasting())
	assert.Greater(t, r.body.vel.X, 0.0)
	assert.LessOrEqual(t, r.body.vel.Len(), r.ai.Mage.Stats.Speed+1e-9)

	hover := m.HoverPoint(0)
	assert.Equal(t, 300.0, hover.X)
	assert.InDelta(t, -20-r.ai.Mage.HoverHeight, hover.Y, 1e-9)
}

func TestMageHoverBobs(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(300, -20)
	m := newTestMage(r)
	m.RefreshPlayerTracking(0)

	seen := map[float64]bool{}
	for _, now := range []float64{0, 0.3, 0.6, 0.9} {
		seen[m.HoverPoint(now).Y] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestMageCastWindup(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(100, -20)
	m := newTestMage(r)

	m.Update()
	require.True(t, m.IsCasting())
	assert.True(t, r.body.kinematic)
	assert.Equal(t, 1, r.anim.count(config.AnimCast))

	for _, now := range []float64{0.1, 0.3, 0.5} {
		r.clock.now = now
		r.body.vel = gamemath.V(40, 40)
		m.Update()
		m.FixedUpdate()
		assert.Empty(t, r.factory.specs)
		assert.Equal(t, gamemath.Vec2{}, r.body.vel)
	}

	r.clock.now = r.ai.Mage.CastWindup
	m.Update()
	assert.False(t, m.IsCasting())
	assert.False(t, r.body.kinematic)
	require.Len(t, r.factory.specs, 1)
	assert.Equal(t, "fireball", r.factory.specs[0].Kind)
}

func TestMageCastAbortsWhenSightBlocked(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(100, -20)
	m := newTestMage(r)

	m.Update()
	require.True(t, m.IsCasting())

	r.phys.boxes = append(r.phys.boxes, solid(40, -300, 60, 0))
	r.clock.now = r.ai.Mage.CastWindup
	m.Update()

	assert.False(t, m.IsCasting())
	assert.Empty(t, r.factory.specs)
	assert.True(t, m.Fireball().CooldownReady(r.clock.now))
}

func TestMageTeleportsAwayFromPlayer(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(20, -100)
	m := newTestMage(r)

	m.Update()
	require.True(t, m.IsTeleporting())
	assert.True(t, r.body.kinematic)

	r.clock.now = 0.2
	m.Update()
	assert.Equal(t, gamemath.V(0, -100), r.body.pos)

	r.clock.now = r.ai.Mage.TeleportDuration
	m.Update()
	assert.False(t, m.IsTeleporting())
	assert.False(t, r.body.kinematic)
	assert.Equal(t, gamemath.V(-r.ai.Mage.TeleportDistance, -100), r.body.pos)
	assert.Empty(t, r.factory.specs)
}

func TestMageTeleportsFromHoverPoint(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.placePlayer(0, -100+r.ai.Mage.HoverHeight+r.ai.Mage.HoverAmplitude)
	m := newTestMage(r)

	m.Update()
	assert.True(t, m.IsTeleporting())
	assert.Equal(t, 1, r.anim.count(config.AnimTeleport))
}

func TestMageTeleportAvoidsWalls(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.phys.boxes = append(r.phys.boxes, solid(-60, -300, -40, 0))
	r.placePlayer(20, -100)
	m := newTestMage(r)

	m.Update()
	r.clock.now = r.ai.Mage.TeleportDuration
	m.Update()

	assert.Equal(t, gamemath.V(r.ai.Mage.TeleportDistance, -100), r.body.pos)
}

func TestMageTeleportCooldown(t *testing.T) {
	r := newRig(gamemath.V(0, -100), gamemath.V(16, 32))
	r.ai.Mage.Fireball.Range = 1
	r.placePlayer(20, -100)
	m := newTestMage(r)

	m.Update()
	r.clock.now = r.ai.Mage.TeleportDuration
	m.Update()
	require.False(t, m.IsTeleporting())

	// Player follows immediately; teleport is still cooling down.
	r.player.pos = r.body.pos.Add(gamemath.V(20, 0))
	r.clock.now += 0.1
	m.Update()
	assert.False(t, m.IsTeleporting())

	r.clock.now = r.ai.Mage.TeleportCooldown + 0.01
	r.player.pos = r.body.pos.Add(gamemath.V(20, 0))
	m.Update()
	assert.True(t, m.IsTeleporting())
}
