package enemyai

import (
	"testing"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bossRig stands a 64x48 boss on the floor, centered at y=-24.
func bossRig() *rig {
	r := newRig(gamemath.V(0, -24), gamemath.V(64, 48))
	r.clock.dt = 0.125
	r.ai.Tracking.CheckInterval = 0
	return r
}

func newTestBoss(r *rig) *Boss {
	return NewBoss(r.deps(), r.ai)
}

func TestBossPhaseChangeDeferredByCooldown(t *testing.T) {
	r := bossRig()
	r.ai.Boss.PhaseChangeDamageThreshold = 100
	r.ai.Boss.PhaseChangeCooldown = 2
	b := newTestBoss(r)
	b.lastPhaseChange = 4

	r.clock.now = 5
	b.TakeDamage(100)
	b.Update()
	assert.False(t, b.IsChangingHeight())
	assert.Equal(t, 100, b.DamageSinceChange())

	r.clock.now = 5.5
	b.Update()
	assert.False(t, b.IsChangingHeight())

	r.clock.now = 6
	b.Update()
	assert.True(t, b.IsChangingHeight())
	assert.Equal(t, DragonChangingHeight, b.State())
	assert.Equal(t, 6.0, b.LastPhaseChange())
	assert.Zero(t, b.DamageSinceChange())
}

func TestBossBelowThresholdStaysGrounded(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)

	r.clock.now = 30
	b.TakeDamage(r.ai.Boss.PhaseChangeDamageThreshold - 1)
	b.Update()

	assert.False(t, b.IsChangingHeight())
	assert.Equal(t, DragonGrounded, b.State())
}

func TestBossTimerPolicy(t *testing.T) {
	r := bossRig()
	r.ai.Boss.PhaseTrigger = config.PhaseTriggerTimer
	r.ai.Boss.PhaseInterval = 12
	b := newTestBoss(r)

	r.clock.now = 11.875
	b.Update()
	assert.False(t, b.IsChangingHeight())

	r.clock.now = 12
	b.Update()
	assert.True(t, b.IsChangingHeight())
}

func TestBossChangingHeightBlocksAttacks(t *testing.T) {
	r := bossRig()
	r.placePlayer(40, -20)
	b := newTestBoss(r)
	require.True(t, b.ChangeHeight(true))

	ticks := int(r.ai.Boss.HeightChangeDuration / r.clock.dt)
	for i := 0; i < ticks-1; i++ {
		tick(r, b)
		b.Attack()

		require.True(t, b.IsChangingHeight())
		assert.Empty(t, r.factory.specs)
		assert.Empty(t, r.sink.damage)
		assert.Empty(t, r.sink.knockback)
		assert.False(t, b.ChangeHeight(false))
	}
	for _, anim := range []string{config.AnimBite, config.AnimBreath, config.AnimAttack} {
		assert.Zero(t, r.anim.count(anim), anim)
	}

	tick(r, b)
	assert.False(t, b.IsChangingHeight())
	assert.Equal(t, DragonFlying, b.State())
}

func TestBossHeightRoundTrip(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)
	startY := r.body.pos.Y

	run := func() {
		for b.IsChangingHeight() {
			tick(r, b)
		}
	}

	require.True(t, b.ChangeHeight(true))
	assert.True(t, r.body.kinematic)
	run()
	assert.Equal(t, DragonFlying, b.State())
	assert.InDelta(t, b.GroundLevel()-r.ai.Boss.FlyHeight, r.body.pos.Y, 1e-6)
	assert.False(t, r.body.kinematic)

	require.True(t, b.ChangeHeight(false))
	run()
	assert.Equal(t, DragonGrounded, b.State())
	assert.InDelta(t, startY, r.body.pos.Y, 1e-6)
}

func TestBossHeightChangeIsEased(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)
	require.True(t, b.ChangeHeight(true))

	var ys []float64
	for b.IsChangingHeight() {
		tick(r, b)
		ys = append(ys, r.body.pos.Y)
	}
	require.Greater(t, len(ys), 4)

	first := -24 - ys[0]
	mid := ys[len(ys)/2-1] - ys[len(ys)/2]
	assert.Less(t, first, mid)
}

func TestBossGroundedPrefersBite(t *testing.T) {
	r := bossRig()
	r.placePlayer(40, -20)
	b := newTestBoss(r)

	tick(r, b)

	require.Len(t, r.sink.damage, 1)
	assert.Equal(t, r.ai.Boss.BiteDamage, r.sink.damage[0].amount)
	assert.Equal(t, gamemath.V(r.ai.Boss.BiteKnockbackX, r.ai.Boss.BiteKnockbackY), r.sink.knockback[0])
	assert.Empty(t, r.factory.specs)
	assert.Equal(t, 1, r.anim.count(config.AnimBite))

	// Bite is on cooldown; breath must not fill in.
	tick(r, b)
	assert.Len(t, r.sink.damage, 1)
	assert.Empty(t, r.factory.specs)
}

func TestBossGroundedBreathOutsideBiteRange(t *testing.T) {
	r := bossRig()
	r.placePlayer(150, -20)
	b := newTestBoss(r)

	tick(r, b)

	assert.Empty(t, r.sink.damage)
	require.Len(t, r.factory.specs, 1)
	assert.Equal(t, "breath", r.factory.specs[0].Kind)

	// Busy while breathing even if the player walks into bite range.
	r.player.pos = gamemath.V(40, -20)
	tick(r, b)
	assert.Empty(t, r.sink.damage)
}

func TestBossGroundedWalksWhenOutOfAttackRange(t *testing.T) {
	r := bossRig()
	r.placePlayer(-400, -20)
	b := newTestBoss(r)

	tick(r, b)

	assert.Less(t, r.body.vel.X, 0.0)
	assert.Empty(t, r.factory.specs)
	assert.Empty(t, r.sink.damage)
}

func TestBossFlyingUsesLongRangeAttack(t *testing.T) {
	r := bossRig()
	r.placePlayer(100, -20)
	b := newTestBoss(r)
	b.ChangeHeight(true)
	for b.IsChangingHeight() {
		tick(r, b)
	}
	require.Equal(t, DragonFlying, b.State())

	tick(r, b)

	require.Len(t, r.factory.specs, 1)
	assert.Equal(t, "fireball_huge", r.factory.specs[0].Kind)
	assert.Empty(t, r.sink.damage)
	assert.Greater(t, r.body.vel.X, 0.0)
}

func TestBossGroundFallback(t *testing.T) {
	r := bossRig()
	r.phys.boxes = nil
	b := newTestBoss(r)

	tick(r, b)

	assert.Equal(t, -24+r.ai.Boss.FallbackGroundOffset, b.GroundLevel())
}

func TestBossKeepsLastGroundOnMiss(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)
	tick(r, b)
	require.Equal(t, 0.0, b.GroundLevel())

	r.phys.boxes = nil
	r.clock.now += r.ai.Boss.GroundSenseInterval
	tick(r, b)

	assert.Equal(t, 0.0, b.GroundLevel())
}

func TestBossContactDamageEveryTick(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)

	b.OnPlayerContact(playerHandle, gamemath.V(-20, -20))
	b.OnPlayerContact(playerHandle, gamemath.V(-20, -20))

	require.Len(t, r.sink.damage, 2)
	assert.Equal(t, r.ai.Boss.ContactDamage, r.sink.damage[1].amount)
	k := r.ai.Boss.ContactKnockback
	assert.Equal(t, gamemath.V(-k, -k/2), r.sink.knockback[0])
	assert.Less(t, k, r.ai.Boss.BiteKnockbackX)
}

func TestBossDeadIgnoresContact(t *testing.T) {
	r := bossRig()
	b := newTestBoss(r)
	b.Die()

	b.OnPlayerContact(playerHandle, gamemath.V(0, -20))
	assert.Empty(t, r.sink.damage)
}
