package systems

import (
	"testing"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDamageSinkAccumulatesWithinATick(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(320, 300)

	w.host.Damage.ApplyDamage(handle(p), 10)
	w.host.Damage.ApplyDamage(handle(p), 15)
	w.host.Damage.ApplyKnockback(handle(p), gamemath.V(100, -20))
	w.host.Damage.ApplyKnockback(handle(p), gamemath.V(50, -30))

	require.True(t, p.HasComponent(components.DamageEvent))
	ev := components.DamageEvent.Get(p)
	assert.Equal(t, 25, ev.Amount)
	assert.Equal(t, 2, ev.Hits)
	assert.Equal(t, gamemath.V(150, -50), ev.Knockback)
}

func TestPlayerIsInvulnerableAfterAHit(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(320, 300)
	full := cfg.Player.Health

	w.host.Damage.ApplyDamage(handle(p), 30)
	w.step(UpdateCombat)

	assert.False(t, p.HasComponent(components.DamageEvent))
	assert.Equal(t, full-30, components.Health.Get(p).Current)
	assert.Equal(t, 1, w.match().PlayerHits)
	assert.InDelta(t, cfg.Player.InvulnTime, components.Player.Get(p).InvulnTimer, 1e-9)

	w.host.Damage.ApplyDamage(handle(p), 30)
	w.step(UpdateCombat)

	assert.False(t, p.HasComponent(components.DamageEvent))
	assert.Equal(t, full-30, components.Health.Get(p).Current)
	assert.Equal(t, 30, components.Player.Get(p).DamageTaken)
}

func TestKnockbackStunsThePlayer(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(320, 300)

	w.host.Damage.ApplyDamage(handle(p), 5)
	w.host.Damage.ApplyKnockback(handle(p), gamemath.V(-120, -60))
	w.step(UpdateCombat)

	physics := components.Physics.Get(p)
	assert.Equal(t, -120.0, physics.SpeedX)
	assert.Equal(t, -60.0, physics.SpeedY)
	assert.InDelta(t, cfg.Player.StunTime, components.Player.Get(p).StunTimer, 1e-9)
}

func TestDefeatedPlayerRespawnsAtHome(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(320, 300)
	obj := components.Object.Get(p)
	obj.X += 150
	obj.Update()

	w.host.Damage.ApplyDamage(handle(p), 10*cfg.Player.Health)
	w.step(UpdateCombat)

	player := components.Player.Get(p)
	assert.Equal(t, 1, player.Deaths)
	assert.Equal(t, cfg.Player.Health, components.Health.Get(p).Current)
	assert.InDelta(t, 320, obj.Center().X, 1e-6)
	assert.InDelta(t, 300, obj.Y+obj.H, 1e-6)
}

func TestEnemyDamageGoesThroughBehavior(t *testing.T) {
	w := newTestWorld(t)
	grunt := w.enemy(t, "grunt", 100, 300)
	e := components.Enemy.Get(grunt).Behavior.Base()
	start := e.Health

	w.host.Damage.ApplyDamage(handle(grunt), 10)
	w.host.Damage.ApplyKnockback(handle(grunt), gamemath.V(80, -40))
	w.step(UpdateCombat)

	assert.Equal(t, start-10, e.Health)
	physics := components.Physics.Get(grunt)
	assert.Equal(t, 80.0, physics.SpeedX)
	assert.Equal(t, -40.0, physics.SpeedY)
}

func TestPlayerSwingsAtNearestEnemyInReach(t *testing.T) {
	w := newTestWorld(t)
	p := w.player(320, 300)
	near := w.enemy(t, "grunt", 345, 300)
	far := w.enemy(t, "grunt", 500, 300)

	w.step(UpdatePlayer)

	require.True(t, near.HasComponent(components.DamageEvent))
	assert.Equal(t, cfg.Player.AttackDamage, components.DamageEvent.Get(near).Amount)
	assert.False(t, far.HasComponent(components.DamageEvent))
	assert.InDelta(t, cfg.Player.AttackCooldown, components.Player.Get(p).AttackTimer, 1e-9)

	w.step(UpdateCombat, UpdatePlayer)
	assert.False(t, near.HasComponent(components.DamageEvent), "attack is on cooldown")
}
