package systems

import (
	"fmt"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewHost builds the world-wide collaborators the enemies talk to.
func NewHost(e *ecs.ECS, clock enemyai.Clock, log logrus.FieldLogger) *enemyai.Host {
	return &enemyai.Host{
		Clock:       clock,
		Player:      playerLocator{world: e.World},
		Damage:      damageSink{world: e.World},
		Projectiles: projectileSpawner{ecs: e},
		Audio:       audioQueue{world: e.World},
		Log:         log,
	}
}

type playerLocator struct {
	world donburi.World
}

func (l playerLocator) FindPlayerByTag() (enemyai.Handle, bool) {
	entry, ok := tags.Player.First(l.world)
	if !ok {
		return enemyai.NoHandle, false
	}
	return enemyai.Handle(entry.Entity()), true
}

func (l playerLocator) GetPosition(h enemyai.Handle) (gamemath.Vec2, bool) {
	entry, ok := entryOf(l.world, h)
	if !ok || !entry.HasComponent(components.Object) {
		return gamemath.Vec2{}, false
	}
	return components.Object.Get(entry).Center(), true
}

// damageSink queues hits as DamageEvent components for UpdateCombat.
type damageSink struct {
	world donburi.World
}

func (s damageSink) event(h enemyai.Handle) *components.DamageEventData {
	entry, ok := entryOf(s.world, h)
	if !ok {
		return nil
	}
	if !entry.HasComponent(components.DamageEvent) {
		donburi.Add(entry, components.DamageEvent, &components.DamageEventData{})
	}
	return components.DamageEvent.Get(entry)
}

func (s damageSink) ApplyDamage(target enemyai.Handle, amount int) {
	if ev := s.event(target); ev != nil {
		ev.Amount += amount
		ev.Hits++
	}
}

func (s damageSink) ApplyKnockback(target enemyai.Handle, impulse gamemath.Vec2) {
	if ev := s.event(target); ev != nil {
		ev.Knockback = ev.Knockback.Add(impulse)
	}
}

type projectileSpawner struct {
	ecs *ecs.ECS
}

func (s projectileSpawner) SpawnProjectile(spec enemyai.ProjectileSpec) (enemyai.Handle, error) {
	match := GetMatch(s.ecs.World)
	prefab, ok := cfg.Projectiles[spec.Kind]
	if !ok {
		if match != nil {
			match.ProjectileErrors++
		}
		return enemyai.NoHandle, fmt.Errorf("%w: %q", enemyai.ErrNoProjectilePrefab, spec.Kind)
	}
	p := factory.CreateProjectile(s.ecs, spec, prefab)
	if match != nil {
		match.ProjectilesFired++
	}
	return enemyai.Handle(p.Entity()), nil
}

type audioQueue struct {
	world donburi.World
}

func (q audioQueue) PlayOneShot(event string, pos gamemath.Vec2) {
	entry, ok := components.Audio.First(q.world)
	if !ok {
		return
	}
	audio := components.Audio.Get(entry)
	audio.PendingSFX = append(audio.PendingSFX, components.SoundCue{Event: event, Position: pos})
}
