package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/systems/bridge"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// offscreenMargin is how far past the level bounds a projectile may fly.
const offscreenMargin = 100

type projectileHit struct {
	target    enemyai.Handle
	damage    int
	knockback gamemath.Vec2
	at        gamemath.Vec2
}

func UpdateProjectiles(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	var (
		toRemove []*donburi.Entry
		hits     []projectileHit
	)

	// Cache level dimensions outside the loop
	var levelWidth, levelHeight float64
	if level, hasLevel := components.Level.First(ecs.World); hasLevel {
		levelData := components.Level.Get(level)
		levelWidth = float64(levelData.CurrentLevel.MapWidth)
		levelHeight = float64(levelData.CurrentLevel.MapHeight)
	}

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		// Straight line movement, no gravity
		p.Age += dt
		obj.X += p.Velocity.X * dt
		obj.Y += p.Velocity.Y * dt
		obj.Update()

		if p.Lifetime > 0 && p.Age >= p.Lifetime {
			toRemove = append(toRemove, e)
			return
		}
		if levelWidth > 0 {
			if obj.X < -offscreenMargin || obj.X > levelWidth+offscreenMargin ||
				obj.Y < -offscreenMargin || obj.Y > levelHeight+offscreenMargin {
				toRemove = append(toRemove, e)
				return
			}
		}

		check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvPlayer)
		if check == nil {
			return
		}
		for _, playerObj := range check.ObjectsByTags(tags.ResolvPlayer) {
			if !overlaps(obj.Object, playerObj) {
				continue
			}
			dir := gamemath.Sign(p.Velocity.X)
			if dir == 0 {
				dir = 1
			}
			hits = append(hits, projectileHit{
				target:    bridge.HandleOf(playerObj),
				damage:    p.Damage,
				knockback: gamemath.V(dir*p.Knockback, -p.Knockback/2),
				at:        obj.Center(),
			})
			toRemove = append(toRemove, e)
			return
		}
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if overlaps(obj.Object, solid) {
				toRemove = append(toRemove, e)
				return
			}
		}
	})

	if s := session(ecs.World); s != nil && s.Host != nil {
		for _, hit := range hits {
			s.Host.Damage.ApplyDamage(hit.target, hit.damage)
			s.Host.Damage.ApplyKnockback(hit.target, hit.knockback)
			s.Host.Audio.PlayOneShot(cfg.SoundProjectileHit, hit.at)
		}
	}

	for _, p := range toRemove {
		destroyObjectEntry(ecs, p)
	}
}

// destroyObjectEntry removes an entity and its collider from the world.
func destroyObjectEntry(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok && e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
