package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile centered on spec.Position flying
// along spec.Direction.
func CreateProjectile(ecs *ecs.ECS, spec enemyai.ProjectileSpec, prefab cfg.ProjectileTypeConfig) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	obj := resolv.NewObject(
		spec.Position.X-prefab.Width/2,
		spec.Position.Y-prefab.Height/2,
		prefab.Width,
		prefab.Height,
		tags.ResolvProjectile,
	)
	obj.SetShape(resolv.NewRectangle(0, 0, prefab.Width, prefab.Height))
	obj.Data = p
	components.Object.Set(p, &components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Projectile.Set(p, &components.ProjectileData{
		Kind:      spec.Kind,
		Owner:     spec.Owner,
		Damage:    spec.Damage,
		Velocity:  spec.Direction.Normalized().Scale(spec.Speed),
		Knockback: prefab.Knockback,
		Lifetime:  prefab.Lifetime,
	})

	return p
}
