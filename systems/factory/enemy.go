package factory

import (
	"fmt"

	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/systems/bridge"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns the behavior named by spawn.Kind with its feet at the
// spawn point. The world must hold a Host and a Space.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) (*donburi.Entry, error) {
	kind, err := enemyai.ParseKind(spawn.Kind)
	if err != nil {
		return nil, err
	}
	hostEntry, ok := components.Host.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("%w: world has no host", enemyai.ErrMissingDeps)
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("%w: world has no space", enemyai.ErrMissingDeps)
	}
	host := components.Host.Get(hostEntry)
	space := components.Space.Get(spaceEntry)

	stats, err := host.AI.StatsFor(string(kind))
	if err != nil {
		return nil, err
	}

	var extra []donburi.IComponentType
	if kind.Flies() {
		extra = append(extra, tags.Flyer)
	}
	enemy := archetypes.Enemy.Spawn(ecs, extra...)

	w, h := stats.Width, stats.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Physics.SetValue(enemy, components.PhysicsData{})
	space.Add(obj)

	behavior, err := enemyai.New(kind, enemyai.Deps{
		Host:     host.Host,
		Self:     enemyai.Handle(enemy.Entity()),
		Body:     bridge.NewObjectBody(enemy),
		Physics:  bridge.NewResolvPhysics(space.Space, obj),
		Animator: bridge.NewAnimator(enemy, host.Host.Clock),
	}, host.AI)
	if err != nil {
		space.Remove(obj)
		ecs.World.Remove(enemy.Entity())
		return nil, err
	}
	if spawn.Name != "" {
		behavior.Base().Name = spawn.Name
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:     kind,
		Behavior: behavior,
		Spawn:    spawn,
	})

	world := ecs.World
	behavior.Base().OnDeath(func(e *enemyai.Enemy) {
		if matchEntry, ok := components.Match.First(world); ok {
			components.Match.Get(matchEntry).AddKill(e.Kind)
		}
	})
	if matchEntry, ok := components.Match.First(world); ok {
		components.Match.Get(matchEntry).AddSpawn(kind)
	}

	behavior.Base().Log().WithFields(logrus.Fields{
		"x": spawn.X,
		"y": spawn.Y,
	}).Debug("enemy spawned")

	return enemy, nil
}
