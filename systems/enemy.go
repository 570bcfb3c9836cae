package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the decision step of every living enemy followed by
// its fixed step. Behaviors are collected first because they spawn
// projectiles and queue damage on other entities.
func UpdateEnemies(ecs *ecs.ECS) {
	var behaviors []enemyai.Behavior
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		behaviors = append(behaviors, components.Enemy.Get(e).Behavior)
	})

	for _, b := range behaviors {
		if !b.Base().IsDead() {
			b.Update()
		}
	}
	for _, b := range behaviors {
		if !b.Base().IsDead() {
			b.FixedUpdate()
		}
	}
}

// SpawnEnemies creates an enemy at every spawn of the level. Spawns naming
// an unknown kind are skipped with a warning.
func SpawnEnemies(ecs *ecs.ECS, level *leveldata.ArenaData) int {
	log := systemLog(ecs.World, "spawner")
	n := 0
	for _, spawn := range level.EnemySpawns {
		if _, err := factory.CreateEnemy(ecs, spawn); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"kind": spawn.Kind,
				"x":    spawn.X,
				"y":    spawn.Y,
			}).Warn("skipping enemy spawn")
			continue
		}
		n++
	}
	return n
}

// Enemies returns the behaviors of every enemy in the world, including
// those playing their death sequence.
func Enemies(world donburi.World) []enemyai.Behavior {
	var out []enemyai.Behavior
	components.Enemy.Each(world, func(e *donburi.Entry) {
		out = append(out, components.Enemy.Get(e).Behavior)
	})
	return out
}
