package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths starts the death sequence of enemies that died this tick,
// counts down running sequences and removes finished entities. Enemies
// are queued for the spawner when respawning is enabled.
func UpdateDeaths(ecs *ecs.ECS) {
	var dying []*donburi.Entry
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) && components.Enemy.Get(e).Behavior.Base().IsDead() {
			dying = append(dying, e)
		}
	})
	for _, e := range dying {
		startDeathSequence(e)
	}

	dt := deltaTime(ecs.World)
	var toRemove []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		if e.HasComponent(components.Enemy) {
			scheduleRespawn(ecs, components.Enemy.Get(e))
		}
		destroyObjectEntry(ecs, e)
	}
}

func startDeathSequence(e *donburi.Entry) {
	donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Arena.DeathDuration})

	// Corpses drop to the ground, flyers included.
	physics := components.Physics.Get(e)
	physics.Kinematic = false
	physics.SpeedX = 0
}

func scheduleRespawn(ecs *ecs.ECS, enemy *components.EnemyData) {
	if cfg.Arena.RespawnDelay <= 0 {
		return
	}
	match := GetMatch(ecs.World)
	if match == nil {
		return
	}
	match.Respawns = append(match.Respawns, components.PendingRespawn{
		Spawn: enemy.Spawn,
		At:    now(ecs.World) + cfg.Arena.RespawnDelay,
	})
}
