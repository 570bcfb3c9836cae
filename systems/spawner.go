package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner recreates enemies whose respawn time has come.
func UpdateSpawner(ecs *ecs.ECS) {
	match := GetMatch(ecs.World)
	if match == nil || len(match.Respawns) == 0 {
		return
	}

	t := now(ecs.World)
	var due []components.PendingRespawn
	pending := match.Respawns[:0]
	for _, r := range match.Respawns {
		if t >= r.At {
			due = append(due, r)
		} else {
			pending = append(pending, r)
		}
	}
	match.Respawns = pending

	log := systemLog(ecs.World, "spawner")
	for _, r := range due {
		if _, err := factory.CreateEnemy(ecs, r.Spawn); err != nil {
			log.WithError(err).WithField("kind", r.Spawn.Kind).Warn("respawn failed")
			continue
		}
		log.WithField("kind", r.Spawn.Kind).Debug("enemy respawned")
	}
}
