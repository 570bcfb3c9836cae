package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the arena and builds its solids and dead zones. The
// space must already exist.
func CreateLevel(ecs *ecs.ECS, level *leveldata.ArenaData) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})

	for _, s := range level.SolidRects {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}
	for _, z := range level.DeadZones {
		CreateDeadZone(ecs, z.X, z.Y, z.W, z.H)
	}
	return entry
}
