package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the scripted player dummy with its feet at spawn.
// patrol lists the waypoints it walks between, if any.
func CreatePlayer(ecs *ecs.ECS, spawn leveldata.SpawnPoint, patrol []leveldata.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.Width, cfg.Player.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	home := gamemath.V(spawn.X, spawn.Y)
	waypoints := make([]gamemath.Vec2, 0, len(patrol))
	for _, p := range patrol {
		waypoints = append(waypoints, gamemath.V(p.X, p.Y))
	}
	components.Player.SetValue(player, components.PlayerData{
		Direction: cfg.DirectionRight,
		Patrol:    waypoints,
		Home:      home,
		LastSafe:  home,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Friction: cfg.Physics.Friction,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
