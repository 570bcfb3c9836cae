package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction and gravity to every non-kinematic body.
// Living flyers hover; once a Death component is attached they fall too.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic {
			return
		}

		if physics.OnGround != nil && physics.Friction > 0 {
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		}

		if !hovering(e) {
			physics.SpeedY += cfg.Physics.Gravity * dt
			if physics.SpeedY > cfg.Physics.MaxFallSpeed {
				physics.SpeedY = cfg.Physics.MaxFallSpeed
			}
		}
	})
}

func hovering(e *donburi.Entry) bool {
	return e.HasComponent(tags.Flyer) && !e.HasComponent(components.Death)
}

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
