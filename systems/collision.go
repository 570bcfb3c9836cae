package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every non-kinematic body by its velocity and
// resolves it against solids, one axis at a time.
func UpdateCollisions(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	var fell []*donburi.Entry

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if physics.Kinematic {
			physics.OnGround = nil
			return
		}

		resolveObjectHorizontalCollision(physics, obj.Object, physics.SpeedX*dt)
		resolveObjectVerticalCollision(physics, obj.Object, physics.SpeedY*dt)

		if checkDeadZone(obj.Object) {
			fell = append(fell, e)
		}
	})

	for _, e := range fell {
		handleDeadZoneHit(ecs, e)
	}
}

// resolveObjectHorizontalCollision moves object by dx, stopping flush
// against the nearest solid in the way.
func resolveObjectHorizontalCollision(physics *components.PhysicsData, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsVertically(object, solid) {
			continue
		}
		var gap float64
		if dx > 0 {
			if solid.X < object.X+object.W-contactEpsilon {
				continue
			}
			gap = solid.X - (object.X + object.W)
			if gap < dx {
				dx = gap
				physics.SpeedX = 0
			}
		} else {
			if solid.X+solid.W > object.X+contactEpsilon {
				continue
			}
			gap = solid.X + solid.W - object.X
			if gap > dx {
				dx = gap
				physics.SpeedX = 0
			}
		}
	}

	object.X += dx
}

// resolveObjectVerticalCollision moves object by dy and records the solid
// it lands on.
func resolveObjectVerticalCollision(physics *components.PhysicsData, object *resolv.Object, dy float64) {
	physics.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		object.Y += dy
		return
	}

	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsHorizontally(object, solid) {
			continue
		}
		if dy >= 0 {
			if solid.Y < object.Y+object.H-contactEpsilon {
				continue
			}
			gap := solid.Y - (object.Y + object.H)
			if gap <= dy {
				dy = gap
				physics.SpeedY = 0
				physics.OnGround = solid
			}
		} else {
			if solid.Y+solid.H > object.Y+contactEpsilon {
				continue
			}
			gap := solid.Y + solid.H - object.Y
			if gap > dy {
				dy = gap
				physics.SpeedY = 0
			}
		}
	}

	object.Y += dy
}

const contactEpsilon = 0.01

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y+a.H > b.Y+contactEpsilon && a.Y < b.Y+b.H-contactEpsilon
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X+a.W > b.X+contactEpsilon && a.X < b.X+b.W-contactEpsilon
}

func overlaps(a, b *resolv.Object) bool {
	return overlapsVertically(a, b) && overlapsHorizontally(a, b)
}

// checkDeadZone returns true if the object is inside a dead zone
func checkDeadZone(obj *resolv.Object) bool {
	check := obj.Check(0, 0, tags.ResolvDeadZone)
	if check == nil {
		return false
	}
	for _, zone := range check.ObjectsByTags(tags.ResolvDeadZone) {
		if overlaps(obj, zone) {
			return true
		}
	}
	return false
}

// handleDeadZoneHit kills an enemy outright and sends the player back to
// the last ground it stood on.
func handleDeadZoneHit(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		player.Deaths++
		systemLog(ecs.World, "collision").WithField("deaths", player.Deaths).Info("player fell into a dead zone")
		resetPlayerAt(e, player.LastSafe)
		return
	}

	if e.HasComponent(components.Enemy) {
		enemy := components.Enemy.Get(e).Behavior.Base()
		enemy.Log().Info("fell into a dead zone")
		enemy.TakeDamage(enemy.Health)
		donburi.Add(e, components.Death, &components.DeathData{IsDeathZone: true})
	}
}
