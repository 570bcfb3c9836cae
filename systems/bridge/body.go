// Package bridge implements the enemyai ports on top of donburi entries and
// a resolv space.
package bridge

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

// ObjectBody exposes an entity's collider and physics component as an
// enemyai.Body. Position is the collider center.
type ObjectBody struct {
	entry *donburi.Entry
}

var _ enemyai.Body = (*ObjectBody)(nil)

func NewObjectBody(entry *donburi.Entry) *ObjectBody {
	return &ObjectBody{entry: entry}
}

func (b *ObjectBody) Position() gamemath.Vec2 {
	return components.Object.Get(b.entry).Center()
}

func (b *ObjectBody) SetPosition(p gamemath.Vec2) {
	components.Object.Get(b.entry).SetCenter(p)
}

func (b *ObjectBody) Velocity() gamemath.Vec2 {
	physics := components.Physics.Get(b.entry)
	return gamemath.V(physics.SpeedX, physics.SpeedY)
}

func (b *ObjectBody) SetVelocity(v gamemath.Vec2) {
	physics := components.Physics.Get(b.entry)
	physics.SpeedX = v.X
	physics.SpeedY = v.Y
}

func (b *ObjectBody) SetKinematic(kinematic bool) {
	physics := components.Physics.Get(b.entry)
	physics.Kinematic = kinematic
	if kinematic {
		physics.OnGround = nil
	}
}

func (b *ObjectBody) Size() gamemath.Vec2 {
	obj := components.Object.Get(b.entry)
	return gamemath.V(obj.W, obj.H)
}

// Animator records triggers on the entity's Animation component.
type Animator struct {
	entry *donburi.Entry
	clock enemyai.Clock
}

func NewAnimator(entry *donburi.Entry, clock enemyai.Clock) *Animator {
	return &Animator{entry: entry, clock: clock}
}

func (a *Animator) SetTrigger(name string) {
	if !a.entry.Valid() || !a.entry.HasComponent(components.Animation) {
		return
	}
	components.Animation.Get(a.entry).SetTrigger(name, a.clock.Now())
}
