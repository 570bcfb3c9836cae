package components

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the center of the collider.
func (o *ObjectData) Center() gamemath.Vec2 {
	return gamemath.V(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the collider so its center is at p.
func (o *ObjectData) SetCenter(p gamemath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
