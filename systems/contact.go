package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts notifies enemies that hurt on touch while their collider
// overlaps the player's.
func UpdateContacts(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	var touching []enemyai.ContactHandler
	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		handler, ok := components.Enemy.Get(e).Behavior.(enemyai.ContactHandler)
		if !ok {
			return
		}
		if overlaps(components.Object.Get(e).Object, playerObj.Object) {
			touching = append(touching, handler)
		}
	})

	player := enemyai.Handle(playerEntry.Entity())
	for _, h := range touching {
		h.OnPlayerContact(player, playerObj.Center())
	}
}
