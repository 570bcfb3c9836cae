package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies the damage events queued this tick. The player
// ignores hits while invulnerable; enemies route damage through their
// behavior so phase and death logic stays in the AI.
func UpdateCombat(ecs *ecs.ECS) {
	var events []*donburi.Entry
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		events = append(events, e)
	})

	log := systemLog(ecs.World, "combat")
	for _, e := range events {
		dmg := *components.DamageEvent.Get(e)
		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		switch {
		case e.HasComponent(components.Player):
			applyPlayerDamage(ecs, e, dmg, log)
		case e.HasComponent(components.Enemy):
			applyEnemyDamage(e, dmg)
		}
	}
}

func applyPlayerDamage(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEventData, log logrus.FieldLogger) {
	player := components.Player.Get(e)
	if player.InvulnTimer > 0 {
		return
	}

	hp := components.Health.Get(e)
	hp.Current -= dmg.Amount
	player.DamageTaken += dmg.Amount
	if match := GetMatch(ecs.World); match != nil {
		match.PlayerHits += dmg.Hits
	}

	if !dmg.Knockback.IsZero() {
		physics := components.Physics.Get(e)
		physics.SpeedX = dmg.Knockback.X
		physics.SpeedY = dmg.Knockback.Y
		player.StunTimer = cfg.Player.StunTime
	}
	player.InvulnTimer = cfg.Player.InvulnTime

	log.WithFields(logrus.Fields{
		"amount": dmg.Amount,
		"health": hp.Current,
	}).Debug("player hit")

	if hp.Current <= 0 {
		hp.Current = 0
		player.Deaths++
		log.WithField("deaths", player.Deaths).Info("player defeated, respawning")
		resetPlayerAt(e, player.Home)
	}
}

func applyEnemyDamage(e *donburi.Entry, dmg components.DamageEventData) {
	if e.HasComponent(components.Death) {
		return
	}
	enemy := components.Enemy.Get(e).Behavior.Base()
	enemy.TakeDamage(dmg.Amount)

	physics := components.Physics.Get(e)
	if !dmg.Knockback.IsZero() && !physics.Kinematic && !enemy.IsDead() {
		physics.SpeedX = dmg.Knockback.X
		physics.SpeedY = dmg.Knockback.Y
	}
}
