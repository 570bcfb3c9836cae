package components

import "github.com/yohamta/donburi"

// HealthData is the player's health. Enemies keep theirs in the behavior.
type HealthData struct {
	Current int
	Max     int
}

var Health = donburi.NewComponentType[HealthData]()
