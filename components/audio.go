package components

import (
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/yohamta/donburi"
)

type SoundCue struct {
	Event    string
	Position gamemath.Vec2
}

// AudioData stores global audio state (singleton component)
type AudioData struct {
	PendingSFX []SoundCue
	Played     map[string]int
	Muted      bool
}

var Audio = donburi.NewComponentType[AudioData]()
