package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAudio drains the cues queued this tick. The arena has no mixer, so
// cues are counted and logged with the volume they would play at.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	log := systemLog(e.World, "audio")
	for _, cue := range audioData.PendingSFX {
		if audioData.Played == nil {
			audioData.Played = make(map[string]int)
		}
		audioData.Played[cue.Event]++
		if audioData.Muted {
			continue
		}
		log.WithFields(logrus.Fields{
			"event":  cue.Event,
			"file":   cfg.Sound.SFXPaths[cue.Event],
			"volume": cfg.Sound.Volume(cue.Event),
			"x":      cue.Position.X,
			"y":      cue.Position.Y,
		}).Trace("sfx")
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}
