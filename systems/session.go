package systems

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func session(world donburi.World) *components.HostData {
	entry, ok := components.Host.First(world)
	if !ok {
		return nil
	}
	return components.Host.Get(entry)
}

func deltaTime(world donburi.World) float64 {
	if s := session(world); s != nil && s.Host != nil && s.Host.Clock != nil {
		return s.Host.Clock.DeltaTime()
	}
	return 1 / float64(cfg.Arena.TickRate)
}

func now(world donburi.World) float64 {
	if s := session(world); s != nil && s.Host != nil && s.Host.Clock != nil {
		return s.Host.Clock.Now()
	}
	return 0
}

func systemLog(world donburi.World, system string) logrus.FieldLogger {
	if s := session(world); s != nil && s.Host != nil && s.Host.Log != nil {
		return s.Host.Log.WithField("system", system)
	}
	return logger.Discard().WithField("system", system)
}

// GetMatch returns the session statistics, or nil before CreateSession.
func GetMatch(world donburi.World) *components.MatchData {
	entry, ok := components.Match.First(world)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// entryOf resolves a handle handed to the AI core back to its entry.
func entryOf(world donburi.World, h enemyai.Handle) (*donburi.Entry, bool) {
	if h == enemyai.NoHandle {
		return nil, false
	}
	entity := donburi.Entity(h)
	if !world.Valid(entity) {
		return nil, false
	}
	return world.Entry(entity), true
}

// CreateSession stores the host collaborators and the tuned config in the
// world and starts empty statistics.
func CreateSession(e *ecs.ECS, host *enemyai.Host, ai *cfg.AIConfig) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)
	components.Host.SetValue(entry, components.HostData{Host: host, AI: ai})
	components.Match.SetValue(entry, components.MatchData{})
	components.Audio.SetValue(entry, components.AudioData{
		PendingSFX: make([]components.SoundCue, 0, 8),
		Played:     make(map[string]int),
	})
	return entry
}
