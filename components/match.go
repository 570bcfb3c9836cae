package components

import (
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/yohamta/donburi"
)

// PendingRespawn is an enemy waiting for the spawner.
type PendingRespawn struct {
	Spawn leveldata.EnemySpawn
	At    float64
}

// MatchData stores the running statistics of an arena session.
// This is a singleton component.
type MatchData struct {
	Ticks            int
	Spawned          map[enemyai.Kind]int
	Kills            map[enemyai.Kind]int
	ProjectilesFired int
	ProjectileErrors int
	PlayerHits       int
	Respawns         []PendingRespawn
}

func (m *MatchData) AddSpawn(kind enemyai.Kind) {
	if m.Spawned == nil {
		m.Spawned = make(map[enemyai.Kind]int)
	}
	m.Spawned[kind]++
}

func (m *MatchData) AddKill(kind enemyai.Kind) {
	if m.Kills == nil {
		m.Kills = make(map[enemyai.Kind]int)
	}
	m.Kills[kind]++
}

// TotalKills sums kills across kinds.
func (m *MatchData) TotalKills() int {
	total := 0
	for _, n := range m.Kills {
		total += n
	}
	return total
}

var Match = donburi.NewComponentType[MatchData]()
