package systems

import (
	"testing"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type testWorld struct {
	ecs   *ecs.ECS
	clock *SimClock
	host  *enemyai.Host
	ai    *cfg.AIConfig
}

// newTestWorld builds a session and an empty 640x320 space with default
// tuning. Globals are restored when the test ends.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	cfg.SetDefaults()
	t.Cleanup(cfg.SetDefaults)

	e := ecs.NewECS(donburi.NewWorld())
	clock := NewSimClock(60)
	ai := cfg.DefaultAI()
	host := NewHost(e, clock, logger.Discard())
	CreateSession(e, host, &ai)
	factory.CreateSpace(e, 640, 320, 16, 16)

	return &testWorld{ecs: e, clock: clock, host: host, ai: &ai}
}

// step advances the clock and runs the given systems once, in order.
func (w *testWorld) step(systems ...func(*ecs.ECS)) {
	w.clock.Advance()
	for _, s := range systems {
		s(w.ecs)
	}
}

func (w *testWorld) player(x, y float64) *donburi.Entry {
	return factory.CreatePlayer(w.ecs, leveldata.SpawnPoint{X: x, Y: y}, nil)
}

func (w *testWorld) enemy(t *testing.T, kind string, x, y float64) *donburi.Entry {
	t.Helper()
	e, err := factory.CreateEnemy(w.ecs, leveldata.EnemySpawn{Kind: kind, Name: kind, X: x, Y: y})
	require.NoError(t, err)
	return e
}

func (w *testWorld) match() *components.MatchData {
	return GetMatch(w.ecs.World)
}

func handle(e *donburi.Entry) enemyai.Handle {
	return enemyai.Handle(e.Entity())
}

func countEnemies(world donburi.World) int {
	n := 0
	components.Enemy.Each(world, func(*donburi.Entry) { n++ })
	return n
}
