// Package arena assembles a headless world from a level and steps it at a
// fixed rate.
package arena

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/automoto/doomerang-ai/assets"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/shared/enemyai"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/automoto/doomerang-ai/shared/leveldata"
	"github.com/automoto/doomerang-ai/systems"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoLevel = errors.New("arena: no level")

// PlayerPatrolPath names the level polyline the player dummy walks.
const PlayerPatrolPath = "player"

type Options struct {
	Difficulty config.Difficulty
	TickRate   int // 0 uses config.Arena.TickRate
	Log        logrus.FieldLogger
}

type Arena struct {
	ecs        *ecs.ECS
	clock      *systems.SimClock
	level      *leveldata.ArenaData
	tuned      *config.AIConfig
	difficulty config.Difficulty
	log        logrus.FieldLogger
}

// New builds the world for level: collision space, solids, the player
// dummy and every enemy spawn.
func New(level *leveldata.ArenaData, opts Options) (*Arena, error) {
	if level == nil {
		return nil, ErrNoLevel
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = config.Arena.TickRate
	}
	log := opts.Log
	if log == nil {
		log = logger.Log
	}
	log = log.WithField("arena", level.Name)

	a := &Arena{
		ecs:        ecs.NewECS(donburi.NewWorld()),
		clock:      systems.NewSimClock(tickRate),
		level:      level,
		tuned:      new(config.AIConfig),
		difficulty: opts.Difficulty,
		log:        log,
	}
	a.retune()

	a.ecs.AddSystem(systems.UpdatePlayer)
	a.ecs.AddSystem(systems.UpdateEnemies)
	a.ecs.AddSystem(systems.UpdatePhysics)
	a.ecs.AddSystem(systems.UpdateCollisions)
	a.ecs.AddSystem(systems.UpdateObjects)
	a.ecs.AddSystem(systems.UpdateProjectiles)
	a.ecs.AddSystem(systems.UpdateContacts)
	a.ecs.AddSystem(systems.UpdateCombat)
	a.ecs.AddSystem(systems.UpdateDeaths)
	a.ecs.AddSystem(systems.UpdateSpawner)
	a.ecs.AddSystem(systems.UpdateAudio)

	host := systems.NewHost(a.ecs, a.clock, log)
	systems.CreateSession(a.ecs, host, a.tuned)

	cell := config.Arena.CellSize
	factory.CreateSpace(a.ecs, level.MapWidth, level.MapHeight, cell, cell)
	factory.CreateLevel(a.ecs, level)
	factory.CreatePlayer(a.ecs, level.PlayerSpawn, level.PatrolPaths[PlayerPatrolPath])
	spawned := systems.SpawnEnemies(a.ecs, level)

	log.WithFields(logrus.Fields{
		"enemies":    spawned,
		"solids":     len(level.SolidRects),
		"difficulty": a.difficulty.String(),
		"tick_rate":  tickRate,
	}).Info("arena ready")
	return a, nil
}

func (a *Arena) retune() {
	preset, ok := config.Difficulties[a.difficulty]
	if !ok {
		preset = config.Difficulties[config.DifficultyNormal]
	}
	*a.tuned = preset.Scaled(config.AI)
}

// Retune recomputes the tuned config from config.AI and the preset. Live
// enemies read it through pointers, so the change applies next tick.
func (a *Arena) Retune(d config.Difficulty) {
	a.difficulty = d
	a.retune()
	a.log.WithField("difficulty", d.String()).Info("arena retuned")
}

// Step advances the clock by one fixed step and runs every system once.
func (a *Arena) Step() {
	a.clock.Advance()
	a.ecs.Update()
	if match := systems.GetMatch(a.ecs.World); match != nil {
		match.Ticks++
	}
}

// Run steps the arena as fast as possible for the given simulated time.
func (a *Arena) Run(seconds float64) {
	ticks := int(seconds/a.clock.DeltaTime() + 0.5)
	for i := 0; i < ticks; i++ {
		a.Step()
	}
}

func (a *Arena) ECS() *ecs.ECS                 { return a.ecs }
func (a *Arena) World() donburi.World          { return a.ecs.World }
func (a *Arena) Level() *leveldata.ArenaData   { return a.level }
func (a *Arena) Now() float64                  { return a.clock.Now() }
func (a *Arena) TickRate() int                 { return int(1/a.clock.DeltaTime() + 0.5) }
func (a *Arena) Difficulty() config.Difficulty { return a.difficulty }
func (a *Arena) Tuning() *config.AIConfig      { return a.tuned }
func (a *Arena) Enemies() []enemyai.Behavior   { return systems.Enemies(a.ecs.World) }
func (a *Arena) Match() *components.MatchData  { return systems.GetMatch(a.ecs.World) }

// PlayerPosition returns the center of the player dummy.
func (a *Arena) PlayerPosition() (gamemath.Vec2, bool) {
	entry, ok := tags.Player.First(a.ecs.World)
	if !ok {
		return gamemath.Vec2{}, false
	}
	return components.Object.Get(entry).Center(), true
}

// EnemyStatus is a read-only view of one enemy.
type EnemyStatus struct {
	Name      string
	Kind      enemyai.Kind
	Health    int
	MaxHealth int
	Position  gamemath.Vec2
	State     string
	Dead      bool
}

// Status lists the enemies ordered by name.
func (a *Arena) Status() []EnemyStatus {
	var out []EnemyStatus
	for _, b := range a.Enemies() {
		e := b.Base()
		out = append(out, EnemyStatus{
			Name:      e.Name,
			Kind:      e.Kind,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Position:  e.Body.Position(),
			State:     stateOf(b),
			Dead:      e.IsDead(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func stateOf(b enemyai.Behavior) string {
	switch v := b.(type) {
	case *enemyai.Grunt:
		return v.State().String()
	case *enemyai.Boss:
		return v.State().String()
	case *enemyai.Mage:
		switch {
		case v.IsTeleporting():
			return "Teleporting"
		case v.IsCasting():
			return "Casting"
		}
	}
	return ""
}

// LoadLevel loads a TMX file from disk when file is set, otherwise the
// bundled arena called name.
func LoadLevel(name, file string) (*leveldata.ArenaData, error) {
	if file == "" {
		return assets.LoadArena(name)
	}
	return leveldata.LoadArena(os.DirFS(filepath.Dir(file)), filepath.Base(file))
}
