package arena

import (
	"context"
	"path/filepath"
	"time"

	"github.com/automoto/doomerang-ai/config"
	"github.com/sirupsen/logrus"
)

// GameLoop steps an arena in real time. Config reloads are applied between
// ticks on the loop goroutine.
type GameLoop struct {
	arena      *Arena
	tickRate   int
	watcher    *config.Watcher
	configPath string
	maxTicks   int
	pinned     bool
	log        logrus.FieldLogger
}

func NewGameLoop(arena *Arena, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = arena.TickRate()
	}
	return &GameLoop{
		arena:    arena,
		tickRate: tickRate,
		log:      arena.log,
	}
}

// WatchConfig reloads path whenever the watcher reports it changed.
func (g *GameLoop) WatchConfig(w *config.Watcher, path string) *GameLoop {
	g.watcher = w
	g.configPath = path
	return g
}

// StopAfter makes Run return once n ticks have run. 0 runs until cancelled.
func (g *GameLoop) StopAfter(n int) *GameLoop {
	g.maxTicks = n
	return g
}

// PinDifficulty keeps the arena's current preset across reloads instead of
// following arena.difficulty from the reloaded file.
func (g *GameLoop) PinDifficulty() *GameLoop {
	g.pinned = true
	return g
}

// Run ticks until ctx is done or the tick limit is reached. It returns
// ctx.Err() when cancelled and nil when the limit was reached.
func (g *GameLoop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	var (
		events <-chan string
		errs   <-chan error
	)
	if g.watcher != nil {
		events, errs = g.watcher.Events, g.watcher.Errors
	}

	g.log.WithField("tick_rate", g.tickRate).Info("game loop started")
	ticks := 0
	for {
		select {
		case <-ctx.Done():
			g.log.WithField("ticks", ticks).Info("game loop stopped")
			return ctx.Err()
		case path, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			g.reload(path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			g.log.WithError(err).Warn("config watcher error")
		case <-ticker.C:
			g.arena.Step()
			ticks++
			if g.maxTicks > 0 && ticks >= g.maxTicks {
				g.log.WithField("ticks", ticks).Info("game loop finished")
				return nil
			}
		}
	}
}

func (g *GameLoop) reload(path string) {
	if !samePath(path, g.configPath) {
		return
	}
	if err := config.LoadFile(g.configPath); err != nil {
		g.log.WithError(err).Warn("config reload rejected, keeping previous tuning")
		return
	}
	d := g.arena.Difficulty()
	if !g.pinned {
		d, _ = config.ParseDifficulty(config.Arena.Difficulty)
	}
	g.arena.Retune(d)
	g.log.WithField("path", g.configPath).Info("config reloaded")
}

func samePath(a, b string) bool {
	if b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
